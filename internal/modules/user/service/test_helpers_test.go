package service

import (
	"testing"

	"photo-catalog-server/internal/modules/user/repo"
	"photo-catalog-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return New(repo.NewUserRepository(gdb)), gdb
}

func newRepoForTest(gdb *gorm.DB) repo.UserStore {
	return repo.NewUserRepository(gdb)
}
