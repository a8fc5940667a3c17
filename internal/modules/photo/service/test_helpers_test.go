package service

import (
	"testing"

	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/modules/photo/repo"
	"photo-catalog-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return New(repo.NewPhotoRepository(gdb), config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}), gdb
}

func seed(t *testing.T, gdb *gorm.DB, photos ...model.Photo) {
	t.Helper()
	for i := range photos {
		if err := gdb.Create(&photos[i]).Error; err != nil {
			t.Fatalf("写入图片失败: %v", err)
		}
	}
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func assertServiceError(t *testing.T, err error, code common.ErrorCode, message string) {
	t.Helper()
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为 %v", err)
	}
	if serviceErr.Code != code || serviceErr.Message != message {
		t.Fatalf("期望 %s/%q，实际为 %s/%q", code, message, serviceErr.Code, serviceErr.Message)
	}
}
