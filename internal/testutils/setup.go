package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"photo-catalog-server/internal/db"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:pct_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

// CreateUser 直接写入一个用户；active=false 时在创建后单独更新，避免被列默认值覆盖。
func CreateUser(t *testing.T, gdb *gorm.DB, username, password string, admin, active bool) *model.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        admin,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if !active {
		if err := gdb.Model(u).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate user: %v", err)
		}
		u.IsActive = false
	}
	return u
}

// NewPhoto 返回一张字段完整、可直接写入的测试图片
func NewPhoto(id uint, photographer string, width, height int, alt string) model.Photo {
	p := model.Photo{
		ID:              id,
		Width:           width,
		Height:          height,
		URL:             fmt.Sprintf("https://example.com/photo/%d", id),
		Photographer:    photographer,
		PhotographerURL: "https://example.com/@" + photographer,
		PhotographerID:  int64(len(photographer)),
		SrcOriginal:     "https://example.com/original.jpg",
		SrcLarge2x:      "https://example.com/large2x.jpg",
		SrcLarge:        "https://example.com/large.jpg",
		SrcMedium:       "https://example.com/medium.jpg",
		SrcSmall:        "https://example.com/small.jpg",
		SrcPortrait:     "https://example.com/portrait.jpg",
		SrcLandscape:    "https://example.com/landscape.jpg",
		SrcTiny:         "https://example.com/tiny.jpg",
	}
	if alt != "" {
		p.Alt = &alt
	}
	return p
}
