package config

import (
	"os"
	"path/filepath"
	"testing"
)

// 测试内容：验证初始化配置会设置默认值并记录配置目录。
func TestLoad_SetsDefaults(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("PHOTO_CATALOG_SERVER_MODE", "debug")
	t.Setenv("PHOTO_CATALOG_JWT_SECRET", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load 错误: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("期望默认端口 8000，实际为 %q", cfg.Server.Port)
	}
	if cfg.JWT.Secret == "" {
		t.Fatalf("期望非 release 模式下回退到开发密钥")
	}
	if cfg.JWT.AccessTokenExpireMinutes != 30 || cfg.JWT.RefreshTokenExpireDays != 7 {
		t.Fatalf("非预期的 token 有效期: %+v", cfg.JWT)
	}
	if cfg.Pagination.DefaultPageSize != 20 || cfg.Pagination.MaxPageSize != 100 {
		t.Fatalf("非预期的分页配置: %+v", cfg.Pagination)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}
	if Get().Server.Port != cfg.Server.Port {
		t.Fatalf("期望全局快照与返回值一致")
	}
}

// 测试内容：验证环境变量覆盖配置文件中的值。
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: \"9000\"\npagination:\n  max_page_size: 50\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	t.Setenv("PHOTO_CATALOG_SERVER_MODE", "debug")
	t.Setenv("PHOTO_CATALOG_SERVER_PORT", "9100")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load 错误: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Fatalf("期望环境变量覆盖端口为 9100，实际为 %q", cfg.Server.Port)
	}
	if cfg.Pagination.MaxPageSize != 50 {
		t.Fatalf("期望文件中的 max_page_size=50，实际为 %d", cfg.Pagination.MaxPageSize)
	}
}

// 测试内容：验证 release 模式下缺少 JWT Secret 时返回错误。
func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	t.Setenv("PHOTO_CATALOG_SERVER_MODE", "release")
	t.Setenv("PHOTO_CATALOG_JWT_SECRET", "")

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("期望 release 模式下缺少 secret 返回错误")
	}

	t.Setenv("PHOTO_CATALOG_JWT_SECRET", insecureDevSecret)
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("期望 release 模式下拒绝默认 secret")
	}

	t.Setenv("PHOTO_CATALOG_JWT_SECRET", "a-real-production-secret")
	if _, err := Load(t.TempDir()); err != nil {
		t.Fatalf("期望合法 secret 通过，实际为 %v", err)
	}
}

// 测试内容：验证非法分页配置被归一化。
func TestNormalize_FixesPagination(t *testing.T) {
	cfg := Config{Pagination: PaginationConfig{DefaultPageSize: 500, MaxPageSize: 0}}
	normalize(&cfg)
	if cfg.Pagination.MaxPageSize != 100 || cfg.Pagination.DefaultPageSize != 20 {
		t.Fatalf("非预期的分页配置: %+v", cfg.Pagination)
	}
	if cfg.Ingest.BatchSize != 100 {
		t.Fatalf("期望默认批大小 100，实际为 %d", cfg.Ingest.BatchSize)
	}
}
