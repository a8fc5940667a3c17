package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/logging"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/modules"
	healthrepo "photo-catalog-server/internal/modules/health/repo"
	photorepo "photo-catalog-server/internal/modules/photo/repo"
	userrepo "photo-catalog-server/internal/modules/user/repo"
	"photo-catalog-server/internal/testutils"
	"photo-catalog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	tokens *utils.TokenService
}

func testConfig() config.Config {
	return config.Config{
		Server:     config.ServerConfig{MaxBodyMB: 2},
		JWT:        config.JWTConfig{Secret: "router_test_secret", Issuer: "test", AccessTokenExpireMinutes: 30, RefreshTokenExpireDays: 7},
		Pagination: config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
		RateLimit:  config.RateLimitConfig{Enabled: false},
	}
}

func newTestApp(t *testing.T, cfg config.Config) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	tokens := utils.NewTokenService(cfg.JWT)
	appModules := modules.New(cfg, tokens,
		userrepo.NewUserRepository(gdb),
		photorepo.NewPhotoRepository(gdb),
		healthrepo.NewHealthRepository(gdb),
	)
	rt := NewRouter(appModules, tokens, cfg, nil, logging.NewWithWriter(io.Discard, "error", "text"))
	return &testApp{engine: rt.NewEngine(), db: gdb, tokens: tokens}
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// login 通过接口登录并返回 token 对
func (a *testApp) login(t *testing.T, username, password string) utils.TokenPair {
	t.Helper()
	w := a.do(t, http.MethodPost, "/auth/login", gin.H{"username": username, "password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}
	var pair utils.TokenPair
	decode(t, w, &pair)
	return pair
}

func (a *testApp) seedPhotos(t *testing.T, photos ...model.Photo) {
	t.Helper()
	for i := range photos {
		if err := a.db.Create(&photos[i]).Error; err != nil {
			t.Fatalf("写入图片失败: %v", err)
		}
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("解析响应失败: %v (%s)", err, w.Body.String())
	}
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decode(t, w, &body)
	s, _ := body["detail"].(string)
	return s
}

func newPhotoPayload(photographer string) gin.H {
	return gin.H{
		"width":            1920,
		"height":           1080,
		"url":              "https://example.com/photo",
		"photographer":     photographer,
		"photographer_url": "https://example.com/photographer",
		"photographer_id":  123,
		"avg_color":        "#FFFFFF",
		"src_original":     "https://example.com/original.jpg",
		"src_large2x":      "https://example.com/large2x.jpg",
		"src_large":        "https://example.com/large.jpg",
		"src_medium":       "https://example.com/medium.jpg",
		"src_small":        "https://example.com/small.jpg",
		"src_portrait":     "https://example.com/portrait.jpg",
		"src_landscape":    "https://example.com/landscape.jpg",
		"src_tiny":         "https://example.com/tiny.jpg",
		"alt":              "Test photo",
	}
}
