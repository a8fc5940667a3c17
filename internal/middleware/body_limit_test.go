package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"photo-catalog-server/internal/common/httpx"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证声明长度超过上限的请求直接返回 413。
func TestBodyLimitMiddleware_RejectsDeclaredOversize(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(1))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(make([]byte, 1024*1024+1)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证未声明长度的超大请求体在读取时报错。
func TestBodyLimitMiddleware_LimitsStreamingBody(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(1))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", io.NopCloser(bytes.NewReader(make([]byte, 1024*1024+1))))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}

	small := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader([]byte("{}")))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, small)
	if w.Code != http.StatusOK {
		t.Fatalf("期望小请求 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证未声明长度的超大 JSON 请求体在绑定时返回 413 而不是 400。
func TestBodyLimitMiddleware_ChunkedJSONBindReturns413(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(1))
	r.POST("/x", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			httpx.WriteBindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	payload := `{"alt":"` + strings.Repeat("a", 1024*1024) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/x", io.NopCloser(strings.NewReader(payload)))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Request body too large") {
		t.Fatalf("非预期响应: %s", w.Body.String())
	}
}
