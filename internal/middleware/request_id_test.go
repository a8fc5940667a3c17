package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photo-catalog-server/internal/logging"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证未携带 request id 时生成新值并写入响应头与访问日志。
func TestRequestLogger_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logging.NewWithWriter(&buf, "info", "text")))
	r.GET("/x", func(c *gin.Context) {
		if RequestIDFromContext(c) == "" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	w := doRequest(r, http.MethodGet, "/x", "")
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	id := w.Header().Get(RequestIDHeaderName)
	if len(id) != 36 {
		t.Fatalf("期望生成 uuid 格式 request id，实际为 %q", id)
	}
	if !strings.Contains(buf.String(), "request_id="+id) || !strings.Contains(buf.String(), "path=/x") {
		t.Fatalf("访问日志缺少字段: %s", buf.String())
	}
}

// 测试内容：验证客户端传入的 request id 会被截断后复用。
func TestRequestLogger_ReusesClientID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logging.NewWithWriter(&bytes.Buffer{}, "info", "text")))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeaderName, "  "+strings.Repeat("a", 200)+"  ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeaderName); got != strings.Repeat("a", maxRequestIDLength) {
		t.Fatalf("非预期 request id: %q", got)
	}
}
