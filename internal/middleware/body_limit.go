package middleware

import (
	"net/http"
	"photo-catalog-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

const defaultMaxBodyMB = 2

// BodyLimitMiddleware 限制请求体大小，maxSizeMB<=0 时使用 2MB
func BodyLimitMiddleware(maxSizeMB int) gin.HandlerFunc {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxBodyMB
	}
	// 限制大小 (MB -> Bytes)
	maxBytes := int64(maxSizeMB) * 1024 * 1024

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			httpx.WriteError(c, http.StatusRequestEntityTooLarge, httpx.MsgBodyTooLarge)
			return
		}

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}
