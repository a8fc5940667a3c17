package logging

import "github.com/gin-gonic/gin"

const ginContextKey = "logger"

// Attach stores a request-scoped logger on the gin context.
func Attach(c *gin.Context, l Logger) {
	c.Set(ginContextKey, l)
}

// FromGin returns the request-scoped logger, or Default when none is attached.
func FromGin(c *gin.Context) Logger {
	if c != nil {
		if v, ok := c.Get(ginContextKey); ok {
			if l, ok := v.(Logger); ok {
				return l
			}
		}
	}
	return Default()
}
