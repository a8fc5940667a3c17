package middleware

import (
	"errors"
	"net/http"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/common/httpx"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey  = "user"
	ContextIDKey    = "id"
	ContextAdminKey = "admin"
)

const (
	msgNotAuthenticated   = "Not authenticated"
	msgInvalidCredentials = "Could not validate credentials"
	msgInactiveUser       = "Inactive user"
	msgNotEnoughPerms     = "Not enough permissions"
)

// TokenValidator 校验 access token
type TokenValidator interface {
	ValidateAs(token string, expected utils.TokenType) (*utils.TokenClaims, error)
}

// UserLookup 按 token 中的用户 ID 加载用户
type UserLookup interface {
	GetByID(id uint) (*model.User, error)
}

// JWTAuth 解析 Bearer access token 并加载当前用户。
// 缺少或格式错误的 Authorization 头返回 403，token 无效或用户不存在返回 401，停用账号返回 403，
// 加载用户时的数据库错误返回 500。
func JWTAuth(tokens TokenValidator, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			httpx.WriteError(c, http.StatusForbidden, msgNotAuthenticated)
			return
		}

		claims, err := tokens.ValidateAs(tokenString, utils.TokenTypeAccess)
		if err != nil {
			unauthorized(c)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			if common.HasCode(err, common.ErrorCodeNotFound) {
				unauthorized(c)
				return
			}
			httpx.WriteServiceError(c, err, "Failed to load user")
			return
		}
		if !user.IsActive {
			httpx.WriteError(c, http.StatusForbidden, msgInactiveUser)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextIDKey, user.ID)
		c.Set(ContextAdminKey, user.IsAdmin)
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get(ContextAdminKey)
		isAdmin, ok := value.(bool)
		if !exist || !ok || !isAdmin {
			httpx.WriteError(c, http.StatusForbidden, msgNotEnoughPerms)
			return
		}
		c.Next()
	}
}

// CurrentUser 返回 JWTAuth 写入上下文的用户。
func CurrentUser(c *gin.Context) (*model.User, error) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, errors.New("no authenticated user in context")
	}
	user, ok := value.(*model.User)
	if !ok || user == nil {
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	httpx.WriteError(c, http.StatusUnauthorized, msgInvalidCredentials)
}
