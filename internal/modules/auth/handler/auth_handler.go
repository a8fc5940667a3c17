package handler

import (
	"net/http"
	"photo-catalog-server/internal/common/httpx"
	moduledto "photo-catalog-server/internal/modules/auth/dto"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	user, err := h.authService.RegisterUser(req.Email, req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Registration failed, please try again later")
		return
	}

	c.JSON(http.StatusCreated, moduledto.NewUserResponse(user))
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	pair, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Login failed, please try again later")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh 优先读取查询参数 refresh_token，其次读取 JSON 请求体
func (h *Handler) Refresh(c *gin.Context) {
	token := strings.TrimSpace(c.Query("refresh_token"))
	if token == "" && c.Request.ContentLength != 0 {
		var req moduledto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.WriteBindError(c, err)
			return
		}
		token = strings.TrimSpace(req.RefreshToken)
	}
	if token == "" {
		httpx.WriteError(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	pair, err := h.authService.Refresh(token)
	if err != nil {
		httpx.WriteServiceError(c, err, "Token refresh failed, please try again later")
		return
	}

	c.JSON(http.StatusOK, pair)
}
