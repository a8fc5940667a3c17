package middleware

import (
	"net/http"
	"net/http/httptest"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type fakeUsers map[uint]*model.User

func (f fakeUsers) GetByID(id uint) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, common.NewNotFoundError("User not found")
}

func newTestTokens() *utils.TokenService {
	return utils.NewTokenService(config.JWTConfig{Secret: "middleware_test_secret", Issuer: "test"})
}

func doRequest(r http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func init() {
	gin.SetMode(gin.TestMode)
}
