package service

import (
	"errors"
	"testing"

	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"
)

type fakeUsers struct {
	users map[uint]*model.User
	err   error
}

func (f *fakeUsers) Register(email, username, password string) (*model.User, error) {
	u := &model.User{ID: uint(len(f.users) + 1), Email: email, Username: username, IsActive: true}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) Authenticate(username, password string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username && password == "password123" {
			return u, nil
		}
	}
	return nil, common.NewUnauthorizedError("Incorrect username or password")
}

func (f *fakeUsers) GetByID(id uint) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.NewNotFoundError("User not found")
	}
	return u, nil
}

func newTestService() (*Service, *fakeUsers, *utils.TokenService) {
	users := &fakeUsers{users: map[uint]*model.User{
		1: {ID: 1, Username: "active", IsActive: true},
		2: {ID: 2, Username: "inactive", IsActive: false},
	}}
	tokens := utils.NewTokenService(config.JWTConfig{Secret: "auth_service_secret", Issuer: "test"})
	return New(users, tokens), users, tokens
}

// 测试内容：验证登录成功签发 token 对，停用账号返回 Forbidden。
func TestLoginUser(t *testing.T) {
	s, _, tokens := newTestService()

	pair, err := s.LoginUser("active", "password123")
	if err != nil {
		t.Fatalf("LoginUser 错误: %v", err)
	}
	if _, err := tokens.ValidateAs(pair.AccessToken, utils.TokenTypeAccess); err != nil {
		t.Fatalf("access token 无效: %v", err)
	}

	if _, err := s.LoginUser("inactive", "password123"); !common.HasCode(err, common.ErrorCodeForbidden) {
		t.Fatalf("期望停用账号 Forbidden，实际为 %v", err)
	}
	if _, err := s.LoginUser("active", "wrong"); !common.HasCode(err, common.ErrorCodeUnauthorized) {
		t.Fatalf("期望密码错误 Unauthorized，实际为 %v", err)
	}
}

// 测试内容：验证刷新时的各类拒绝情况与成功路径。
func TestRefresh(t *testing.T) {
	s, users, tokens := newTestService()

	refresh, _ := tokens.IssueRefreshToken(1)
	pair, err := s.Refresh(refresh)
	if err != nil || pair.RefreshToken == "" || pair.TokenType != "bearer" {
		t.Fatalf("期望刷新成功，实际为 %+v (%v)", pair, err)
	}

	access, _ := tokens.IssueAccessToken(1)
	if _, err := s.Refresh(access); !common.HasCode(err, common.ErrorCodeUnauthorized) {
		t.Fatalf("期望 access token 被拒绝，实际为 %v", err)
	}

	unknown, _ := tokens.IssueRefreshToken(99)
	if _, err := s.Refresh(unknown); !common.HasCode(err, common.ErrorCodeUnauthorized) {
		t.Fatalf("期望未知用户 Unauthorized，实际为 %v", err)
	}

	inactive, _ := tokens.IssueRefreshToken(2)
	if _, err := s.Refresh(inactive); !common.HasCode(err, common.ErrorCodeForbidden) {
		t.Fatalf("期望停用账号 Forbidden，实际为 %v", err)
	}

	users.err = common.NewInternalError("查询用户失败", errors.New("db down"))
	if _, err := s.Refresh(refresh); !common.HasCode(err, common.ErrorCodeInternal) {
		t.Fatalf("期望数据库错误透传为 internal，实际为 %v", err)
	}
}
