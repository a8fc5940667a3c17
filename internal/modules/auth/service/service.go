package service

import (
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"
)

const (
	msgInvalidRefreshToken = "Invalid refresh token"
	msgInactiveUser        = "Inactive user"
)

type UserService interface {
	Register(email, username, password string) (*model.User, error)
	Authenticate(username, password string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type TokenIssuer interface {
	IssuePair(userID uint) (utils.TokenPair, error)
	ValidateAs(token string, expected utils.TokenType) (*utils.TokenClaims, error)
}

type Service struct {
	userService UserService
	tokens      TokenIssuer
}

func New(userService UserService, tokens TokenIssuer) *Service {
	return &Service{
		userService: userService,
		tokens:      tokens,
	}
}

func (s *Service) RegisterUser(email, username, password string) (*model.User, error) {
	return s.userService.Register(email, username, password)
}

// LoginUser 校验凭据并签发 access/refresh token，停用账号返回 Forbidden。
func (s *Service) LoginUser(username, password string) (utils.TokenPair, error) {
	user, err := s.userService.Authenticate(username, password)
	if err != nil {
		return utils.TokenPair{}, err
	}
	if !user.IsActive {
		return utils.TokenPair{}, common.NewForbiddenError(msgInactiveUser)
	}
	return s.issue(user.ID)
}

// Refresh 使用 refresh token 换取新的 token 对。旧 refresh token 在过期前仍然有效。
func (s *Service) Refresh(refreshToken string) (utils.TokenPair, error) {
	claims, err := s.tokens.ValidateAs(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return utils.TokenPair{}, common.NewUnauthorizedError(msgInvalidRefreshToken)
	}
	userID, err := claims.UserID()
	if err != nil {
		return utils.TokenPair{}, common.NewUnauthorizedError(msgInvalidRefreshToken)
	}

	user, err := s.userService.GetByID(userID)
	if err != nil {
		if common.HasCode(err, common.ErrorCodeNotFound) {
			return utils.TokenPair{}, common.NewUnauthorizedError(msgInvalidRefreshToken)
		}
		return utils.TokenPair{}, err
	}
	if !user.IsActive {
		return utils.TokenPair{}, common.NewForbiddenError(msgInactiveUser)
	}
	return s.issue(user.ID)
}

func (s *Service) issue(userID uint) (utils.TokenPair, error) {
	pair, err := s.tokens.IssuePair(userID)
	if err != nil {
		return utils.TokenPair{}, common.NewInternalError("签发 token 失败", err)
	}
	return pair, nil
}
