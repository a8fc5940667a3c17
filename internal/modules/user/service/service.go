package service

import (
	"errors"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/modules/user/repo"
	"photo-catalog-server/internal/utils"
	"sync"

	"gorm.io/gorm"
)

const (
	msgUserNotFound       = "User not found"
	msgEmailRegistered    = "Email already registered"
	msgUsernameTaken      = "Username already taken"
	msgInvalidCredentials = "Incorrect username or password"
)

type Service struct {
	userStore repo.UserStore

	dummyOnce   sync.Once
	dummyDigest string
}

func New(userStore repo.UserStore) *Service {
	return &Service{userStore: userStore}
}

// GetByID 按 ID 查询用户，不存在时返回 NotFound。
func (s *Service) GetByID(id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(msgUserNotFound)
		}
		return nil, common.NewInternalError("查询用户失败", err)
	}
	return user, nil
}

func (s *Service) IsUsernameTaken(username string) (bool, error) {
	return s.userStore.FieldExists(repo.UserFieldUsername, username)
}

func (s *Service) IsEmailTaken(email string) (bool, error) {
	return s.userStore.FieldExists(repo.UserFieldEmail, email)
}

// dummyHash 返回一个固定的 bcrypt 摘要，用于用户名不存在时对齐校验耗时
func (s *Service) dummyHash() string {
	s.dummyOnce.Do(func() {
		digest, err := utils.HashPassword("photo-catalog-timing-equalizer")
		if err == nil {
			s.dummyDigest = digest
		}
	})
	return s.dummyDigest
}
