package service

import (
	"errors"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/utils"
	"strings"

	"gorm.io/gorm"
)

// Register 创建普通用户。邮箱与用户名分别检查唯一性，邮箱优先；并发插入撞上唯一索引时同样返回 Conflict。
func (s *Service) Register(email, username, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	return s.createUser(email, username, password, false)
}

func (s *Service) createUser(email, username, password string, admin bool) (*model.User, error) {
	emailTaken, err := s.IsEmailTaken(email)
	if err != nil {
		return nil, common.NewInternalError("注册失败", err)
	}
	if emailTaken {
		return nil, common.NewConflictError(msgEmailRegistered)
	}

	usernameTaken, err := s.IsUsernameTaken(username)
	if err != nil {
		return nil, common.NewInternalError("注册失败", err)
	}
	if usernameTaken {
		return nil, common.NewConflictError(msgUsernameTaken)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, common.NewInternalError("密码加密失败", err)
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        admin,
	}
	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateConflict(email)
		}
		return nil, common.NewInternalError("创建用户失败", err)
	}
	return user, nil
}

// duplicateConflict 在唯一索引冲突后重新判断是哪个字段冲突
func (s *Service) duplicateConflict(email string) error {
	if taken, err := s.IsEmailTaken(email); err == nil && taken {
		return common.NewConflictError(msgEmailRegistered)
	}
	return common.NewConflictError(msgUsernameTaken)
}

// Authenticate 校验用户名与密码。用户名不存在与密码错误返回同一个错误，
// 且用户名不存在时仍执行一次 bcrypt 比较。
func (s *Service) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = utils.CheckPassword(password, s.dummyHash())
			return nil, common.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, common.NewInternalError("登录失败", err)
	}

	if !utils.CheckPassword(password, user.HashedPassword) {
		return nil, common.NewUnauthorizedError(msgInvalidCredentials)
	}
	return user, nil
}

// EnsureAdmin 在系统中没有管理员且用户名未被占用时创建默认管理员。
func (s *Service) EnsureAdmin(email, username, password string) (bool, error) {
	count, err := s.userStore.CountAdmins()
	if err != nil {
		return false, common.NewInternalError("查询管理员失败", err)
	}
	if count > 0 {
		return false, nil
	}
	if taken, err := s.IsUsernameTaken(username); err != nil {
		return false, common.NewInternalError("查询用户失败", err)
	} else if taken {
		return false, nil
	}

	if _, err := s.createUser(email, username, password, true); err != nil {
		return false, err
	}
	return true, nil
}
