package repo

import (
	"fmt"
	"photo-catalog-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FieldExists(field UserField, value string) (bool, error) {
	switch field {
	case UserFieldUsername, UserFieldEmail:
	default:
		return false, fmt.Errorf("unsupported user field: %s", field)
	}

	var count int64
	if err := r.db.Model(&model.User{}).Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) CountAdmins() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
