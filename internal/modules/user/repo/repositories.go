package repo

import (
	"photo-catalog-server/internal/model"

	"gorm.io/gorm"
)

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FieldExists(field UserField, value string) (bool, error)
	Create(user *model.User) error
	CountAdmins() (int64, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
