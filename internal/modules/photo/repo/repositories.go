package repo

import (
	"photo-catalog-server/internal/model"

	"gorm.io/gorm"
)

// ListPhotosParams 列表筛选条件，指针为 nil 或字符串为空表示不筛选
type ListPhotosParams struct {
	Photographer   string
	PhotographerID *int64
	MinWidth       *int
	MaxWidth       *int
	MinHeight      *int
	MaxHeight      *int
	Search         string
	Offset         int
	Limit          int
}

type PhotoStore interface {
	Create(photo *model.Photo) error
	FindByID(id uint) (*model.Photo, error)
	ListPhotos(params ListPhotosParams) ([]model.Photo, int64, error)
	UpdateByID(id uint, updates map[string]interface{}) (*model.Photo, error)
	DeleteByID(id uint) error
	ExistingIDs(ids []uint) (map[uint]struct{}, error)
	CreateBatch(photos []model.Photo) error
	ResyncIDSequence() error
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}
