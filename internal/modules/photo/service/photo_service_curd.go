package service

import (
	"errors"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/modules/photo/repo"

	"gorm.io/gorm"
)

// Filters 列表筛选条件，各维度之间为 AND；Search 在 alt 与 photographer 上做 OR 匹配
type Filters struct {
	Photographer string
	MinWidth     *int
	MaxWidth     *int
	MinHeight    *int
	MaxHeight    *int
	Search       string
}

// Patch 可修改字段。XxxSet 为 false 表示不修改；Set 为 true 且值为 nil 表示显式置空。
type Patch struct {
	AltSet          bool
	Alt             *string
	PhotographerSet bool
	Photographer    *string
}

// Create 写入新图片；photo.ID 为 0 时由数据库分配。
func (s *Service) Create(photo *model.Photo) error {
	if photo.Width <= 0 || photo.Height <= 0 {
		return common.NewValidationError("width and height must be positive")
	}
	if photo.ID != 0 {
		if _, err := s.photoStore.FindByID(photo.ID); err == nil {
			return common.NewConflictError(msgPhotoExists)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewInternalError("创建图片失败", err)
		}
	}

	if err := s.photoStore.Create(photo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewConflictError(msgPhotoExists)
		}
		return common.NewInternalError("创建图片失败", err)
	}
	return nil
}

func (s *Service) GetByID(id uint) (*model.Photo, error) {
	photo, err := s.photoStore.FindByID(id)
	if err != nil {
		return nil, translateLookupError(err, "查询图片失败")
	}
	return photo, nil
}

// List 返回当前页与匹配总数。
func (s *Service) List(page Page, filters Filters) ([]model.Photo, int64, error) {
	return s.list(page, repo.ListPhotosParams{
		Photographer: filters.Photographer,
		MinWidth:     filters.MinWidth,
		MaxWidth:     filters.MaxWidth,
		MinHeight:    filters.MinHeight,
		MaxHeight:    filters.MaxHeight,
		Search:       filters.Search,
	})
}

// ListByPhotographerID 按摄影师 ID 精确匹配，排序与分页规则同 List。
func (s *Service) ListByPhotographerID(photographerID int64, page Page) ([]model.Photo, int64, error) {
	return s.list(page, repo.ListPhotosParams{PhotographerID: &photographerID})
}

func (s *Service) list(page Page, params repo.ListPhotosParams) ([]model.Photo, int64, error) {
	params.Offset = page.Offset()
	params.Limit = page.PageSize

	photos, total, err := s.photoStore.ListPhotos(params)
	if err != nil {
		return nil, 0, common.NewInternalError("查询图片列表失败", err)
	}
	if photos == nil {
		photos = []model.Photo{}
	}
	return photos, total, nil
}

// Update 修改 alt/photographer。photographer 不允许为 null，alt 为 null 时清空。
func (s *Service) Update(id uint, patch Patch) (*model.Photo, error) {
	updates := make(map[string]interface{}, 2)
	if patch.PhotographerSet {
		if patch.Photographer == nil {
			return nil, common.NewValidationError("photographer cannot be null")
		}
		updates["photographer"] = *patch.Photographer
	}
	if patch.AltSet {
		if patch.Alt == nil {
			updates["alt"] = nil
		} else {
			updates["alt"] = *patch.Alt
		}
	}

	photo, err := s.photoStore.UpdateByID(id, updates)
	if err != nil {
		return nil, translateLookupError(err, "更新图片失败")
	}
	return photo, nil
}

func (s *Service) Delete(id uint) error {
	if err := s.photoStore.DeleteByID(id); err != nil {
		return translateLookupError(err, "删除图片失败")
	}
	return nil
}

func translateLookupError(err error, internalMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFoundError(msgPhotoNotFound)
	}
	return common.NewInternalError(internalMsg, err)
}
