package repo

import (
	"photo-catalog-server/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) applyFilters(query *gorm.DB, params ListPhotosParams) *gorm.DB {
	if params.Photographer != "" {
		query = query.Where("LOWER(photographer) LIKE LOWER(?)", "%"+params.Photographer+"%")
	}
	if params.PhotographerID != nil {
		query = query.Where("photographer_id = ?", *params.PhotographerID)
	}
	if params.MinWidth != nil {
		query = query.Where("width >= ?", *params.MinWidth)
	}
	if params.MaxWidth != nil {
		query = query.Where("width <= ?", *params.MaxWidth)
	}
	if params.MinHeight != nil {
		query = query.Where("height >= ?", *params.MinHeight)
	}
	if params.MaxHeight != nil {
		query = query.Where("height <= ?", *params.MaxHeight)
	}
	if params.Search != "" {
		term := "%" + params.Search + "%"
		query = query.Where("(LOWER(alt) LIKE LOWER(?) OR LOWER(photographer) LIKE LOWER(?))", term, term)
	}
	return query
}

// ListPhotos 返回当前页数据与满足条件的总数，按创建时间倒序，id 倒序保证翻页稳定。
func (r *PhotoRepository) ListPhotos(params ListPhotosParams) ([]model.Photo, int64, error) {
	var photos []model.Photo
	var total int64

	if err := r.applyFilters(r.db.Model(&model.Photo{}), params).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.applyFilters(r.db.Model(&model.Photo{}), params).
		Order("created_at DESC").
		Order("id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

// UpdateByID 在同一事务内读取、更新并重新加载图片。
func (r *PhotoRepository) UpdateByID(id uint, updates map[string]interface{}) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&photo, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&photo).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&photo, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) DeleteByID(id uint) error {
	tx := r.db.Delete(&model.Photo{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistingIDs 返回 ids 中已存在于数据库的部分
func (r *PhotoRepository) ExistingIDs(ids []uint) (map[uint]struct{}, error) {
	existing := make(map[uint]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []uint
	if err := r.db.Model(&model.Photo{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// CreateBatch 在一个事务中写入一批图片，任意一行失败则整批回滚。
func (r *PhotoRepository) CreateBatch(photos []model.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range photos {
			if err := tx.Create(&photos[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ResyncIDSequence 显式写入 id 后，将 postgres 的自增序列推进到当前最大 id。其他数据库无需处理。
func (r *PhotoRepository) ResyncIDSequence() error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.Exec(
		"SELECT setval(pg_get_serial_sequence('photos', 'id'), COALESCE((SELECT MAX(id) FROM photos), 1), (SELECT COUNT(*) > 0 FROM photos))",
	).Error
}
