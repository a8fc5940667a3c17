package dto

import "photo-catalog-server/internal/model"

type CreatePhotoRequest struct {
	Width           int     `json:"width" binding:"required,gt=0"`
	Height          int     `json:"height" binding:"required,gt=0"`
	URL             string  `json:"url" binding:"required"`
	Photographer    string  `json:"photographer" binding:"required"`
	PhotographerURL string  `json:"photographer_url" binding:"required"`
	PhotographerID  *int64  `json:"photographer_id" binding:"required"`
	AvgColor        *string `json:"avg_color"`
	Alt             *string `json:"alt"`

	SrcOriginal  string `json:"src_original" binding:"required"`
	SrcLarge2x   string `json:"src_large2x" binding:"required"`
	SrcLarge     string `json:"src_large" binding:"required"`
	SrcMedium    string `json:"src_medium" binding:"required"`
	SrcSmall     string `json:"src_small" binding:"required"`
	SrcPortrait  string `json:"src_portrait" binding:"required"`
	SrcLandscape string `json:"src_landscape" binding:"required"`
	SrcTiny      string `json:"src_tiny" binding:"required"`
}

func (r CreatePhotoRequest) ToModel() model.Photo {
	var photographerID int64
	if r.PhotographerID != nil {
		photographerID = *r.PhotographerID
	}
	return model.Photo{
		Width:           r.Width,
		Height:          r.Height,
		URL:             r.URL,
		Photographer:    r.Photographer,
		PhotographerURL: r.PhotographerURL,
		PhotographerID:  photographerID,
		AvgColor:        r.AvgColor,
		Alt:             r.Alt,
		SrcOriginal:     r.SrcOriginal,
		SrcLarge2x:      r.SrcLarge2x,
		SrcLarge:        r.SrcLarge,
		SrcMedium:       r.SrcMedium,
		SrcSmall:        r.SrcSmall,
		SrcPortrait:     r.SrcPortrait,
		SrcLandscape:    r.SrcLandscape,
		SrcTiny:         r.SrcTiny,
	}
}

// UpdatePhotoRequest 仅 alt 与 photographer 可修改；缺省字段保持不变
type UpdatePhotoRequest struct {
	Alt          OptionalString `json:"alt"`
	Photographer OptionalString `json:"photographer"`
}

type PageQuery struct {
	Page     *int `form:"page" binding:"omitempty,min=1"`
	PageSize *int `form:"page_size" binding:"omitempty,min=1"`
}

type ListPhotosQuery struct {
	PageQuery
	Photographer string `form:"photographer"`
	MinWidth     *int   `form:"min_width" binding:"omitempty,min=0"`
	MaxWidth     *int   `form:"max_width" binding:"omitempty,min=0"`
	MinHeight    *int   `form:"min_height" binding:"omitempty,min=0"`
	MaxHeight    *int   `form:"max_height" binding:"omitempty,min=0"`
	Search       string `form:"search"`
}

type PhotoListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Photos   []model.Photo `json:"photos"`
}
