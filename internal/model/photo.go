package model

import "time"

// Photo 图库条目，ID 在批量导入时作为幂等键
type Photo struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Width           int     `json:"width" gorm:"not null;index:idx_dimensions,priority:1"`
	Height          int     `json:"height" gorm:"not null;index:idx_dimensions,priority:2"`
	URL             string  `json:"url" gorm:"not null"`
	Photographer    string  `json:"photographer" gorm:"not null;index;index:idx_photographer_created,priority:1"`
	PhotographerURL string  `json:"photographer_url" gorm:"not null"`
	PhotographerID  int64   `json:"photographer_id" gorm:"not null;index"`
	AvgColor        *string `json:"avg_color"`

	SrcOriginal  string `json:"src_original" gorm:"not null"`
	SrcLarge2x   string `json:"src_large2x" gorm:"column:src_large2x;not null"`
	SrcLarge     string `json:"src_large" gorm:"not null"`
	SrcMedium    string `json:"src_medium" gorm:"not null"`
	SrcSmall     string `json:"src_small" gorm:"not null"`
	SrcPortrait  string `json:"src_portrait" gorm:"not null"`
	SrcLandscape string `json:"src_landscape" gorm:"not null"`
	SrcTiny      string `json:"src_tiny" gorm:"not null"`

	Alt       *string   `json:"alt" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"index;index:idx_photographer_created,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`
}
