package model

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	HashedPassword string    `json:"-" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	IsAdmin        bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
