package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	NameAr      string `gorm:"size:100" json:"name_ar"`
	Description string `gorm:"size:255" json:"description"`

	DurationMinutes int `gorm:"default:30" json:"duration_minutes"`
	Price           int `gorm:"default:0" json:"price"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
