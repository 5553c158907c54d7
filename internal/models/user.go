package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Name         string `gorm:"size:100" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	LastSignedIn time.Time `json:"last_signed_in"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
