package models

import "time"

// Notification is a best-effort message for the shop owner. Delivery is
// advisory only; bookings never depend on it.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}
