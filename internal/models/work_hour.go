package models

import "time"

// WorkHour holds the schedule for one weekday (0 = Sunday, 6 = Saturday).
// Exactly one row per weekday.
type WorkHour struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int `gorm:"uniqueIndex;not null" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // "09:00"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // "18:00"

	IsWorkingDay        bool `gorm:"default:true" json:"is_working_day"`
	SlotDurationMinutes int  `gorm:"default:30" json:"slot_duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
