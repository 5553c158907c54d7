package workhours

import (
	"gorm.io/gorm"

	"github.com/hammam97-h/barber-booking/internal/models"
)

// DefaultWeek is the schedule provisioned for a fresh installation:
// Sunday through Thursday open 09:00-18:00, Friday and Saturday closed.
func DefaultWeek() []models.WorkHour {
	week := make([]models.WorkHour, 0, 7)
	for day := 0; day <= 6; day++ {
		wh := models.WorkHour{
			DayOfWeek:           day,
			StartTime:           "09:00",
			EndTime:             "18:00",
			IsWorkingDay:        true,
			SlotDurationMinutes: 30,
		}
		if day == 5 || day == 6 {
			wh.StartTime = "09:00"
			wh.EndTime = "14:00"
			wh.IsWorkingDay = false
		}
		week = append(week, wh)
	}
	return week
}

// EnsureDefaults seeds the default week once, when the table is empty. It is
// idempotent and runs at startup so reads stay free of side effects.
func EnsureDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.WorkHour{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	week := DefaultWeek()
	return db.Create(&week).Error
}
