package handlers

import "time"

// All dates cross the API as "YYYY-MM-DD" in the shop's local timezone;
// times within a day as zero-padded "HH:MM".

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.Local)
}
