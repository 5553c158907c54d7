package booking

import (
	"fmt"

	"github.com/hammam97-h/barber-booking/internal/httperr"
)

// Times of day are handled as integer minutes since midnight and converted
// to "HH:MM" only at the boundary.

// ParseClock converts a zero-padded 24h "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, httperr.ErrBusiness("invalid_time_format")
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')

	if hour > 23 || minute > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
