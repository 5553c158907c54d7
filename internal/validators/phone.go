package validators

import "strings"

// NormalizePhone strips spaces, dashes and parentheses so the same number
// always maps to the same account.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '-', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsPhoneValid accepts an optional leading + followed by 7 to 15 digits.
func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)
	if strings.HasPrefix(p, "+") {
		p = p[1:]
	}

	if len(p) < 7 || len(p) > 15 {
		return false
	}

	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
