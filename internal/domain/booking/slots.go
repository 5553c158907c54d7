package booking

import "time"

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	IsWorkingDay bool   `json:"is_working_day"`
	Slots        []Slot `json:"slots"`
}

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// BuildSlots walks candidate slot starts from openMin to closeMin in steps of
// stepMin and returns them in chronological order. A candidate is emitted only
// if the full service fits before closing; one that would run past closeMin is
// not offered at all. Emitted slots are marked unavailable when they overlap a
// busy interval or start before now.
//
// date must be midnight of the requested day in the local timezone.
func BuildSlots(date time.Time, openMin, closeMin, stepMin, serviceMin int, busy []Interval, now time.Time) []Slot {
	slots := make([]Slot, 0)

	if stepMin <= 0 || serviceMin <= 0 {
		return slots
	}

	for cur := openMin; cur+serviceMin <= closeMin; cur += stepMin {
		slotStart := date.Add(time.Duration(cur) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(serviceMin) * time.Minute)

		available := !slotStart.Before(now)
		if available {
			for _, b := range busy {
				if Overlaps(slotStart, slotEnd, b.Start, b.End) {
					available = false
					break
				}
			}
		}

		slots = append(slots, Slot{
			Time:      FormatClock(cur),
			Available: available,
		})
	}

	return slots
}

// MarkPastUnavailable re-applies the past-start rule to an existing slot
// list. Cached views need this: a slot can slip into the past while the
// cached copy is still live. Slots only ever flip to unavailable.
func MarkPastUnavailable(date time.Time, slots []Slot, now time.Time) {
	for i, s := range slots {
		min, err := ParseClock(s.Time)
		if err != nil {
			continue
		}
		if date.Add(time.Duration(min) * time.Minute).Before(now) {
			slots[i].Available = false
		}
	}
}
