package personnummer

import "time"

const coordinationOffset = 60

// realDay strips the coordination number offset from an encoded day.
func realDay(encoded int) int {
	if encoded > coordinationOffset {
		return encoded - coordinationOffset
	}
	return encoded
}

// isCalendarDate reports whether year-month-day exists in the proleptic
// Gregorian calendar.
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
