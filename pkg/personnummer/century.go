package personnummer

import "time"

// resolveCentury returns the two leading year digits. An explicit century is
// taken verbatim. Otherwise the century of now is assumed, stepped back once
// if that would put the birth date in the future, and once more when the
// separator says the holder is at least 100 years old.
//
// month and day must already be range checked; impossible dates such as
// February 31 are normalized by time.Date and rejected later.
func resolveCentury(raw rawCapture, month, day int, now time.Time) int {
	if raw.century != "" {
		return atoi(raw.century)
	}

	year := now.Year()/100*100 + atoi(raw.year)
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if birth.After(now) {
		year -= 100
	}
	if raw.separator == "+" {
		year -= 100
	}
	return year / 100
}
