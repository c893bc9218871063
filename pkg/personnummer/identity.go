package personnummer

import (
	"fmt"
	"time"
)

// Identity is a validated identity number. It can only be obtained from the
// Parse family of functions and is immutable.
//
// Invariants:
//   - Year, Month and Day form a real calendar date
//   - ControlDigit equals the Luhn digit of YYMMDD(encoded)SSS
//   - EncodedDay is Day+60 for coordination numbers and Day otherwise
type Identity struct {
	year       int
	month      int
	encodedDay int
	sequence   int
	control    int
	separator  string
}

func (i Identity) Year() int { return i.year }

func (i Identity) Month() int { return i.month }

// Day returns the day of month with any coordination offset removed.
func (i Identity) Day() int { return realDay(i.encodedDay) }

// EncodedDay returns the day as written in the number, 61-91 for
// coordination numbers.
func (i Identity) EncodedDay() int { return i.encodedDay }

func (i Identity) SequenceNumber() int { return i.sequence }

func (i Identity) ControlDigit() int { return i.control }

// Separator is "+" when the parsed input used "+" and "-" otherwise. It is
// informational only; Format derives the separator from age.
func (i Identity) Separator() string { return i.separator }

// IsZero reports whether i is the zero value rather than a parsed identity.
func (i Identity) IsZero() bool { return i.month == 0 }

// IsCoordinationNumber reports whether the day carries the +60 offset.
func (i Identity) IsCoordinationNumber() bool {
	return i.encodedDay > coordinationOffset
}

// Birthday returns midnight UTC on the date of birth.
func (i Identity) Birthday() time.Time {
	return time.Date(i.year, time.Month(i.month), i.Day(), 0, 0, 0, 0, time.UTC)
}

// Age returns the number of completed years at the given instant. The
// calendar date of at is used as is, in at's own location. Instants before
// the birth date yield 0.
func (i Identity) Age(at time.Time) int {
	age := at.Year() - i.year
	month, day := int(at.Month()), at.Day()
	if month < i.month || (month == i.month && day < i.Day()) {
		age--
	}
	return max(age, 0)
}

// IsMale reports whether the ninth significant digit, the last digit of the
// sequence number, is odd.
func (i Identity) IsMale() bool { return i.sequence%2 == 1 }

func (i Identity) IsFemale() bool { return !i.IsMale() }

// Format renders the number in its 10 or 12 digit form. The 10 digit form
// uses "+" when the holder is 100 or older at the given instant. The 12 digit
// form always uses "-". Any other length returns ErrInvalidLength.
func (i Identity) Format(length int, at time.Time) (string, error) {
	switch length {
	case shortForm:
		sep := "-"
		if i.Age(at) >= 100 {
			sep = "+"
		}
		return fmt.Sprintf("%02d%02d%02d%s%03d%d", i.year%100, i.month, i.encodedDay, sep, i.sequence, i.control), nil
	case longForm:
		return fmt.Sprintf("%04d%02d%02d-%03d%d", i.year, i.month, i.encodedDay, i.sequence, i.control), nil
	}
	return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
}

// String returns the 12 digit form, which does not depend on a reference
// instant.
func (i Identity) String() string {
	s, _ := i.Format(longForm, time.Time{})
	return s
}
