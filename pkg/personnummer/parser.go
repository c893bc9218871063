package personnummer

import (
	"fmt"
	"time"
)

// Parse validates input against the current time. See ParseAt.
func Parse(input string) (Identity, error) {
	return ParseAt(input, time.Now())
}

// ParseAt validates input and returns the identity it encodes. now is the
// reference instant used to infer the century of 10 digit numbers.
//
// Errors: a *ParseError of kind invalid_format, checksum or invalid_date,
// whichever stage fails first.
func ParseAt(input string, now time.Time) (Identity, error) {
	id, perr := parse(input, now)
	if perr != nil {
		return Identity{}, perr
	}
	return id, nil
}

// ParseAny is ParseAt for values of unknown type, such as decoded JSON.
// Values that are not strings fail with ErrNotString rather than a
// *ParseError; they are never coerced.
func ParseAny(v any, now time.Time) (Identity, error) {
	s, ok := v.(string)
	if !ok {
		return Identity{}, fmt.Errorf("%w: got %T", ErrNotString, v)
	}
	return ParseAt(s, now)
}

// IsValid reports whether input parses at the current time.
func IsValid(input string) bool {
	return IsValidAt(input, time.Now())
}

func IsValidAt(input string, now time.Time) bool {
	_, perr := parse(input, now)
	return perr == nil
}

// IsValidAny reports false for non-string values instead of failing.
func IsValidAny(v any, now time.Time) bool {
	s, ok := v.(string)
	return ok && IsValidAt(s, now)
}

// parse runs the validation stages in order and stops at the first failure.
func parse(input string, now time.Time) (Identity, *ParseError) {
	raw, ok := lex(input)
	if !ok {
		return Identity{}, newParseError(KindInvalidFormat, input, "input did not match expected format")
	}

	control := atoi(raw.check)
	if luhn(raw.significant()) != control {
		return Identity{}, newParseError(KindChecksum, input, "control digit did not match expected value")
	}

	month := atoi(raw.month)
	encodedDay := atoi(raw.day)
	day := realDay(encodedDay)
	if month < 1 || month > 12 {
		return Identity{}, newParseError(KindInvalidDate, input, "%d is not a valid month", month)
	}
	if day < 1 || day > 31 {
		return Identity{}, newParseError(KindInvalidDate, input, "%d is not a valid day", encodedDay)
	}

	year := resolveCentury(raw, month, day, now)*100 + atoi(raw.year)
	if !isCalendarDate(year, month, day) {
		return Identity{}, newParseError(KindInvalidDate, input, "input had invalid date")
	}

	separator := "-"
	if raw.separator == "+" {
		separator = "+"
	}
	return Identity{
		year:       year,
		month:      month,
		encodedDay: encodedDay,
		sequence:   atoi(raw.sequence),
		control:    control,
		separator:  separator,
	}, nil
}
