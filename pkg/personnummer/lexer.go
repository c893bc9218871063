package personnummer

import "strings"

// rawCapture holds the fields of a lexically valid input as fixed-width digit
// strings so leading zeros survive until conversion.
type rawCapture struct {
	century   string // empty when the input has no century
	year      string
	month     string
	day       string
	separator string // "+", "-", " " or empty
	sequence  string
	check     string
}

// significant returns the ten digits covered by the check digit. The encoded
// day is used, never the coordination-adjusted one.
func (r rawCapture) significant() string {
	return r.year + r.month + r.day + r.sequence
}

const (
	dateDigits       = 6 // YYMMDD
	centuryDigits    = 2
	serialDigits     = 4 // SSSC
	shortForm        = dateDigits + serialDigits
	longForm         = centuryDigits + shortForm
	maxLexableLength = longForm + 1
)

// asciiSpace is the set trimmed around input. Unicode spaces such as NBSP
// are not trimmed and fail the match.
const asciiSpace = " \t\n\v\f\r\x00"

// lex matches input against [CC]YYMMDD[+- ]?SSSC after trimming surrounding
// whitespace. It walks the string once: a run of date digits, at most one
// separator, then exactly four serial digits.
func lex(input string) (rawCapture, bool) {
	s := strings.Trim(input, asciiSpace)
	if len(s) < shortForm || len(s) > maxLexableLength {
		return rawCapture{}, false
	}

	lead := 0
	for lead < len(s) && isDigit(s[lead]) {
		lead++
	}

	var (
		date, serial string
		sep          string
	)
	switch {
	case lead == len(s):
		// No separator: the length alone decides whether a century is present.
		if lead != shortForm && lead != longForm {
			return rawCapture{}, false
		}
		date, serial = s[:lead-serialDigits], s[lead-serialDigits:]
	case lead == dateDigits || lead == dateDigits+centuryDigits:
		if !isSeparator(s[lead]) {
			return rawCapture{}, false
		}
		sep = s[lead : lead+1]
		date, serial = s[:lead], s[lead+1:]
		if len(serial) != serialDigits || !allDigits(serial) {
			return rawCapture{}, false
		}
	default:
		return rawCapture{}, false
	}

	var raw rawCapture
	if len(date) == dateDigits+centuryDigits {
		raw.century, date = date[:centuryDigits], date[centuryDigits:]
	}
	raw.year, raw.month, raw.day = date[0:2], date[2:4], date[4:6]
	raw.separator = sep
	raw.sequence, raw.check = serial[:3], serial[3:]
	return raw, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSeparator(c byte) bool { return c == '+' || c == '-' || c == ' ' }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// atoi converts a string the lexer has already proven to be ASCII digits.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
