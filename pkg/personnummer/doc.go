// Package personnummer parses and validates Swedish personal identity numbers
// (personnummer) and coordination numbers (samordningsnummer).
//
// # Format
//
// An identity number encodes a birth date, a three digit sequence number and
// a Luhn check digit:
//
//	[CC]YYMMDD[sep]SSSC
//
// The century CC is optional. When it is absent the separator carries the
// missing information: "-" (or no separator) means the holder is younger
// than 100, "+" means 100 or older. Coordination numbers add 60 to the day.
//
// # Validation order
//
// Input is checked in a fixed order and the first violation wins:
//
//  1. format        (ErrInvalidFormat)
//  2. check digit   (ErrChecksum)
//  3. calendar date (ErrInvalidDate)
//
// # Purity
//
// The package performs no I/O and keeps no state. Every time-sensitive
// operation takes its reference instant as a parameter; only Parse and
// IsValid read the wall clock, as conveniences for callers that do not care.
package personnummer
