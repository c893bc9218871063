package personnummer

import (
	"errors"
	"fmt"
)

// Kind classifies a data validation failure.
type Kind string

const (
	KindInvalidFormat Kind = "invalid_format"
	KindChecksum      Kind = "checksum"
	KindInvalidDate   Kind = "invalid_date"
)

// Sentinels matched by errors.Is against a *ParseError of the same kind.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrChecksum      = errors.New("checksum mismatch")
	ErrInvalidDate   = errors.New("invalid date")
)

// Contract violations. These indicate misuse by the caller, not bad data,
// and are never reported as a *ParseError.
var (
	ErrNotString     = errors.New("personnummer: input is not a string")
	ErrInvalidLength = errors.New("personnummer: length must be 10 or 12")
)

// ParseError reports why an input was rejected. Input holds the value exactly
// as it was supplied.
type ParseError struct {
	Kind    Kind
	Message string
	Input   string
}

func newParseError(kind Kind, input, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Input: input}
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel for the error's kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindChecksum:
		return ErrChecksum
	case KindInvalidDate:
		return ErrInvalidDate
	}
	return nil
}

func (e *ParseError) IsInvalidFormat() bool { return e.Kind == KindInvalidFormat }
func (e *ParseError) IsChecksum() bool      { return e.Kind == KindChecksum }
func (e *ParseError) IsInvalidDate() bool   { return e.Kind == KindInvalidDate }

// KindOf returns the Kind of the first *ParseError in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}
