package handler

import (
	"time"

	"personnummer/pkg/personnummer"
)

// IdentityResponse is the HTTP response for POST /personnummer/parse.
type IdentityResponse struct {
	Personnummer       string `json:"personnummer"`
	Short              string `json:"short"`
	Year               int    `json:"year"`
	Month              int    `json:"month"`
	Day                int    `json:"day"`
	Birthday           string `json:"birthday"`
	SequenceNumber     int    `json:"sequence_number"`
	ControlDigit       int    `json:"control_digit"`
	CoordinationNumber bool   `json:"coordination_number"`
	Sex                string `json:"sex"`
	Age                int    `json:"age"`
}

// FromIdentity converts a parsed identity to an HTTP response. now is the
// reference instant for age and the short form's separator.
func FromIdentity(id personnummer.Identity, now time.Time) *IdentityResponse {
	short, _ := id.Format(10, now)
	sex := "female"
	if id.IsMale() {
		sex = "male"
	}
	return &IdentityResponse{
		Personnummer:       id.String(),
		Short:              short,
		Year:               id.Year(),
		Month:              id.Month(),
		Day:                id.Day(),
		Birthday:           id.Birthday().Format(time.DateOnly),
		SequenceNumber:     id.SequenceNumber(),
		ControlDigit:       id.ControlDigit(),
		CoordinationNumber: id.IsCoordinationNumber(),
		Sex:                sex,
		Age:                id.Age(now),
	}
}

// ValidateResponse is the HTTP response for POST /personnummer/validate.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// FormatResponse is the HTTP response for POST /personnummer/format.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Length    int    `json:"length"`
}

// ParseErrorResponse is the error envelope for rejected identity numbers.
type ParseErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Kind             string `json:"kind"`
}
