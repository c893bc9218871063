package personnummer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"personnummer/pkg/personnummer"
)

// =============================================================================
// Parser Test Suite
// =============================================================================
// Fixtures are real, checksum-valid numbers. The reference instant is fixed so
// century inference is deterministic.

type ParserSuite struct {
	suite.Suite
	now time.Time
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func (s *ParserSuite) SetupTest() {
	s.now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
}

func (s *ParserSuite) mustParse(input string) personnummer.Identity {
	id, err := personnummer.ParseAt(input, s.now)
	s.Require().NoError(err, "input %q", input)
	return id
}

func (s *ParserSuite) requireKind(input string, kind personnummer.Kind) *personnummer.ParseError {
	_, err := personnummer.ParseAt(input, s.now)
	s.Require().Error(err, "input %q", input)
	var pe *personnummer.ParseError
	s.Require().True(errors.As(err, &pe), "input %q: expected *ParseError, got %T", input, err)
	s.Equal(kind, pe.Kind, "input %q", input)
	s.Equal(input, pe.Input)
	return pe
}

func (s *ParserSuite) TestValidNumbers() {
	tests := []struct {
		name         string
		input        string
		year         int
		coordination bool
		encodedDay   int
		control      int
		ten          string
		twelve       string
	}{
		{"12 digit personnummer", "198507099805", 1985, false, 9, 5, "850709-9805", "19850709-9805"},
		{"12 digit coordination number", "198507699802", 1985, true, 69, 2, "850769-9802", "19850769-9802"},
		{"10 digit personnummer", "8507099805", 1985, false, 9, 5, "850709-9805", "19850709-9805"},
		{"10 digit coordination number", "8507699802", 1985, true, 69, 2, "850769-9802", "19850769-9802"},
		{"10 digit with century indicator", "850709+9805", 1885, false, 9, 5, "850709+9805", "18850709-9805"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id := s.mustParse(tt.input)

			s.Equal(tt.coordination, id.IsCoordinationNumber())
			s.Equal(tt.year, id.Year())
			s.Equal(7, id.Month())
			s.Equal(9, id.Day())
			s.Equal(tt.encodedDay, id.EncodedDay())
			s.Equal(time.Date(tt.year, time.July, 9, 0, 0, 0, 0, time.UTC), id.Birthday())
			s.Equal(980, id.SequenceNumber())
			s.Equal(tt.control, id.ControlDigit())

			ten, err := id.Format(10, s.now)
			s.Require().NoError(err)
			s.Equal(tt.ten, ten)

			twelve, err := id.Format(12, s.now)
			s.Require().NoError(err)
			s.Equal(tt.twelve, twelve)
			s.Equal(tt.twelve, id.String())
		})
	}
}

func (s *ParserSuite) TestCenturyGuessing() {
	now := time.Date(2010, 10, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		year  int
	}{
		// The date has not passed yet in this century: guess the previous one.
		{"121212-2442", 1912},
		{"101011-5283", 1910},
		{"090909-9640", 2009},
		{"890909-7761", 1989},

		// Today counts as passed.
		{"101010-3289", 2010},

		// "+" means at least 100 years old.
		{"111111-4425", 1911},
		{"111111+4425", 1811},
		{"100101+7969", 1910},
		{"090909+9640", 1909},
	}

	for _, tt := range tests {
		s.Run(tt.input, func() {
			id, err := personnummer.ParseAt(tt.input, now)
			s.Require().NoError(err)
			s.Equal(tt.year, id.Year())
		})
	}
}

func (s *ParserSuite) TestExplicitCenturyIsNotValidated() {
	id := s.mustParse("99850709-9813")
	s.Equal(9985, id.Year())
}

func (s *ParserSuite) TestControlDigits() {
	s.Run("checksum mismatch is reported", func() {
		for _, input := range []string{"198507099804", "198507099806", "198507099812", "198507099814", "850709-9812", "850709-9814"} {
			pe := s.requireKind(input, personnummer.KindChecksum)
			s.True(pe.IsChecksum())
			s.False(pe.IsInvalidFormat())
			s.False(pe.IsInvalidDate())
		}
	})

	s.Run("separator does not matter", func() {
		s.True(personnummer.IsValidAt("850709-9813", s.now))
		s.True(personnummer.IsValidAt("850709+9813", s.now))
		s.True(personnummer.IsValidAt("850709 9813", s.now))
		s.True(personnummer.IsValidAt("8507099813", s.now))
	})

	s.Run("century does not matter", func() {
		s.True(personnummer.IsValidAt("19850709-9813", s.now))
		s.True(personnummer.IsValidAt("18850709-9813", s.now))
		s.True(personnummer.IsValidAt("17850709-9813", s.now))
	})

	s.Run("missing control digit is a format error", func() {
		s.requireKind("850709-981", personnummer.KindInvalidFormat)
		s.requireKind("850709981", personnummer.KindInvalidFormat)
		s.requireKind("10850709981", personnummer.KindInvalidFormat)
	})

	s.Run("century digits never reach the checksum", func() {
		s.requireKind("108507099818", personnummer.KindChecksum)
	})
}

func (s *ParserSuite) TestInvalidInput() {
	s.Run("format", func() {
		for _, input := range []string{"Just a string", "17850709=9813", "", "85070-99805"} {
			pe := s.requireKind(input, personnummer.KindInvalidFormat)
			s.True(pe.IsInvalidFormat())
			s.ErrorIs(pe, personnummer.ErrInvalidFormat)
		}
	})

	s.Run("checksum before date", func() {
		for _, input := range []string{"112233-4455", "19112233-4455", "20112233-4455", "199909193776"} {
			pe := s.requireKind(input, personnummer.KindChecksum)
			s.ErrorIs(pe, personnummer.ErrChecksum)
		}
	})

	s.Run("date", func() {
		for _, input := range []string{"9999999999", "199999999999"} {
			pe := s.requireKind(input, personnummer.KindInvalidDate)
			s.ErrorIs(pe, personnummer.ErrInvalidDate)
		}
	})

	s.Run("month out of range", func() {
		pe := s.requireKind("8513090004", personnummer.KindInvalidDate)
		s.Equal("13 is not a valid month", pe.Message)
	})

	s.Run("day 60 is neither ordinary nor coordination", func() {
		pe := s.requireKind("8507600008", personnummer.KindInvalidDate)
		s.Equal("60 is not a valid day", pe.Message)
	})

	s.Run("day that does not exist in the month", func() {
		s.requireKind("8502310009", personnummer.KindInvalidDate)
	})

	s.Run("leap days follow the Gregorian calendar", func() {
		s.requireKind("190102290004", personnummer.KindInvalidDate)
		id := s.mustParse("200002290005")
		s.Equal(29, id.Day())
	})
}

func (s *ParserSuite) TestNonStringInput() {
	for _, v := range []any{nil, []any{}, map[string]any{}, false, true, 0, 188507099813, 8507099805.0} {
		_, err := personnummer.ParseAny(v, s.now)
		s.Require().Error(err)
		s.ErrorIs(err, personnummer.ErrNotString)

		var pe *personnummer.ParseError
		s.False(errors.As(err, &pe), "non-string input must not be a ParseError")
		s.False(personnummer.IsValidAny(v, s.now))
	}

	s.Run("strings pass through", func() {
		id, err := personnummer.ParseAny("198507099805", s.now)
		s.Require().NoError(err)
		s.Equal(1985, id.Year())
		s.True(personnummer.IsValidAny("198507099805", s.now))
	})
}

func (s *ParserSuite) TestKindOf() {
	_, err := personnummer.ParseAt("198507099806", s.now)
	kind, ok := personnummer.KindOf(err)
	s.True(ok)
	s.Equal(personnummer.KindChecksum, kind)

	_, ok = personnummer.KindOf(personnummer.ErrNotString)
	s.False(ok)
}

func (s *ParserSuite) TestAge() {
	id := s.mustParse("900707-9925")

	s.Run("on the birth day and the day after", func() {
		s.Equal(0, id.Age(time.Date(1990, 7, 7, 0, 0, 0, 0, time.UTC)))
		s.Equal(0, id.Age(time.Date(1990, 7, 8, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("six months old", func() {
		s.Equal(0, id.Age(time.Date(1991, 1, 7, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("around the first birthday", func() {
		s.Equal(0, id.Age(time.Date(1991, 7, 6, 0, 0, 0, 0, time.UTC)))
		s.Equal(1, id.Age(time.Date(1991, 7, 7, 0, 0, 0, 0, time.UTC)))
		s.Equal(1, id.Age(time.Date(1991, 7, 8, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("much later or much earlier", func() {
		s.Equal(120, id.Age(time.Date(2110, 12, 31, 0, 0, 0, 0, time.UTC)))
		s.Equal(0, id.Age(time.Date(1910, 12, 31, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("coordination numbers use the real day", func() {
		coord := s.mustParse("198507699802")
		s.Equal(0, coord.Age(time.Date(1986, 7, 8, 0, 0, 0, 0, time.UTC)))
		s.Equal(1, coord.Age(time.Date(1986, 7, 9, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("leap day birthdays turn over on March 1st in common years", func() {
		leap := s.mustParse("200002290005")
		s.Equal(0, leap.Age(time.Date(2001, 2, 28, 0, 0, 0, 0, time.UTC)))
		s.Equal(1, leap.Age(time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func (s *ParserSuite) TestSex() {
	for _, input := range []string{"19121212+1212", "198507099813", "198507699810"} {
		id := s.mustParse(input)
		s.True(id.IsMale(), input)
		s.False(id.IsFemale(), input)
	}

	for _, input := range []string{"196411139808", "198507099805", "198507699802"} {
		id := s.mustParse(input)
		s.True(id.IsFemale(), input)
		s.False(id.IsMale(), input)
	}
}

func (s *ParserSuite) TestFormat() {
	id := s.mustParse("900707-9925")

	s.Run("rejects unsupported lengths", func() {
		for _, length := range []int{9, 11, 13, 0, -10} {
			_, err := id.Format(length, s.now)
			s.ErrorIs(err, personnummer.ErrInvalidLength)
		}
	})

	s.Run("separator follows age at the reference instant", func() {
		got, err := id.Format(10, s.now)
		s.Require().NoError(err)
		s.Equal("900707-9925", got)

		got, err = id.Format(10, time.Date(2090, 7, 6, 0, 0, 0, 0, time.UTC))
		s.Require().NoError(err)
		s.Equal("900707-9925", got)

		got, err = id.Format(10, time.Date(2090, 7, 7, 0, 0, 0, 0, time.UTC))
		s.Require().NoError(err)
		s.Equal("900707+9925", got)

		got, err = id.Format(12, time.Date(2090, 7, 7, 0, 0, 0, 0, time.UTC))
		s.Require().NoError(err)
		s.Equal("19900707-9925", got)
	})

	s.Run("normalizes 10 digit input", func() {
		for input, want := range map[string]string{
			"8507099805":  "850709-9805",
			"850709 9805": "850709-9805",
			"850709-9805": "850709-9805",
			"850709+9805": "850709+9805",
		} {
			got, err := s.mustParse(input).Format(10, s.now)
			s.Require().NoError(err)
			s.Equal(want, got, input)
		}
	})

	s.Run("12 digit form round trips", func() {
		for _, input := range []string{"8507099805", "8507699802", "850709+9805", "121212-2442"} {
			first := s.mustParse(input).String()
			second := s.mustParse(first).String()
			s.Equal(first, second, input)
		}
	})
}

func (s *ParserSuite) TestSeparator() {
	s.Equal("+", s.mustParse("850709+9805").Separator())
	s.Equal("-", s.mustParse("850709-9805").Separator())
	s.Equal("-", s.mustParse("850709 9805").Separator())
	s.Equal("-", s.mustParse("198507099805").Separator())
}

func (s *ParserSuite) TestZeroValue() {
	var id personnummer.Identity
	s.True(id.IsZero())
	s.False(s.mustParse("198507099805").IsZero())
}
