package personnummer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveCentury(t *testing.T) {
	now := time.Date(2010, 10, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		raw   rawCapture
		month int
		day   int
		want  int
	}{
		{"explicit century is verbatim", rawCapture{century: "18", year: "85"}, 7, 9, 18},
		{"out of range century is not checked", rawCapture{century: "99", year: "85"}, 7, 9, 99},
		{"past date stays in current century", rawCapture{year: "09"}, 9, 9, 20},
		{"today counts as passed", rawCapture{year: "10"}, 10, 10, 20},
		{"tomorrow goes back a century", rawCapture{year: "10"}, 10, 11, 19},
		{"plus goes back another century", rawCapture{year: "11", separator: "+"}, 11, 11, 18},
		{"plus on a past date goes back once", rawCapture{year: "10", separator: "+"}, 1, 1, 19},
		{"impossible date still yields a century", rawCapture{year: "85"}, 2, 31, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCentury(tt.raw, tt.month, tt.day, now))
		})
	}
}

func TestResolveCentury_UsesReferenceLocation(t *testing.T) {
	stockholm := time.FixedZone("CET", 3600)
	// 2010-10-10 00:30 in Stockholm is still 2010-10-09 in UTC.
	now := time.Date(2010, 10, 10, 0, 30, 0, 0, stockholm)

	assert.Equal(t, 20, resolveCentury(rawCapture{year: "10"}, 10, 10, now))
}
