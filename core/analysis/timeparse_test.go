package analysis

import (
	"errors"
	"testing"

	"github.com/railops/yardwheel/core/model"
)

func TestParseHour(t *testing.T) {
	cases := []struct {
		in   string
		hour int
	}{
		{"0:00-0:15", 0},
		{"0:45-1:00", 0},
		{"23:45", 23},
		{"23:45-0:00", 23},
		{"3:30", 3},
		{" 12:00 ", 12},
	}
	for _, c := range cases {
		got, err := ParseHour(c.in)
		if err != nil {
			t.Fatalf("ParseHour(%q): %v", c.in, err)
		}
		if got != c.hour {
			t.Errorf("ParseHour(%q) = %d, want %d", c.in, got, c.hour)
		}
	}
}

func TestParseHourRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "noon", "24:00", "25:10-26:00", "12", ":30"} {
		_, err := ParseHour(in)
		if err == nil {
			t.Errorf("ParseHour(%q): expected error", in)
		}
		var pe *model.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseHour(%q): expected ParseError, got %T", in, err)
		}
	}
}
