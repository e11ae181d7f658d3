package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/remnd/remnd/internal/models"
)

func TestParseDuration_Valid(t *testing.T) {
	cases := []struct {
		spec string
		want time.Duration
	}{
		{"90", 90 * time.Minute},
		{"1", time.Minute},
		{"10m", 10 * time.Minute},
		{"45s", 45 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"2d4h", 52 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"1w2d3h4m5s", 7*24*time.Hour + 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second},
		{"10M", 10 * time.Minute},
		{" 15m ", 15 * time.Minute},
	}

	for _, tc := range cases {
		got, err := ParseDuration(tc.spec)
		if err != nil {
			t.Errorf("ParseDuration(%q) returned error: %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tc.spec, got, tc.want)
		}
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	cases := []string{
		"",
		"0",
		"0m",
		"0h0m0s",
		"abc",
		"1x",
		"30m1h", // components must appear in w,d,h,m,s order
		"1h1h",
		"-5m",
		"1.5h",
	}

	for _, spec := range cases {
		_, err := ParseDuration(spec)
		if err == nil {
			t.Errorf("ParseDuration(%q) succeeded, want error", spec)
			continue
		}
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidDuration", spec, err)
		}
	}
}

func TestParseDuration_DueTimeMovesForward(t *testing.T) {
	now := time.Now()
	for _, spec := range []string{"1", "45s", "10m", "1h30m", "2d4h", "1w"} {
		d, err := ParseDuration(spec)
		if err != nil {
			t.Fatalf("ParseDuration(%q) returned error: %v", spec, err)
		}
		if !now.Add(d).After(now) {
			t.Errorf("ParseDuration(%q) = %v does not move due time forward", spec, d)
		}
	}
}

func TestParseInterval_Valid(t *testing.T) {
	cases := []struct {
		spec     string
		wantN    int64
		wantUnit models.RepeatUnit
	}{
		{"30s", 30, models.RepeatSeconds},
		{"1sec", 1, models.RepeatSeconds},
		{"2secs", 2, models.RepeatSeconds},
		{"10seconds", 10, models.RepeatSeconds},
		{"5m", 5, models.RepeatMinutes},
		{"5mins", 5, models.RepeatMinutes},
		{"3h", 3, models.RepeatHours},
		{"3hrs", 3, models.RepeatHours},
		{"1d", 1, models.RepeatDays},
		{"7days", 7, models.RepeatDays},
		{"2w", 2, models.RepeatWeeks},
		{"2weeks", 2, models.RepeatWeeks},
		{"1mo", 1, models.RepeatMonths},
		{"6mon", 6, models.RepeatMonths},
		{"3months", 3, models.RepeatMonths},
		{"1D", 1, models.RepeatDays},
		{"2 weeks", 2, models.RepeatWeeks},
	}

	for _, tc := range cases {
		n, unit, err := ParseInterval(tc.spec)
		if err != nil {
			t.Errorf("ParseInterval(%q) returned error: %v", tc.spec, err)
			continue
		}
		if n != tc.wantN || unit != tc.wantUnit {
			t.Errorf("ParseInterval(%q) = (%d, %s), want (%d, %s)", tc.spec, n, unit, tc.wantN, tc.wantUnit)
		}
	}
}

func TestParseInterval_Invalid(t *testing.T) {
	cases := []string{
		"",
		"d",
		"0d",
		"-1d",
		"5",
		"5fortnights",
		"1h30m",
	}

	for _, spec := range cases {
		_, _, err := ParseInterval(spec)
		if err == nil {
			t.Errorf("ParseInterval(%q) succeeded, want error", spec)
			continue
		}
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("ParseInterval(%q) error = %v, want ErrInvalidDuration", spec, err)
		}
	}
}
