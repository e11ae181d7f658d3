package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/remnd/remnd/internal/models"
)

// ErrInvalidDuration is wrapped by every parse failure in this package so
// callers can distinguish bad input from real errors.
var ErrInvalidDuration = errors.New("invalid duration")

// Compound durations list components in this fixed order, each optional:
// weeks, days, hours, minutes, seconds.
var compoundPattern = regexp.MustCompile(`^(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

var intervalPattern = regexp.MustCompile(`^(\d+)\s*([a-z]+)$`)

var unitAliases = map[string]models.RepeatUnit{
	"s":       models.RepeatSeconds,
	"sec":     models.RepeatSeconds,
	"secs":    models.RepeatSeconds,
	"second":  models.RepeatSeconds,
	"seconds": models.RepeatSeconds,
	"m":       models.RepeatMinutes,
	"min":     models.RepeatMinutes,
	"mins":    models.RepeatMinutes,
	"minute":  models.RepeatMinutes,
	"minutes": models.RepeatMinutes,
	"h":       models.RepeatHours,
	"hr":      models.RepeatHours,
	"hrs":     models.RepeatHours,
	"hour":    models.RepeatHours,
	"hours":   models.RepeatHours,
	"d":       models.RepeatDays,
	"day":     models.RepeatDays,
	"days":    models.RepeatDays,
	"w":       models.RepeatWeeks,
	"wk":      models.RepeatWeeks,
	"wks":     models.RepeatWeeks,
	"week":    models.RepeatWeeks,
	"weeks":   models.RepeatWeeks,
	"mo":      models.RepeatMonths,
	"mon":     models.RepeatMonths,
	"month":   models.RepeatMonths,
	"months":  models.RepeatMonths,
}

// ParseDuration interprets a user-facing "remind me in" spec. A bare
// non-negative integer is taken as minutes; anything else must match the
// compound pattern, e.g. "1h30m", "2d4h", "45s". The result is always
// strictly positive: a reminder has to move forward in time.
func ParseDuration(spec string) (time.Duration, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrInvalidDuration)
	}

	if isDigits(spec) {
		n, err := strconv.ParseInt(spec, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, spec)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
		}
		return time.Duration(n) * time.Minute, nil
	}

	m := compoundPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, fmt.Errorf(`%w: %q (try "10m", "1h30m", "45s", or a number of minutes)`, ErrInvalidDuration, spec)
	}

	var d time.Duration
	units := []time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute, time.Second}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, spec)
		}
		d += time.Duration(n) * unit
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}
	return d, nil
}

// ParseInterval interprets a repeat interval spec of the form "<n><unit>",
// e.g. "1d", "2 weeks", "6mo". Unit aliases are case-insensitive.
func ParseInterval(spec string) (int64, models.RepeatUnit, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))

	m := intervalPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, "", fmt.Errorf(`%w: %q (try "30m", "1d", or "2weeks")`, ErrInvalidDuration, spec)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidDuration, spec)
	}
	if n <= 0 {
		return 0, "", fmt.Errorf("%w: interval must be positive", ErrInvalidDuration)
	}

	unit, ok := unitAliases[m[2]]
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, m[2])
	}

	return n, unit, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
