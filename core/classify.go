package core

import (
	"fmt"
	"time"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// Source timestamps are ISO-like strings, sometimes with a trailing zone
// offset, sometimes date-only.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateOnlyLayout  = "2006-01-02"
)

// ParseIncidentTime parses the leading datetime of a raw incident
// timestamp. Trailing fragments (fractional seconds, zone offsets) are
// ignored; a bare date parses with a midnight time. Anything else fails
// with ErrMalformedTimestamp so rows are excluded instead of misclassified.
func ParseIncidentTime(raw string) (time.Time, error) {
	if len(raw) >= len(timestampLayout) {
		if t, err := time.Parse(timestampLayout, raw[:len(timestampLayout)]); err == nil {
			return t, nil
		}
	}
	if len(raw) >= len(dateOnlyLayout) {
		if t, err := time.Parse(dateOnlyLayout, raw[:len(dateOnlyLayout)]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", contract.ErrMalformedTimestamp, raw)
}

// Classify derives the time-of-day bucket and weekday/weekend label for a
// raw incident timestamp.
func Classify(raw string) (schema.TimePeriod, schema.DayType, error) {
	t, err := ParseIncidentTime(raw)
	if err != nil {
		return "", "", err
	}
	return periodForHour(t.Hour()), dayTypeFor(t.Weekday()), nil
}

// periodForHour maps an hour of day onto its bucket.
func periodForHour(hour int) schema.TimePeriod {
	switch {
	case hour >= 6 && hour <= 11:
		return schema.PeriodMorning
	case hour >= 12 && hour <= 17:
		return schema.PeriodAfternoon
	case hour >= 18 && hour <= 21:
		return schema.PeriodEvening
	default:
		return schema.PeriodNight
	}
}

// dayTypeFor labels Saturday and Sunday as weekend.
func dayTypeFor(d time.Weekday) schema.DayType {
	if d == time.Saturday || d == time.Sunday {
		return schema.DayWeekend
	}
	return schema.DayWeekday
}

// monthKey returns the YYYY-MM bucket of a raw timestamp.
func monthKey(raw string) (string, error) {
	t, err := ParseIncidentTime(raw)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01"), nil
}

// yearOf returns the calendar year of a raw timestamp.
func yearOf(raw string) (int, error) {
	t, err := ParseIncidentTime(raw)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}
