package scheduling

import (
	"errors"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "3:04 PM"
)

// ErrMalformedTimeRange is returned when a time range cannot be parsed.
// Accepted forms: "HH:MM AM/PM to HH:MM AM/PM" or "HH:MM AM/PM - HH:MM AM/PM".
var ErrMalformedTimeRange = errors.New("invalid time format, use 'HH:MM AM/PM to HH:MM AM/PM' or 'HH:MM AM/PM - HH:MM AM/PM'")

// TimeRange is a half-open interval [Start, End) on a single calendar day.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ParseTimeRange converts a date and a textual time range into a TimeRange.
// Both " to " and " - " are accepted as delimiters between the two clock
// times. Fails when either half does not resolve to an unambiguous 12-hour
// clock time or when start >= end.
func ParseTimeRange(date, rangeText string) (TimeRange, error) {
	var parts []string
	switch {
	case strings.Contains(rangeText, " to "):
		parts = strings.SplitN(rangeText, " to ", 2)
	case strings.Contains(rangeText, " - "):
		parts = strings.SplitN(rangeText, " - ", 2)
	default:
		return TimeRange{}, ErrMalformedTimeRange
	}

	start, err := time.Parse(dateLayout+" "+clockLayout, date+" "+strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, ErrMalformedTimeRange
	}
	end, err := time.Parse(dateLayout+" "+clockLayout, date+" "+strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, ErrMalformedTimeRange
	}
	if !start.Before(end) {
		return TimeRange{}, ErrMalformedTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap.
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.Start.Before(other.End) && other.Start.Before(tr.End)
}

// Format renders the range in canonical text form, e.g. "2:00 PM to 3:00 PM".
// Every stored booking carries its time in this form so that textual equality
// matches interval equality.
func (tr TimeRange) Format() string {
	return tr.Start.Format(clockLayout) + " to " + tr.End.Format(clockLayout)
}

// NormalizeRangeText parses and re-renders a time range in canonical form.
func NormalizeRangeText(date, rangeText string) (string, error) {
	rng, err := ParseTimeRange(date, rangeText)
	if err != nil {
		return "", err
	}
	return rng.Format(), nil
}
