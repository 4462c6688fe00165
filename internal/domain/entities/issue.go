package entities

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	hoursPerDay = 24

	// offsets of the separators and seconds in "2006-01-02T15:04:05".
	dateTimeSeparator = 10
	secondsStart      = 17
	secondsEnd        = 19
)

// dateLayouts are tried in order when parsing a date string.
var dateLayouts = []string{ //nolint:gochecknoglobals // read-only layout table
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// IssueRecord is the validated subset of a GitHub issue. A nil field means
// the value is unknown, which is never an error.
type IssueRecord struct {
	CreatedAt *time.Time
	UpdatedAt *time.Time
	ClosedAt  *time.Time
}

// IssueDates holds the elapsed-day counts shown on the status page.
type IssueDates struct {
	DaysSinceCreation int  `json:"daysSinceCreation"`
	DaysSinceUpdate   *int `json:"daysSinceUpdate"`
	DaysSinceClose    *int `json:"daysSinceClose"`
	IsClosed          bool `json:"isClosed"`
}

// IssueDatesResolution is the outcome of one issue lookup. Dates is always
// usable: when Err is set only DaysSinceCreation carries information.
type IssueDatesResolution struct {
	Dates IssueDates
	Err   error
}

// Succeeded reports whether Dates came from a validated issue record.
func (r IssueDatesResolution) Succeeded() bool { return r.Err == nil }

// ParseDate parses a calendar date or an RFC 3339 date-time. Lowercase "t"
// and "z" are accepted, and a leap second ":60" resolves to the first
// instant of the next minute.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, &DateError{Value: value, Err: errors.New("empty date")}
	}

	normalized, leap := normalizeDate(value)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, normalized)
		if err == nil {
			if leap {
				parsed = parsed.Add(time.Second)
			}
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, &DateError{Value: value, Err: lastErr}
}

// normalizeDate uppercases the date-time separators and rewrites a leap
// second to ":59", reporting whether it did so.
func normalizeDate(value string) (string, bool) {
	normalized := strings.ToUpper(value)
	if len(normalized) < secondsEnd || normalized[dateTimeSeparator] != 'T' ||
		normalized[secondsStart-1] != ':' || normalized[secondsStart:secondsEnd] != "60" {
		return normalized, false
	}
	return normalized[:secondsStart] + "59" + normalized[secondsEnd:], true
}

// DaysBetween returns the whole days elapsed from since to now, floored.
// The result is negative when since lies in the future.
func DaysBetween(since, now time.Time) int {
	return int(math.Floor(now.Sub(since).Hours() / hoursPerDay))
}

// DaysSinceCreation is clamped to zero: the creation instant is configured,
// so a negative count means the local clock is off, not that data is bad.
func DaysSinceCreation(createdAt, now time.Time) int {
	return max(DaysBetween(createdAt, now), 0)
}

// DaysSince is nil for an unknown or future instant. Fetched timestamps in
// the future are treated as invalid data rather than shown as negative.
func DaysSince(at *time.Time, now time.Time) *int {
	if at == nil {
		return nil
	}
	days := DaysBetween(*at, now)
	if days < 0 {
		return nil
	}
	return &days
}
