// Package dateutils parses the date formats found in Indian bank exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayFirstFormats are tried before anything else: when a date like 03/04/2024
// is ambiguous, the day-first reading wins because the target locale is India.
var dayFirstFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// formats are the remaining layouts, tried in order after the day-first
// group. The US month-first layout is deliberately last.
var formats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02.01.2006",
	"2.1.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"01/02/2006",
}

// shortYearPattern matches "DD MMM YY" ("05 Jan 24", "5 JAN 24").
var shortYearPattern = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{2})$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

var monthsByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate attempts to parse a date string using the ordered format chain.
// The time component, if any, is discarded. Callers treat an error as "drop
// this candidate row".
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := Clean(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range dayFirstFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return dateOnly(t), nil
		}
	}
	for _, format := range formats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return dateOnly(t), nil
		}
	}
	if m := shortYearPattern.FindStringSubmatch(cleaned); m != nil {
		return parseShortYear(m)
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// parseShortYear handles "DD MMM YY" with an explicit pivot: years below 50
// land in the 2000s, the rest in the 1900s. The pivot is the same for every
// caller.
func parseShortYear(m []string) (time.Time, error) {
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day: %s", m[1])
	}
	month, ok := monthsByAbbrev[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month: %s", m[2])
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year: %s", m[3])
	}
	if year < 50 {
		year += 2000
	} else {
		year += 1900
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// Clean trims whitespace and collapses internal runs of spaces.
func Clean(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRun.ReplaceAllString(dateStr, " ")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
