// Package dateutils resolves the loosely formatted dates found in OCR'd statements.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date layouts
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutDayFirst = "2/1/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutDisplay  = "02 Jan 2006"
)

// DayFirstFormats are tried in order. Ambiguous numeric dates resolve day
// before month: "03/04/2024" is 3 April.
var DayFirstFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"20060102",
	"2006/1/2",
	DateLayoutDayFirst,
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-January-2006",
	"2 Jan 06",
	"2-Jan-06",
	"2Jan2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006 3:04 PM",
	"2/1/2006 3:04:05 PM",
}

// YearlessFormats carry only day and month. The year comes from the reference
// clock passed to ParseDayFirstAt.
var YearlessFormats = []string{
	"2/1",
	"2-1",
	"2 Jan",
	"2-Jan",
	"2 January",
	"2-January",
}

// MonthFirstFormats are the fallback for numeric dates that cannot be day-first,
// such as "12/25/2024".
var MonthFirstFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"1/2/06",
	"1-2-06",
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the value and collapses inner whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDayFirst resolves a date string using the day-first convention,
// falling back to month-first only when no day-first reading exists.
// Dates without a year take the current year.
func ParseDayFirst(dateStr string) (time.Time, error) {
	return ParseDayFirstAt(dateStr, time.Now())
}

// ParseDayFirstAt is ParseDayFirst with year-less dates resolved against now.
func ParseDayFirstAt(dateStr string, now time.Time) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range DayFirstFormats {
		if t, err := time.Parse(format, clean); err == nil {
			return t, nil
		}
	}
	for _, format := range MonthFirstFormats {
		if t, err := time.Parse(format, clean); err == nil {
			return t, nil
		}
	}
	for _, format := range YearlessFormats {
		if t, err := time.Parse(format, clean); err == nil {
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// IsPlausibleYear rejects years that are most likely OCR misreads:
// anything up to 2000 or beyond next year.
func IsPlausibleYear(t time.Time, now time.Time) bool {
	year := t.Year()
	return year > 2000 && year <= now.Year()+1
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
