package utils

import (
	"fmt"
	"time"
)

const (
	DayKeyFormat   = "2006-01-02"
	MonthKeyFormat = "2006-01"
	MonthLabelFmt  = "January 2006"
)

// DayKey returns the daily bucket key (YYYY-MM-DD) for a date.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// MonthKey returns the monthly bucket key (YYYY-MM) for a date.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyFormat)
}

// WeekKey returns the weekly bucket key (YYYY-Www) for a date.
//
// The week number is ceil((daysSinceJan1 + weekdayOfJan1 + 1) / 7) with
// Sunday counted as weekday 0. This deliberately is NOT the ISO 8601 week:
// the two disagree near year boundaries and downstream chart keys depend
// on this exact arithmetic.
func WeekKey(t time.Time) string {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	week := (t.YearDay() + int(jan1.Weekday()) + 6) / 7
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

// MonthLabel converts a "YYYY-MM" bucket key into a display label like
// "May 2023". An unparseable key is returned unchanged as its own label.
func MonthLabel(monthKey string) string {
	t, err := time.Parse(MonthKeyFormat, monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format(MonthLabelFmt)
}
