package utils

import (
	"testing"
	"time"
)

func TestDayAndMonthKeys(t *testing.T) {
	d := time.Date(2023, time.May, 3, 14, 30, 0, 0, time.UTC)
	if got := DayKey(d); got != "2023-05-03" {
		t.Errorf("DayKey = %q, want 2023-05-03", got)
	}
	if got := MonthKey(d); got != "2023-05" {
		t.Errorf("MonthKey = %q, want 2023-05", got)
	}
}

func TestWeekKey(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		// 2023 starts on a Sunday: Jan 1-7 is week 1, Jan 8 opens week 2.
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "2023-W01"},
		{time.Date(2023, time.January, 7, 0, 0, 0, 0, time.UTC), "2023-W01"},
		{time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC), "2023-W02"},
		// 2021 starts on a Friday, so Jan 3 (the first Sunday) already
		// lands in week 2.
		{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), "2021-W01"},
		{time.Date(2021, time.January, 3, 0, 0, 0, 0, time.UTC), "2021-W02"},
		// Late December always stays in its own year, unlike ISO weeks.
		{time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC), "2021-W53"},
	}
	for _, tc := range cases {
		if got := WeekKey(tc.date); got != tc.want {
			t.Errorf("WeekKey(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2023-05"); got != "May 2023" {
		t.Errorf("MonthLabel = %q, want May 2023", got)
	}
	// Unparseable keys pass through as their own label.
	if got := MonthLabel("not-a-month"); got != "not-a-month" {
		t.Errorf("MonthLabel = %q, want key returned unchanged", got)
	}
}
