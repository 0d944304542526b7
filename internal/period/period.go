// Package period normalizes the calendar buckets the planner works in:
// days, weeks starting on Monday, and calendar months.
package period

import (
	"fmt"
	"time"
)

const DayFormat = "2006-01-02"

const MonthFormat = "2006-01"

// ParseDay parses a YYYY-MM-DD date string in UTC.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM month string and returns the first of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t, nil
}

// ParseWeek parses a YYYY-MM-DD date string and returns the Monday of its week.
func ParseWeek(s string) (time.Time, error) {
	t, err := ParseDay(s)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(t), nil
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// WeekStart truncates t to the Monday of its week.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of t's week.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns each calendar day from start through end inclusive.
// Returns nil when end precedes start.
func Days(start, end time.Time) []time.Time {
	start = DayStart(start)
	end = DayStart(end)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekOfMonth returns the 1-based week index of t within its month,
// counting rows of a Monday-first calendar.
func WeekOfMonth(t time.Time) int {
	first := MonthStart(t)
	firstMonday := WeekStart(first)
	return int(DayStart(t).Sub(firstMonday).Hours()/24)/7 + 1
}
