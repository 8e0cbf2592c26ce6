package utils

import (
	"math"
	"time"
)

// Window boundary helpers. All boundaries are computed with calendar
// arithmetic in the reference time's location, so month/year rollovers and
// leap years fall out of time.Date normalization rather than string math.

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns local midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the last instant of the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth rolls to day 0 of the next month, which time.Date normalizes
// to the last calendar day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()))
}

// DaysOfWeek returns the fixed Sunday-first label sequence used by the
// weekly calorie series.
func DaysOfWeek() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// SameCalendarDay reports whether a and b fall on the same calendar day,
// compared in a's location.
func SameCalendarDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of whole calendar days from a to b
// (negative when b is before a), compared in a's location. DST transitions
// do not skew the count because it is derived from calendar days, not
// 24-hour durations.
func DaysBetween(a, b time.Time) int {
	start := StartOfDay(a)
	end := StartOfDay(b.In(a.Location()))
	return int(math.Round(end.Sub(start).Hours() / 24))
}
