// Package review holds the spaced-repetition scheduling rules: the fixed
// streak-to-interval curve and the predicate deciding whether a card is due.
package review

import "time"

// Interval returns the number of whole days until a card should be reviewed
// again, given the user's current streak. The curve is a fixed lookup table;
// changing it here changes the scheduling policy everywhere.
//
// Streaks below 1 never reach this function through the API (the upsert path
// rejects them first), but the function stays total and treats them as
// immediately due.
func Interval(streak int) int {
	if streak < 1 {
		return 0
	}

	switch streak {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 3
	case 4:
		return 5
	case 5:
		return 7
	case 6:
		return 10
	case 7:
		return 14
	case 8:
		return 30
	case 9:
		return 60
	default:
		return 180
	}
}

// NextDate returns the next review date for the given streak: the calendar
// date of today plus Interval(streak) days, at midnight UTC.
func NextDate(today time.Time, streak int) time.Time {
	return Date(today).AddDate(0, 0, Interval(streak))
}

// Due reports whether a card is due for review: either it has never been
// reviewed (next is nil) or today's date is on or after the next review date.
// A card becomes due ON its review date, not strictly after it.
func Due(today time.Time, next *time.Time) bool {
	if next == nil {
		return true
	}
	return !Date(today).Before(Date(*next))
}

// Date truncates t to its calendar date at midnight UTC. Review scheduling
// compares whole dates, never times of day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
