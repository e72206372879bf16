package pkg

import "time"

const DateLayout = "2006-01-02"

// Today returns the calendar date of now in loc, formatted as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// DateOf truncates t to midnight in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// StartOfWeek returns midnight of the most recent Sunday (or today, if it is Sunday).
func StartOfWeek(now time.Time, loc *time.Location) time.Time {
	today := DateOf(now, loc)
	return today.AddDate(0, 0, -int(today.Weekday()))
}
