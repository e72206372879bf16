package workouts

import (
	"time"

	"github.com/2beens/wellness/pkg"
)

const (
	maxStreakDays = 365
	calendarDays  = 90
)

type CalendarDay struct {
	Date       string `json:"date"`
	HasWorkout bool   `json:"hasWorkout"`
	IsToday    bool   `json:"isToday"`
}

func dateSet(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Streak counts consecutive workout days ending today. A missing today does not
// break the streak, so a run ending yesterday still counts.
func Streak(completedDates []string, now time.Time, loc *time.Location) int {
	dates := dateSet(completedDates)
	today := pkg.DateOf(now, loc)

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		day := today.AddDate(0, 0, -i).Format(pkg.DateLayout)
		if _, ok := dates[day]; ok {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Calendar returns the last 90 days, oldest first.
func Calendar(completedDates []string, now time.Time, loc *time.Location) []CalendarDay {
	dates := dateSet(completedDates)
	today := pkg.DateOf(now, loc)

	days := make([]CalendarDay, 0, calendarDays)
	for i := calendarDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(pkg.DateLayout)
		_, has := dates[day]
		days = append(days, CalendarDay{
			Date:       day,
			HasWorkout: has,
			IsToday:    i == 0,
		})
	}
	return days
}
