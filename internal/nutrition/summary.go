package nutrition

import (
	"math"

	"github.com/2beens/wellness/internal/targets"
)

type LoggedFood struct {
	FoodLog
	DisplayName string `json:"name"`
	KCal        int    `json:"calories"`
}

type Totals struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

type DaySummary struct {
	Date       string                    `json:"date"`
	Meals      map[MealType][]LoggedFood `json:"meals"`
	Totals     Totals                    `json:"totals"`
	Targets    targets.DailyTargets      `json:"targets"`
	Remaining  int                       `json:"remaining"`
	Percentage float64                   `json:"percentage"`
	Water      int                       `json:"waterGlasses"`
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// BuildDaySummary groups the logs of one day by meal and sums them against the targets.
// A missing calorie target counts as 2000.
func BuildDaySummary(date string, logs []FoodLog, dailyTargets targets.DailyTargets) DaySummary {
	meals := make(map[MealType][]LoggedFood, len(MealTypes))
	for _, m := range MealTypes {
		meals[m] = []LoggedFood{}
	}

	var calories, protein, carbs, fat float64
	for _, l := range logs {
		c := l.Calories()
		calories += c
		protein += l.ProteinG()
		carbs += l.CarbsG()
		fat += l.FatG()

		meal := groupOf(l.MealType)
		meals[meal] = append(meals[meal], LoggedFood{
			FoodLog:     l,
			DisplayName: l.Name(),
			KCal:        roundHalfUp(c),
		})
	}

	if dailyTargets.Calories <= 0 {
		dailyTargets.Calories = defaultCaloriesTarget
	}

	totals := Totals{
		Calories: roundHalfUp(calories),
		ProteinG: roundHalfUp(protein),
		CarbsG:   roundHalfUp(carbs),
		FatG:     roundHalfUp(fat),
	}
	target := float64(dailyTargets.Calories)

	return DaySummary{
		Date:       date,
		Meals:      meals,
		Totals:     totals,
		Targets:    dailyTargets,
		Remaining:  max(0, dailyTargets.Calories-totals.Calories),
		Percentage: math.Min(100, float64(totals.Calories)/target*100),
	}
}
