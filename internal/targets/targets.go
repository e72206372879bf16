package targets

import (
	"errors"
	"math"
)

var ErrInvalidBiometrics = errors.New("weight, height and age must be positive")

type Goal string

const (
	GoalLoseFat     Goal = "lose_fat"
	GoalBuildMuscle Goal = "build_muscle"
	GoalBodyRecomp  Goal = "body_recomp"
	GoalAthletic    Goal = "athletic"
	GoalBulk        Goal = "bulk"
	GoalLeanToned   Goal = "lean_toned"
	GoalMaintain    Goal = "maintain"
)

// Goals lists every known goal, in the order they are offered during onboarding.
var Goals = []Goal{
	GoalLoseFat,
	GoalBuildMuscle,
	GoalBodyRecomp,
	GoalAthletic,
	GoalBulk,
	GoalLeanToned,
	GoalMaintain,
}

const activityMultiplier = 1.55

var calorieDelta = map[Goal]float64{
	GoalLoseFat:     -500,
	GoalBuildMuscle: 300,
	GoalBodyRecomp:  0,
	GoalBulk:        500,
	GoalAthletic:    -250,
	GoalLeanToned:   -250,
	GoalMaintain:    0,
}

func (g Goal) Valid() bool {
	_, ok := calorieDelta[g]
	return ok
}

type DailyTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// ComputeDailyTargets estimates the daily calorie and macro targets using the
// Mifflin-St Jeor BMR, a moderate activity multiplier and a per goal calorie delta.
// Unknown goals get no calorie adjustment.
func ComputeDailyTargets(weightKg, heightCm float64, age int, isMale bool, goal Goal) (DailyTargets, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return DailyTargets{}, ErrInvalidBiometrics
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if isMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := roundHalfUp(bmr * activityMultiplier)
	calories := tdee + calorieDelta[goal]

	protein := roundHalfUp(weightKg * 2)
	fat := roundHalfUp(calories * 0.25 / 9)
	carbs := roundHalfUp((calories - protein*4 - fat*9) / 4)

	return DailyTargets{
		Calories: int(calories),
		ProteinG: int(protein),
		CarbsG:   int(carbs),
		FatG:     int(fat),
	}, nil
}

// roundHalfUp rounds .5 towards positive infinity, also for negative numbers.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
