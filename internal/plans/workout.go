package plans

import "time"

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

func (l FitnessLevel) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

type Equipment string

const (
	EquipmentNone    Equipment = "none"
	EquipmentHomeGym Equipment = "home_gym"
	EquipmentGym     Equipment = "gym"
)

func (e Equipment) Valid() bool {
	return e == EquipmentNone || e == EquipmentHomeGym || e == EquipmentGym
}

type DayTag string

const (
	DayPush DayTag = "push"
	DayPull DayTag = "pull"
	DayLegs DayTag = "legs"
	DayRest DayTag = "rest"
)

// weekPlan is indexed by time.Weekday, Sunday first.
type weekPlan [7]DayTag

var (
	twoDaySplit   = weekPlan{DayPush, DayLegs, DayRest, DayPush, DayLegs, DayRest, DayRest}
	fourDaySplit  = weekPlan{DayPush, DayPull, DayLegs, DayRest, DayPush, DayPull, DayRest}
	sixDaySplit   = weekPlan{DayPush, DayPull, DayLegs, DayPush, DayPull, DayLegs, DayRest}
	weeklyPlanFor = map[FitnessLevel]map[Equipment]weekPlan{
		LevelBeginner: {
			EquipmentNone:    twoDaySplit,
			EquipmentHomeGym: fourDaySplit,
			EquipmentGym:     fourDaySplit,
		},
		LevelIntermediate: {
			EquipmentNone:    fourDaySplit,
			EquipmentHomeGym: fourDaySplit,
			EquipmentGym:     fourDaySplit,
		},
		LevelAdvanced: {
			EquipmentHomeGym: sixDaySplit,
			EquipmentGym:     sixDaySplit,
		},
	}
)

// ResolveDayPlan returns the workout category of the given weekday.
// Unknown levels rest. Beginners with unknown equipment get the no-equipment plan,
// everyone else with an equipment missing from their plan rests.
func ResolveDayPlan(level FitnessLevel, equipment Equipment, day time.Weekday) DayTag {
	if day < time.Sunday || day > time.Saturday {
		return DayRest
	}

	byEquipment, ok := weeklyPlanFor[level]
	if !ok {
		return DayRest
	}

	plan, ok := byEquipment[equipment]
	if !ok {
		if level != LevelBeginner {
			return DayRest
		}
		plan = byEquipment[EquipmentNone]
	}

	return plan[day]
}
