package plans

import "github.com/2beens/wellness/internal/targets"

const defaultFocusMessage = "Small steps every day lead to big changes over time."

var focusMessages = map[targets.Goal]string{
	targets.GoalLoseFat:     "Consistency is key. Every healthy choice brings you closer to your goal.",
	targets.GoalBuildMuscle: "Progressive overload today, strength tomorrow. Keep pushing!",
	targets.GoalBodyRecomp:  "Patience pays off. Trust the process and stay consistent.",
	targets.GoalAthletic:    "Train like an athlete. Speed, power, endurance - build them all.",
	targets.GoalBulk:        "Fuel your gains. Eat well, train hard, grow strong.",
	targets.GoalLeanToned:   "Sculpt your physique. Every rep brings definition.",
	targets.GoalMaintain:    "Maintenance is success. Keep up the great habits you've built.",
}

func FocusMessage(goal targets.Goal) string {
	if msg, ok := focusMessages[goal]; ok {
		return msg
	}
	return defaultFocusMessage
}

func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func IsMorning(hour int) bool {
	return hour < 12
}
