package workouts

import (
	"errors"
	"time"

	"github.com/2beens/wellness/internal/plans"
)

var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrWorkoutLogNotFound = errors.New("workout log not found")
	ErrLogNotStarted      = errors.New("workout log is not in started state")
	ErrRestDay            = errors.New("today is a rest day")
)

type LogStatus string

const (
	StatusStarted   LogStatus = "started"
	StatusCompleted LogStatus = "completed"
)

// MuscleGroups are the library filters, "all" disables filtering.
var MuscleGroups = []string{"all", "Chest", "Back", "Legs", "Shoulders", "Arms", "Core", "Cardio"}

type Exercise struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscleGroup"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

type WorkoutExercise struct {
	Exercise   Exercise `json:"exercise"`
	Sets       int      `json:"sets"`
	Reps       string   `json:"reps"`
	OrderIndex int      `json:"orderIndex"`
}

type Workout struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	DayTag      plans.DayTag      `json:"dayTag"`
	Difficulty  string            `json:"difficulty"`
	MuscleGroup string            `json:"muscleGroup"`
	DurationMin int               `json:"durationMin"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

type Log struct {
	ID          int        `json:"id"`
	UserID      string     `json:"userId"`
	WorkoutID   int        `json:"workoutId"`
	Date        string     `json:"date"`
	Status      LogStatus  `json:"status"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

type HistoryEntry struct {
	LogID       int        `json:"logId"`
	WorkoutID   int        `json:"workoutId"`
	WorkoutName string     `json:"workoutName"`
	MuscleGroup string     `json:"muscleGroup"`
	Date        string     `json:"date"`
	CompletedAt *time.Time `json:"completedAt"`
}

type History struct {
	Logs     []HistoryEntry `json:"logs"`
	Streak   int            `json:"streak"`
	Calendar []CalendarDay  `json:"calendar"`
}

// Today is the workout planned for the current day. Workout is nil on rest days.
type Today struct {
	DayTag  plans.DayTag `json:"dayTag"`
	Workout *Workout     `json:"workout,omitempty"`
	Log     *Log         `json:"log,omitempty"`
}
