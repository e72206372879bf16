package profile

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/targets"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidValue         = errors.New("invalid value")
	ErrMissingBiometrics    = errors.New("height, weight, age and goal are required")
	ErrOnboardingIncomplete = errors.New("onboarding not complete")
)

const (
	defaultTimelineMonths     = 3
	defaultWorkoutDurationMin = 30
)

const (
	maxHeightCm        = 272.0
	maxWeightKg        = 500.0
	maxAge             = 120
	maxTimelineMonths  = 36
	maxWorkoutDuration = 240
)

var (
	genders           = []string{"male", "female", "other"}
	skinRoutineLevels = []string{"none", "minimal", "full"}
	workoutTimes      = []string{"morning", "afternoon", "evening", "flexible"}
)

type Profile struct {
	UserID               string    `json:"userId"`
	FullName             *string   `json:"fullName"`
	HeightCm             *float64  `json:"heightCm"`
	WeightKg             *float64  `json:"weightKg"`
	Age                  *int      `json:"age"`
	Gender               *string   `json:"gender"`
	FitnessLevel         *string   `json:"fitnessLevel"`
	Equipment            *string   `json:"equipment"`
	SkinType             *string   `json:"skinType"`
	SkinConcerns         []string  `json:"skinConcerns"`
	SkinRoutineLevel     *string   `json:"skinRoutineLevel"`
	Goal                 *string   `json:"goal"`
	TimelineMonths       int       `json:"timelineMonths"`
	TargetWeightKg       *float64  `json:"targetWeightKg"`
	PreferredWorkoutTime *string   `json:"preferredWorkoutTime"`
	WorkoutDurationMin   int       `json:"workoutDurationMin"`
	DietaryRestrictions  []string  `json:"dietaryRestrictions"`
	DailyCaloriesTarget  *int      `json:"dailyCaloriesTarget"`
	DailyProteinG        *int      `json:"dailyProteinG"`
	DailyCarbsG          *int      `json:"dailyCarbsG"`
	DailyFatG            *int      `json:"dailyFatG"`
	OnboardingComplete   bool      `json:"onboardingComplete"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func newEmptyProfile(userID string) *Profile {
	return &Profile{
		UserID:              userID,
		SkinConcerns:        []string{},
		TimelineMonths:      defaultTimelineMonths,
		WorkoutDurationMin:  defaultWorkoutDurationMin,
		DietaryRestrictions: []string{},
	}
}

// Level returns the fitness level, beginner when unset.
func (p *Profile) Level() plans.FitnessLevel {
	if p.FitnessLevel == nil || *p.FitnessLevel == "" {
		return plans.LevelBeginner
	}
	return plans.FitnessLevel(*p.FitnessLevel)
}

// EquipmentOrNone returns the equipment, none when unset.
func (p *Profile) EquipmentOrNone() plans.Equipment {
	if p.Equipment == nil || *p.Equipment == "" {
		return plans.EquipmentNone
	}
	return plans.Equipment(*p.Equipment)
}

// SkinTypeOrNormal returns the skin type, normal when unset.
func (p *Profile) SkinTypeOrNormal() plans.SkinType {
	if p.SkinType == nil || *p.SkinType == "" {
		return plans.SkinNormal
	}
	return plans.SkinType(*p.SkinType)
}

func (p *Profile) GoalOrMaintain() targets.Goal {
	if p.Goal == nil || *p.Goal == "" {
		return targets.GoalMaintain
	}
	return targets.Goal(*p.Goal)
}

// Targets returns the stored daily targets, zero values where unset.
func (p *Profile) Targets() targets.DailyTargets {
	deref := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	return targets.DailyTargets{
		Calories: deref(p.DailyCaloriesTarget),
		ProteinG: deref(p.DailyProteinG),
		CarbsG:   deref(p.DailyCarbsG),
		FatG:     deref(p.DailyFatG),
	}
}

func (p *Profile) setTargets(t targets.DailyTargets) {
	p.DailyCaloriesTarget = &t.Calories
	p.DailyProteinG = &t.ProteinG
	p.DailyCarbsG = &t.CarbsG
	p.DailyFatG = &t.FatG
}

// Fields holds the user editable parts of a profile. Nil fields are left as they are.
type Fields struct {
	FullName             *string  `json:"fullName"`
	HeightCm             *float64 `json:"heightCm"`
	WeightKg             *float64 `json:"weightKg"`
	Age                  *int     `json:"age"`
	Gender               *string  `json:"gender"`
	FitnessLevel         *string  `json:"fitnessLevel"`
	Equipment            *string  `json:"equipment"`
	SkinType             *string  `json:"skinType"`
	SkinConcerns         []string `json:"skinConcerns"`
	SkinRoutineLevel     *string  `json:"skinRoutineLevel"`
	Goal                 *string  `json:"goal"`
	TimelineMonths       *int     `json:"timelineMonths"`
	TargetWeightKg       *float64 `json:"targetWeightKg"`
	PreferredWorkoutTime *string  `json:"preferredWorkoutTime"`
	WorkoutDurationMin   *int     `json:"workoutDurationMin"`
	DietaryRestrictions  []string `json:"dietaryRestrictions"`
}

func invalid(field string) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, field)
}

func validEnum(v *string, allowed func(string) bool) bool {
	return v == nil || allowed(*v)
}

func inRange[T int | float64](v *T, maxV T) bool {
	return v == nil || (*v > 0 && *v <= maxV)
}

func (f *Fields) Validate() error {
	switch {
	case !inRange(f.HeightCm, maxHeightCm):
		return invalid("heightCm")
	case !inRange(f.WeightKg, maxWeightKg):
		return invalid("weightKg")
	case !inRange(f.TargetWeightKg, maxWeightKg):
		return invalid("targetWeightKg")
	case !inRange(f.Age, maxAge):
		return invalid("age")
	case !inRange(f.TimelineMonths, maxTimelineMonths):
		return invalid("timelineMonths")
	case !inRange(f.WorkoutDurationMin, maxWorkoutDuration):
		return invalid("workoutDurationMin")
	case !validEnum(f.Gender, func(s string) bool { return slices.Contains(genders, s) }):
		return invalid("gender")
	case !validEnum(f.FitnessLevel, func(s string) bool { return plans.FitnessLevel(s).Valid() }):
		return invalid("fitnessLevel")
	case !validEnum(f.Equipment, func(s string) bool { return plans.Equipment(s).Valid() }):
		return invalid("equipment")
	case !validEnum(f.SkinType, func(s string) bool { return plans.SkinType(s).Valid() }):
		return invalid("skinType")
	case !validEnum(f.SkinRoutineLevel, func(s string) bool { return slices.Contains(skinRoutineLevels, s) }):
		return invalid("skinRoutineLevel")
	case !validEnum(f.Goal, func(s string) bool { return targets.Goal(s).Valid() }):
		return invalid("goal")
	case !validEnum(f.PreferredWorkoutTime, func(s string) bool { return slices.Contains(workoutTimes, s) }):
		return invalid("preferredWorkoutTime")
	}
	return nil
}

// applyTo copies every set field into p.
func (f *Fields) applyTo(p *Profile) {
	setIf(&p.FullName, f.FullName)
	setIf(&p.HeightCm, f.HeightCm)
	setIf(&p.WeightKg, f.WeightKg)
	setIf(&p.Age, f.Age)
	setIf(&p.Gender, f.Gender)
	setIf(&p.FitnessLevel, f.FitnessLevel)
	setIf(&p.Equipment, f.Equipment)
	setIf(&p.SkinType, f.SkinType)
	setIf(&p.SkinRoutineLevel, f.SkinRoutineLevel)
	setIf(&p.Goal, f.Goal)
	setIf(&p.TargetWeightKg, f.TargetWeightKg)
	setIf(&p.PreferredWorkoutTime, f.PreferredWorkoutTime)
	if f.SkinConcerns != nil {
		p.SkinConcerns = f.SkinConcerns
	}
	if f.DietaryRestrictions != nil {
		p.DietaryRestrictions = f.DietaryRestrictions
	}
	if f.TimelineMonths != nil {
		p.TimelineMonths = *f.TimelineMonths
	}
	if f.WorkoutDurationMin != nil {
		p.WorkoutDurationMin = *f.WorkoutDurationMin
	}
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// affectsTargets reports whether the update touches an input of the target calculation.
func (f *Fields) affectsTargets() bool {
	return f.Goal != nil || f.WeightKg != nil || f.HeightCm != nil || f.Age != nil || f.Gender != nil
}

func computeTargets(p *Profile) (targets.DailyTargets, error) {
	if p.HeightCm == nil || p.WeightKg == nil || p.Age == nil || p.Goal == nil {
		return targets.DailyTargets{}, ErrMissingBiometrics
	}
	isMale := p.Gender != nil && *p.Gender == "male"
	return targets.ComputeDailyTargets(*p.WeightKg, *p.HeightCm, *p.Age, isMale, targets.Goal(*p.Goal))
}
