package nutrition

import (
	"errors"
	"time"

	"github.com/2beens/wellness/internal/nutrition/mealscan"
)

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrFoodLogNotFound = errors.New("food log not found")
	ErrInvalidFoodLog  = errors.New("invalid food log")
	ErrNoItemsSelected = errors.New("no detected items selected")
)

const (
	defaultQuantityG      = 100
	defaultCaloriesTarget = 2000
	minSearchQueryLength  = 3
	searchLimit           = 10
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists meals in the order of the day.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// groupOf returns the meal a log is shown under. Unknown meal types go to snacks.
func groupOf(m MealType) MealType {
	if m.Valid() {
		return m
	}
	return MealSnack
}

type Food struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
	ServingSizeG    float64 `json:"servingSizeG"`
}

type FoodLog struct {
	ID               int       `json:"id"`
	UserID           string    `json:"userId"`
	FoodID           *int      `json:"foodId"`
	MealPhotoLogID   *int      `json:"mealPhotoLogId"`
	Date             string    `json:"date"`
	MealType         MealType  `json:"mealType"`
	QuantityG        float64   `json:"quantityG"`
	CustomName       *string   `json:"customName"`
	CaloriesOverride *float64  `json:"caloriesOverride"`
	ProteinOverride  *float64  `json:"proteinOverride"`
	CarbsOverride    *float64  `json:"carbsOverride"`
	FatOverride      *float64  `json:"fatOverride"`
	CreatedAt        time.Time `json:"createdAt"`
	// Food is set for catalog entries.
	Food *Food `json:"food,omitempty"`
}

// Name is the custom name, or the catalog food name.
func (l *FoodLog) Name() string {
	if l.CustomName != nil && *l.CustomName != "" {
		return *l.CustomName
	}
	if l.Food != nil {
		return l.Food.Name
	}
	return ""
}

func (l *FoodLog) value(override *float64, per100g func(*Food) float64) float64 {
	if override != nil {
		return *override
	}
	if l.Food == nil {
		return 0
	}
	return per100g(l.Food) * l.QuantityG / 100
}

func (l *FoodLog) Calories() float64 {
	return l.value(l.CaloriesOverride, func(f *Food) float64 { return f.CaloriesPer100g })
}

func (l *FoodLog) ProteinG() float64 {
	return l.value(l.ProteinOverride, func(f *Food) float64 { return f.ProteinPer100g })
}

func (l *FoodLog) CarbsG() float64 {
	return l.value(l.CarbsOverride, func(f *Food) float64 { return f.CarbsPer100g })
}

func (l *FoodLog) FatG() float64 {
	return l.value(l.FatOverride, func(f *Food) float64 { return f.FatPer100g })
}

type MealPhotoLog struct {
	ID              int                     `json:"id"`
	UserID          string                  `json:"userId"`
	Date            string                  `json:"date"`
	MealType        MealType                `json:"mealType"`
	PhotoPath       string                  `json:"photoPath"`
	AIDetectedItems []mealscan.DetectedItem `json:"aiDetectedItems"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// LogFoodRequest logs either a catalog food (FoodID set) or a manual entry (Name and overrides).
type LogFoodRequest struct {
	FoodID    *int     `json:"foodId"`
	MealType  MealType `json:"mealType"`
	QuantityG *float64 `json:"quantityG"`
	Date      string   `json:"date"`
	Name      string   `json:"name"`
	Calories  *float64 `json:"calories"`
	ProteinG  *float64 `json:"proteinG"`
	CarbsG    *float64 `json:"carbsG"`
	FatG      *float64 `json:"fatG"`
}
