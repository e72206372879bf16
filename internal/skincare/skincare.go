package skincare

import (
	"errors"
	"slices"
	"time"

	"github.com/2beens/wellness/internal/plans"
)

var (
	ErrProductNotFound    = errors.New("skin product not found")
	ErrInvalidProduct     = errors.New("invalid skin product")
	ErrUnknownStep        = errors.New("step is not part of the routine")
	ErrInvalidRoutineType = errors.New("invalid routine type")
	ErrSkinLogNotFound    = errors.New("skin log not found")
)

type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusPaused   ProductStatus = "paused"
	StatusFinished ProductStatus = "finished"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusFinished:
		return true
	}
	return false
}

// Toggled flips between active and paused. Anything that is not active becomes active.
func (s ProductStatus) Toggled() ProductStatus {
	if s == StatusActive {
		return StatusPaused
	}
	return StatusActive
}

const defaultCategory = "cleanser"

var Categories = []string{"cleanser", "toner", "moisturizer", "spf", "treatment", "eye_cream", "other"}

type Product struct {
	ID        int           `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"productName"`
	Category  string        `json:"category"`
	Status    ProductStatus `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
}

type NewProduct struct {
	Name     string `json:"productName"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type SkinLog struct {
	UserID         string            `json:"userId"`
	Date           string            `json:"date"`
	RoutineType    plans.RoutineType `json:"routineType"`
	StepsCompleted []string          `json:"stepsCompleted"`
	CompletedAll   bool              `json:"completedAll"`
	CompletedAt    *time.Time        `json:"completedAt"`
}

// Toggle adds the step when missing and removes it otherwise, then recomputes
// completion against the full routine.
func (l *SkinLog) Toggle(step string, routine []plans.Step, now time.Time) {
	if i := slices.Index(l.StepsCompleted, step); i >= 0 {
		l.StepsCompleted = slices.Delete(l.StepsCompleted, i, i+1)
	} else {
		l.StepsCompleted = append(l.StepsCompleted, step)
	}

	l.CompletedAll = len(routine) > 0
	for _, s := range routine {
		if !slices.Contains(l.StepsCompleted, s.Name) {
			l.CompletedAll = false
			break
		}
	}

	if l.CompletedAll {
		l.CompletedAt = &now
	} else {
		l.CompletedAt = nil
	}
}

type Routine struct {
	SkinType     plans.SkinType    `json:"skinType"`
	RoutineType  plans.RoutineType `json:"routineType"`
	Steps        []plans.Step      `json:"steps"`
	Completed    []string          `json:"completed"`
	CompletedAll bool              `json:"completedAll"`
}

func hasStep(routine []plans.Step, name string) bool {
	return slices.ContainsFunc(routine, func(s plans.Step) bool {
		return s.Name == name
	})
}
