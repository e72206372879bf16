package progress

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrInvalidPhotoType   = errors.New("invalid photo type")
	ErrPhotoNotFound      = errors.New("progress photo not found")
)

type PhotoType string

const (
	PhotoFront PhotoType = "front"
	PhotoSide  PhotoType = "side"
	PhotoBack  PhotoType = "back"
)

func (p PhotoType) Valid() bool {
	switch p {
	case PhotoFront, PhotoSide, PhotoBack:
		return true
	}
	return false
}

type Measurement struct {
	ID       int      `json:"id"`
	UserID   string   `json:"userId"`
	Date     string   `json:"date"`
	WeightKg *float64 `json:"weightKg"`
	ChestCm  *float64 `json:"chestCm"`
	WaistCm  *float64 `json:"waistCm"`
	HipsCm   *float64 `json:"hipsCm"`
	BicepCm  *float64 `json:"bicepCm"`
	ThighCm  *float64 `json:"thighCm"`
	Notes    string   `json:"notes"`
}

func (m *Measurement) values() []*float64 {
	return []*float64{m.WeightKg, m.ChestCm, m.WaistCm, m.HipsCm, m.BicepCm, m.ThighCm}
}

type Photo struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	PhotoType PhotoType `json:"photoType"`
	PhotoPath string    `json:"photoPath"`
	CreatedAt time.Time `json:"createdAt"`
}

type PhotoGroup struct {
	Date   string  `json:"date"`
	Photos []Photo `json:"photos"`
}

// GroupPhotos groups photos by date, keeping the order they come in.
func GroupPhotos(photos []Photo) []PhotoGroup {
	groups := []PhotoGroup{}
	for _, p := range photos {
		if n := len(groups); n > 0 && groups[n-1].Date == p.Date {
			groups[n-1].Photos = append(groups[n-1].Photos, p)
			continue
		}
		groups = append(groups, PhotoGroup{Date: p.Date, Photos: []Photo{p}})
	}
	return groups
}

type Stats struct {
	TotalWorkouts  int     `json:"totalWorkouts"`
	CurrentStreak  int     `json:"currentStreak"`
	StartingWeight float64 `json:"startingWeight"`
	CurrentWeight  float64 `json:"currentWeight"`
	WeightChange   float64 `json:"weightChange"`
}

// BuildStats takes measurements ordered by date, oldest first.
// Measurements without a weight are skipped.
func BuildStats(totalWorkouts, streak int, measurements []Measurement) Stats {
	stats := Stats{
		TotalWorkouts: totalWorkouts,
		CurrentStreak: streak,
	}

	var weights []float64
	for _, m := range measurements {
		if m.WeightKg != nil {
			weights = append(weights, *m.WeightKg)
		}
	}
	if len(weights) == 0 {
		return stats
	}

	stats.StartingWeight = weights[0]
	stats.CurrentWeight = weights[len(weights)-1]
	stats.WeightChange = math.Round((stats.CurrentWeight-stats.StartingWeight)*10) / 10
	return stats
}
