package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2beens/wellness/internal/plans"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Exercise struct {
	Name         string `yaml:"name"`
	MuscleGroup  string `yaml:"muscle_group"`
	Equipment    string `yaml:"equipment"`
	Difficulty   string `yaml:"difficulty"`
	Instructions string `yaml:"instructions"`
}

type WorkoutExercise struct {
	Name string `yaml:"name"`
	Sets int    `yaml:"sets"`
	Reps string `yaml:"reps"`
}

type Workout struct {
	Name        string            `yaml:"name"`
	DayTag      plans.DayTag      `yaml:"day_tag"`
	Difficulty  string            `yaml:"difficulty"`
	MuscleGroup string            `yaml:"muscle_group"`
	DurationMin int               `yaml:"duration_min"`
	Exercises   []WorkoutExercise `yaml:"exercises"`
}

type Food struct {
	Name            string  `yaml:"name"`
	CaloriesPer100g float64 `yaml:"calories_per_100g"`
	ProteinPer100g  float64 `yaml:"protein_per_100g"`
	CarbsPer100g    float64 `yaml:"carbs_per_100g"`
	FatPer100g      float64 `yaml:"fat_per_100g"`
	ServingSizeG    float64 `yaml:"serving_size_g"`
}

// Catalog is the shared reference data: exercise library, workout templates and foods.
type Catalog struct {
	Exercises []Exercise `yaml:"exercises"`
	Workouts  []Workout  `yaml:"workouts"`
	Foods     []Food     `yaml:"foods"`
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog file, an empty path means the bundled one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate fills in defaults and checks that every workout references known exercises.
func (c *Catalog) Validate() error {
	exerciseNames := make(map[string]bool, len(c.Exercises))
	for i := range c.Exercises {
		e := &c.Exercises[i]
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" || e.MuscleGroup == "" {
			return fmt.Errorf("%w: exercise #%d needs a name and a muscle group", ErrInvalidCatalog, i)
		}
		if exerciseNames[e.Name] {
			return fmt.Errorf("%w: duplicate exercise %q", ErrInvalidCatalog, e.Name)
		}
		exerciseNames[e.Name] = true
		if e.Equipment == "" {
			e.Equipment = string(plans.EquipmentNone)
		}
		if !plans.Equipment(e.Equipment).Valid() {
			return fmt.Errorf("%w: exercise %q has unknown equipment %q", ErrInvalidCatalog, e.Name, e.Equipment)
		}
		if e.Difficulty == "" {
			e.Difficulty = string(plans.LevelBeginner)
		}
		if !plans.FitnessLevel(e.Difficulty).Valid() {
			return fmt.Errorf("%w: exercise %q has unknown difficulty %q", ErrInvalidCatalog, e.Name, e.Difficulty)
		}
	}

	type slot struct {
		tag        plans.DayTag
		difficulty string
	}
	slots := make(map[slot]bool, len(c.Workouts))
	for i := range c.Workouts {
		w := &c.Workouts[i]
		switch w.DayTag {
		case plans.DayPush, plans.DayPull, plans.DayLegs:
		default:
			return fmt.Errorf("%w: workout %q has unknown day tag %q", ErrInvalidCatalog, w.Name, w.DayTag)
		}
		if !plans.FitnessLevel(w.Difficulty).Valid() {
			return fmt.Errorf("%w: workout %q has unknown difficulty %q", ErrInvalidCatalog, w.Name, w.Difficulty)
		}
		s := slot{w.DayTag, w.Difficulty}
		if slots[s] {
			return fmt.Errorf("%w: more than one %s/%s workout", ErrInvalidCatalog, w.DayTag, w.Difficulty)
		}
		slots[s] = true
		if w.DurationMin <= 0 {
			w.DurationMin = 30
		}
		for j := range w.Exercises {
			we := &w.Exercises[j]
			if !exerciseNames[we.Name] {
				return fmt.Errorf("%w: workout %q references unknown exercise %q", ErrInvalidCatalog, w.Name, we.Name)
			}
			if we.Sets <= 0 {
				we.Sets = 3
			}
			if we.Reps == "" {
				we.Reps = "10"
			}
		}
	}

	foodNames := make(map[string]bool, len(c.Foods))
	for i := range c.Foods {
		f := &c.Foods[i]
		if f.Name == "" || f.CaloriesPer100g < 0 {
			return fmt.Errorf("%w: food #%d needs a name and non-negative calories", ErrInvalidCatalog, i)
		}
		if foodNames[f.Name] {
			return fmt.Errorf("%w: duplicate food %q", ErrInvalidCatalog, f.Name)
		}
		foodNames[f.Name] = true
		if f.ServingSizeG <= 0 {
			f.ServingSizeG = 100
		}
	}

	return nil
}
