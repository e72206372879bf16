package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/wellness/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SeedResult counts the rows written by one Seed call.
type SeedResult struct {
	Exercises int
	Workouts  int
	Foods     int
}

type Seeder struct {
	db txBeginner
}

func NewSeeder(db txBeginner) *Seeder {
	return &Seeder{db: db}
}

// Seed upserts the whole catalog in one transaction. Rows are matched by name
// (workouts by day tag and difficulty), so running it twice is a no-op.
func (s *Seeder) Seed(ctx context.Context, c *Catalog) (_ SeedResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Errorf("seed catalog: rollback: %s", rbErr)
			}
		}
	}()

	var res SeedResult
	exerciseIDs := make(map[string]int, len(c.Exercises))
	for _, e := range c.Exercises {
		var id int
		if err := tx.QueryRow(ctx, `
			INSERT INTO exercises (name, muscle_group, equipment, difficulty, instructions)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO UPDATE SET
				muscle_group = EXCLUDED.muscle_group,
				equipment = EXCLUDED.equipment,
				difficulty = EXCLUDED.difficulty,
				instructions = EXCLUDED.instructions
			RETURNING id;`,
			e.Name, e.MuscleGroup, e.Equipment, e.Difficulty, e.Instructions,
		).Scan(&id); err != nil {
			return SeedResult{}, fmt.Errorf("upsert exercise %s: %w", e.Name, err)
		}
		exerciseIDs[e.Name] = id
		res.Exercises++
	}

	for _, w := range c.Workouts {
		var workoutID int
		if err := tx.QueryRow(ctx, `
			INSERT INTO workouts (name, day_tag, difficulty, muscle_group, duration_min)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (day_tag, difficulty) DO UPDATE SET
				name = EXCLUDED.name,
				muscle_group = EXCLUDED.muscle_group,
				duration_min = EXCLUDED.duration_min
			RETURNING id;`,
			w.Name, w.DayTag, w.Difficulty, w.MuscleGroup, w.DurationMin,
		).Scan(&workoutID); err != nil {
			return SeedResult{}, fmt.Errorf("upsert workout %s: %w", w.Name, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1;`, workoutID); err != nil {
			return SeedResult{}, fmt.Errorf("clear exercises of workout %s: %w", w.Name, err)
		}
		for i, we := range w.Exercises {
			if _, err := tx.Exec(ctx, `
				INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, order_index)
				VALUES ($1, $2, $3, $4, $5);`,
				workoutID, exerciseIDs[we.Name], we.Sets, we.Reps, i,
			); err != nil {
				return SeedResult{}, fmt.Errorf("add exercise %s to workout %s: %w", we.Name, w.Name, err)
			}
		}
		res.Workouts++
	}

	for _, f := range c.Foods {
		if _, err := tx.Exec(ctx, `
			INSERT INTO foods (name, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, serving_size_g)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO UPDATE SET
				calories_per_100g = EXCLUDED.calories_per_100g,
				protein_per_100g = EXCLUDED.protein_per_100g,
				carbs_per_100g = EXCLUDED.carbs_per_100g,
				fat_per_100g = EXCLUDED.fat_per_100g,
				serving_size_g = EXCLUDED.serving_size_g;`,
			f.Name, f.CaloriesPer100g, f.ProteinPer100g, f.CarbsPer100g, f.FatPer100g, f.ServingSizeG,
		); err != nil {
			return SeedResult{}, fmt.Errorf("upsert food %s: %w", f.Name, err)
		}
		res.Foods++
	}

	if err := tx.Commit(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("commit: %w", err)
	}

	span.SetAttributes(
		attribute.Int("exercises", res.Exercises),
		attribute.Int("workouts", res.Workouts),
		attribute.Int("foods", res.Foods),
	)
	return res, nil
}
