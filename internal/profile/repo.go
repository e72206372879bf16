package profile

import (
	"context"
	"fmt"

	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

var _ profileRepo = (*Repo)(nil)

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT
			user_id, full_name, height_cm, weight_kg, age, gender, fitness_level, equipment,
			skin_type, skin_concerns, skin_routine_level, goal, timeline_months, target_weight_kg,
			preferred_workout_time, workout_duration_min, dietary_restrictions,
			daily_calories_target, daily_protein_g, daily_carbs_g, daily_fat_g,
			onboarding_complete, updated_at
		FROM user_profiles
		WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.FullName, &p.HeightCm, &p.WeightKg, &p.Age, &p.Gender, &p.FitnessLevel, &p.Equipment,
		&p.SkinType, &p.SkinConcerns, &p.SkinRoutineLevel, &p.Goal, &p.TimelineMonths, &p.TargetWeightKg,
		&p.PreferredWorkoutTime, &p.WorkoutDurationMin, &p.DietaryRestrictions,
		&p.DailyCaloriesTarget, &p.DailyProteinG, &p.DailyCarbsG, &p.DailyFatG,
		&p.OnboardingComplete, &p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}

	return p, nil
}

// Upsert writes the whole profile row, creating it when missing.
func (r *Repo) Upsert(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID))

	skinConcerns := p.SkinConcerns
	if skinConcerns == nil {
		skinConcerns = []string{}
	}
	dietaryRestrictions := p.DietaryRestrictions
	if dietaryRestrictions == nil {
		dietaryRestrictions = []string{}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profiles (
			user_id, full_name, height_cm, weight_kg, age, gender, fitness_level, equipment,
			skin_type, skin_concerns, skin_routine_level, goal, timeline_months, target_weight_kg,
			preferred_workout_time, workout_duration_min, dietary_restrictions,
			daily_calories_target, daily_protein_g, daily_carbs_g, daily_fat_g,
			onboarding_complete, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			fitness_level = EXCLUDED.fitness_level,
			equipment = EXCLUDED.equipment,
			skin_type = EXCLUDED.skin_type,
			skin_concerns = EXCLUDED.skin_concerns,
			skin_routine_level = EXCLUDED.skin_routine_level,
			goal = EXCLUDED.goal,
			timeline_months = EXCLUDED.timeline_months,
			target_weight_kg = EXCLUDED.target_weight_kg,
			preferred_workout_time = EXCLUDED.preferred_workout_time,
			workout_duration_min = EXCLUDED.workout_duration_min,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			daily_calories_target = EXCLUDED.daily_calories_target,
			daily_protein_g = EXCLUDED.daily_protein_g,
			daily_carbs_g = EXCLUDED.daily_carbs_g,
			daily_fat_g = EXCLUDED.daily_fat_g,
			onboarding_complete = EXCLUDED.onboarding_complete,
			updated_at = EXCLUDED.updated_at;`,
		p.UserID, p.FullName, p.HeightCm, p.WeightKg, p.Age, p.Gender, p.FitnessLevel, p.Equipment,
		p.SkinType, skinConcerns, p.SkinRoutineLevel, p.Goal, p.TimelineMonths, p.TargetWeightKg,
		p.PreferredWorkoutTime, p.WorkoutDurationMin, dietaryRestrictions,
		p.DailyCaloriesTarget, p.DailyProteinG, p.DailyCarbsG, p.DailyFatG,
		p.OnboardingComplete, p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
