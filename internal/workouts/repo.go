package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/jackc/pgx/v5"
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

var _ workoutsRepo = (*Repo)(nil)

func (r *Repo) ListExercises(ctx context.Context, muscleGroup, nameQuery string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	var (
		where []string
		args  []any
	)
	if muscleGroup != "" && muscleGroup != "all" {
		args = append(args, muscleGroup)
		where = append(where, fmt.Sprintf("muscle_group = $%d", len(args)))
	}
	if nameQuery != "" {
		args = append(args, "%"+nameQuery+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT id, name, muscle_group, equipment, difficulty, instructions FROM exercises`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Difficulty, &e.Instructions); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetWorkout returns the workout for the day tag and difficulty, with its exercises in order.
func (r *Repo) GetWorkout(ctx context.Context, dayTag plans.DayTag, difficulty plans.FitnessLevel) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day_tag", string(dayTag)),
		attribute.String("difficulty", string(difficulty)),
	)

	w := &Workout{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, day_tag, difficulty, muscle_group, duration_min
		FROM workouts
		WHERE day_tag = $1 AND difficulty = $2;`,
		dayTag, difficulty,
	).Scan(&w.ID, &w.Name, &w.DayTag, &w.Difficulty, &w.MuscleGroup, &w.DurationMin)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("select workout: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.muscle_group, e.equipment, e.difficulty, e.instructions,
			we.sets, we.reps, we.order_index
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.order_index;`,
		w.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(
			&we.Exercise.ID, &we.Exercise.Name, &we.Exercise.MuscleGroup, &we.Exercise.Equipment,
			&we.Exercise.Difficulty, &we.Exercise.Instructions,
			&we.Sets, &we.Reps, &we.OrderIndex,
		); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		w.Exercises = append(w.Exercises, we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return w, nil
}

func (r *Repo) CreateLog(ctx context.Context, log *Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", log.UserID))

	created := *log
	err = r.db.QueryRow(ctx, `
		INSERT INTO user_workout_logs (user_id, workout_id, date, status, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		log.UserID, log.WorkoutID, log.Date, log.Status, log.StartedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout log: %w", err)
	}
	return &created, nil
}

const logColumns = `id, user_id, workout_id, to_char(date, 'YYYY-MM-DD'), status, started_at, completed_at`

func scanLog(row pgx.Row) (*Log, error) {
	l := &Log{}
	if err := row.Scan(&l.ID, &l.UserID, &l.WorkoutID, &l.Date, &l.Status, &l.StartedAt, &l.CompletedAt); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrWorkoutLogNotFound
		}
		return nil, err
	}
	return l, nil
}

// GetLog returns the log only when it belongs to userID.
func (r *Repo) GetLog(ctx context.Context, userID string, id int) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", id))

	return scanLog(r.db.QueryRow(ctx,
		`SELECT `+logColumns+` FROM user_workout_logs WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
}

// LatestLogOn returns the most recent log of the user on the given date.
func (r *Repo) LatestLogOn(ctx context.Context, userID, date string) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latestLogOn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanLog(r.db.QueryRow(ctx,
		`SELECT `+logColumns+` FROM user_workout_logs WHERE user_id = $1 AND date = $2 ORDER BY started_at DESC LIMIT 1;`,
		userID, date,
	))
}

func (r *Repo) CompleteLog(ctx context.Context, userID string, id int, completedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE user_workout_logs
		SET status = $1, completed_at = $2
		WHERE id = $3 AND user_id = $4 AND status = $5;`,
		StatusCompleted, completedAt, id, userID, StatusStarted,
	)
	if err != nil {
		return fmt.Errorf("complete workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotStarted
	}
	return nil
}

func (r *Repo) CompletedHistory(ctx context.Context, userID string, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completedHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT l.id, l.workout_id, w.name, w.muscle_group, to_char(l.date, 'YYYY-MM-DD'), l.completed_at
		FROM user_workout_logs l
		JOIN workouts w ON w.id = l.workout_id
		WHERE l.user_id = $1 AND l.status = $2
		ORDER BY l.date DESC, l.id DESC
		LIMIT $3;`,
		userID, StatusCompleted, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.LogID, &e.WorkoutID, &e.WorkoutName, &e.MuscleGroup, &e.Date, &e.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CompletedDates lists distinct dates with a completed workout, on or after since.
func (r *Repo) CompletedDates(ctx context.Context, userID, since string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completedDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT to_char(date, 'YYYY-MM-DD')
		FROM user_workout_logs
		WHERE user_id = $1 AND status = $2 AND date >= $3;`,
		userID, StatusCompleted, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query completed dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *Repo) CountCompleted(ctx context.Context, userID, since string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT count(*) FROM user_workout_logs
		WHERE user_id = $1 AND status = $2 AND date >= $3;`,
		userID, StatusCompleted, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count completed workouts: %w", err)
	}
	return count, nil
}
