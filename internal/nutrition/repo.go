package nutrition

import (
	"context"
	"encoding/json"
	"fmt"

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

var _ nutritionRepo = (*Repo)(nil)

const foodColumns = `id, name, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, serving_size_g`

func (r *Repo) SearchFoods(ctx context.Context, query string, limit int) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.searchFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	rows, err := r.db.Query(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE name ILIKE $1 ORDER BY name LIMIT $2;`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	var foods []Food
	for rows.Next() {
		var f Food
		if err := rows.Scan(&f.ID, &f.Name, &f.CaloriesPer100g, &f.ProteinPer100g, &f.CarbsPer100g, &f.FatPer100g, &f.ServingSizeG); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *Repo) GetFood(ctx context.Context, id int) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var f Food
	err = r.db.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = $1;`, id).
		Scan(&f.ID, &f.Name, &f.CaloriesPer100g, &f.ProteinPer100g, &f.CarbsPer100g, &f.FatPer100g, &f.ServingSizeG)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &f, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertFoodLog(ctx context.Context, db rowQuerier, l *FoodLog) (int, error) {
	var id int
	err := db.QueryRow(ctx, `
		INSERT INTO user_food_logs (
			user_id, food_id, meal_photo_log_id, date, meal_type, quantity_g, custom_name,
			calories_override, protein_override, carbs_override, fat_override, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;`,
		l.UserID, l.FoodID, l.MealPhotoLogID, l.Date, l.MealType, l.QuantityG, l.CustomName,
		l.CaloriesOverride, l.ProteinOverride, l.CarbsOverride, l.FatOverride, l.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrFoodNotFound
		}
		if pkg.IsCheckViolationError(err) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidFoodLog, err)
		}
		return 0, fmt.Errorf("insert food log: %w", err)
	}
	return id, nil
}

func (r *Repo) CreateFoodLog(ctx context.Context, l *FoodLog) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.createFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", l.UserID))

	return insertFoodLog(ctx, r.db, l)
}

// SaveAnalyzedMeal stores the photo log and its food logs in one transaction.
func (r *Repo) SaveAnalyzedMeal(ctx context.Context, photoLog *MealPhotoLog, logs []FoodLog) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.saveAnalyzedMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", photoLog.UserID),
		attribute.Int("items", len(logs)),
	)

	detected, err := json.Marshal(photoLog.AIDetectedItems)
	if err != nil {
		return 0, fmt.Errorf("marshal detected items: %w", err)
	}

	var photoLogID int
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO user_meal_photo_logs (user_id, date, meal_type, photo_path, ai_detected_items, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
			photoLog.UserID, photoLog.Date, photoLog.MealType, photoLog.PhotoPath, detected, photoLog.CreatedAt,
		).Scan(&photoLogID); err != nil {
			return fmt.Errorf("insert meal photo log: %w", err)
		}

		for i := range logs {
			logs[i].MealPhotoLogID = &photoLogID
			if _, err := insertFoodLog(ctx, tx, &logs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return photoLogID, nil
}

func (r *Repo) DeleteFoodLog(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM user_food_logs WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete food log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodLogNotFound
	}
	return nil
}

func (r *Repo) DayLogs(ctx context.Context, userID, date string) (_ []FoodLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.dayLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(ctx, `
		SELECT
			l.id, l.user_id, l.food_id, l.meal_photo_log_id, to_char(l.date, 'YYYY-MM-DD'), l.meal_type, l.quantity_g,
			l.custom_name, l.calories_override, l.protein_override, l.carbs_override, l.fat_override, l.created_at,
			f.id, f.name, f.calories_per_100g, f.protein_per_100g, f.carbs_per_100g, f.fat_per_100g, f.serving_size_g
		FROM user_food_logs l
		LEFT JOIN foods f ON f.id = l.food_id
		WHERE l.user_id = $1 AND l.date = $2
		ORDER BY l.created_at;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query day logs: %w", err)
	}
	defer rows.Close()

	var logs []FoodLog
	for rows.Next() {
		var (
			l                        FoodLog
			foodID                   *int
			foodName                 *string
			cal, prot, carbs, fat, s *float64
		)
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.FoodID, &l.MealPhotoLogID, &l.Date, &l.MealType, &l.QuantityG,
			&l.CustomName, &l.CaloriesOverride, &l.ProteinOverride, &l.CarbsOverride, &l.FatOverride, &l.CreatedAt,
			&foodID, &foodName, &cal, &prot, &carbs, &fat, &s,
		); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		if foodID != nil {
			l.Food = &Food{
				ID:              *foodID,
				Name:            *foodName,
				CaloriesPer100g: *cal,
				ProteinPer100g:  *prot,
				CarbsPer100g:    *carbs,
				FatPer100g:      *fat,
				ServingSizeG:    *s,
			}
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *Repo) WaterGlasses(ctx context.Context, userID, date string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.waterGlasses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var glasses int
	err = r.db.QueryRow(ctx, `SELECT glasses FROM user_water_logs WHERE user_id = $1 AND date = $2;`, userID, date).Scan(&glasses)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return 0, nil
		}
		return 0, err
	}
	return glasses, nil
}

// AddWater changes the glass count by delta, never going below zero, and returns the new count.
func (r *Repo) AddWater(ctx context.Context, userID, date string, delta int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addWater")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("delta", delta))

	var glasses int
	err = r.db.QueryRow(ctx, `
		INSERT INTO user_water_logs (user_id, date, glasses)
		VALUES ($1, $2, GREATEST(0, $3::int))
		ON CONFLICT (user_id, date) DO UPDATE
			SET glasses = GREATEST(0, user_water_logs.glasses + $3::int)
		RETURNING glasses;`,
		userID, date, delta,
	).Scan(&glasses)
	if err != nil {
		return 0, fmt.Errorf("upsert water log: %w", err)
	}
	return glasses, nil
}
