package progress

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

var _ progressRepo = (*Repo)(nil)

func (r *Repo) AddMeasurement(ctx context.Context, m *Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `
		INSERT INTO user_measurements (user_id, date, weight_kg, chest_cm, waist_cm, hips_cm, bicep_cm, thigh_cm, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`,
		m.UserID, m.Date, m.WeightKg, m.ChestCm, m.WaistCm, m.HipsCm, m.BicepCm, m.ThighCm, m.Notes,
	).Scan(&m.ID); err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

func (r *Repo) ListMeasurements(ctx context.Context, userID string) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listMeasurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), weight_kg, chest_cm, waist_cm, hips_cm, bicep_cm, thigh_cm, notes
		FROM user_measurements
		WHERE user_id = $1
		ORDER BY date, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Date, &m.WeightKg, &m.ChestCm, &m.WaistCm,
			&m.HipsCm, &m.BicepCm, &m.ThighCm, &m.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	span.SetAttributes(attribute.Int("measurements", len(measurements)))
	return measurements, rows.Err()
}

func (r *Repo) AddPhoto(ctx context.Context, p *Photo) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addPhoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `
		INSERT INTO user_progress_photos (user_id, date, photo_type, photo_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		p.UserID, p.Date, p.PhotoType, p.PhotoPath, p.CreatedAt,
	).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert progress photo: %w", err)
	}
	return nil
}

const photoColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), photo_type, photo_path, created_at`

func (r *Repo) ListPhotos(ctx context.Context, userID string) (_ []Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listPhotos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT `+photoColumns+` FROM user_progress_photos WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query progress photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.PhotoType, &p.PhotoPath, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan progress photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *Repo) GetPhoto(ctx context.Context, userID string, id int) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.getPhoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("photo.id", id))

	var p Photo
	if err := r.db.QueryRow(ctx,
		`SELECT `+photoColumns+` FROM user_progress_photos WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&p.ID, &p.UserID, &p.Date, &p.PhotoType, &p.PhotoPath, &p.CreatedAt); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get progress photo: %w", err)
	}
	return &p, nil
}
