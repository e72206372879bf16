package skincare

import (
	"context"
	"fmt"

	"github.com/2beens/wellness/internal/plans"
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

var _ skincareRepo = (*Repo)(nil)

func (r *Repo) GetLog(ctx context.Context, userID, date string, routineType plans.RoutineType) (_ *SkinLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	l := &SkinLog{}
	if err := r.db.QueryRow(ctx, `
		SELECT user_id, to_char(date, 'YYYY-MM-DD'), routine_type, steps_completed, completed_all, completed_at
		FROM user_skin_logs
		WHERE user_id = $1 AND date = $2 AND routine_type = $3;`,
		userID, date, routineType,
	).Scan(&l.UserID, &l.Date, &l.RoutineType, &l.StepsCompleted, &l.CompletedAll, &l.CompletedAt); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrSkinLogNotFound
		}
		return nil, fmt.Errorf("get skin log: %w", err)
	}
	return l, nil
}

func (r *Repo) UpsertLog(ctx context.Context, l *SkinLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.upsertLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine_type", string(l.RoutineType)))

	steps := l.StepsCompleted
	if steps == nil {
		steps = []string{}
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO user_skin_logs (user_id, date, routine_type, steps_completed, completed_all, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date, routine_type) DO UPDATE
		SET steps_completed = EXCLUDED.steps_completed,
			completed_all = EXCLUDED.completed_all,
			completed_at = EXCLUDED.completed_at;`,
		l.UserID, l.Date, l.RoutineType, steps, l.CompletedAll, l.CompletedAt,
	); err != nil {
		return fmt.Errorf("upsert skin log: %w", err)
	}
	return nil
}

const productColumns = `id, user_id, product_name, category, status, notes, created_at`

func (r *Repo) ListProducts(ctx context.Context, userID string) (_ []Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.listProducts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM user_skin_products WHERE user_id = $1 ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query skin products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.Status, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan skin product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repo) GetProduct(ctx context.Context, userID string, id int) (_ *Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.getProduct")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Product
	if err := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM user_skin_products WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.Status, &p.Notes, &p.CreatedAt); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get skin product: %w", err)
	}
	return &p, nil
}

func (r *Repo) CreateProduct(ctx context.Context, p *Product) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.createProduct")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `
		INSERT INTO user_skin_products (user_id, product_name, category, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`,
		p.UserID, p.Name, p.Category, p.Status, p.Notes,
	).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert skin product: %w", err)
	}
	return nil
}

func (r *Repo) UpdateProductStatus(ctx context.Context, userID string, id int, status ProductStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.skincare.updateProductStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("product.id", id), attribute.String("status", string(status)))

	tag, err := r.db.Exec(ctx,
		`UPDATE user_skin_products SET status = $1 WHERE id = $2 AND user_id = $3;`,
		status, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update skin product status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
