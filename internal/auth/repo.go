package auth

import (
	"context"
	"fmt"

	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// usersDB is satisfied by *pgxpool.Pool
type usersDB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ usersDB = (*pgxpool.Pool)(nil)

type Repo struct {
	db usersDB
}

func NewRepo(db usersDB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, user *User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", user.ID))

	// the user and its empty profile, filled in during onboarding, exist together or not at all
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return insertUserWithProfile(ctx, tx, user)
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func insertUserWithProfile(ctx context.Context, tx pgx.Tx, user *User) error {
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4);`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO user_profiles (user_id) VALUES ($1) ON CONFLICT DO NOTHING;`, user.ID); err != nil {
		return fmt.Errorf("insert empty profile: %w", err)
	}
	return nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getBy(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`, email)
}

func (r *Repo) GetByID(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getById")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	return r.getBy(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`, id)
}

func (r *Repo) getBy(ctx context.Context, query string, arg string) (*User, error) {
	var user User
	err := r.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2;`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ usersRepo = (*Repo)(nil)
