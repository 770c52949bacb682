package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bloglist/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

type UserPostgresRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserPostgresRepository(db *sqlx.DB, txGetter TxGetter) *UserPostgresRepository {
	return &UserPostgresRepository{db: db, txGetter: txGetter}
}

func (r *UserPostgresRepository) FindAll(ctx context.Context) ([]models.UserRecord, error) {
	const query = `
		SELECT id, username, name, password_hash, adult
		FROM users
		ORDER BY created_at, id
	`

	users := []models.UserRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserPostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	args := []any{username}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

func (r *UserPostgresRepository) Create(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	const query = `
		INSERT INTO users (id, username, name, password_hash, adult, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, username, name, password_hash, adult
	`
	args := []any{uuid.New(), user.Username, user.Name, user.PasswordHash, user.Adult}

	var saved models.UserRecord
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	// The hash stays out of the log.
	logQuery(query, []any{args[0], user.Username, user.Name, "***", user.Adult}, saved.ID, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.UserRecord{}, models.ErrDuplicateUsername
	}
	if err != nil {
		return models.UserRecord{}, err
	}
	return saved, nil
}
