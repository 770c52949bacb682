package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bloglist/internal/models"
)

const blogColumns = `id, version, COALESCE(title, '') AS title, COALESCE(author, '') AS author,
	COALESCE(url, '') AS url, COALESCE(likes, 0) AS likes`

// BlogPostgresRepository stores blogs in the blogs table.
type BlogPostgresRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogPostgresRepository(db *sqlx.DB, txGetter TxGetter) *BlogPostgresRepository {
	return &BlogPostgresRepository{db: db, txGetter: txGetter}
}

func (r *BlogPostgresRepository) FindAll(ctx context.Context) ([]models.BlogRecord, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at, id`

	records := []models.BlogRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query)

	logQuery(query, nil, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BlogPostgresRepository) Create(ctx context.Context, blog models.BlogRecord) (models.BlogRecord, error) {
	query := `
		INSERT INTO blogs (id, title, author, url, likes, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NOW())
		RETURNING ` + blogColumns
	args := []any{uuid.New(), blog.Title, blog.Author, blog.URL, blog.Likes}

	var saved models.BlogRecord
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(query, args, saved, err)

	if err != nil {
		return models.BlogRecord{}, err
	}
	return saved, nil
}

func (r *BlogPostgresRepository) FindByIDAndRemove(ctx context.Context, id string) error {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return models.ErrInvalidID
	}

	query := `DELETE FROM blogs WHERE id = $1`
	args := []any{blogID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// FindByIDAndUpdate overwrites all four blog columns; absent fields become NULL.
func (r *BlogPostgresRepository) FindByIDAndUpdate(ctx context.Context, id string, in models.BlogInput) (models.BlogRecord, error) {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return models.BlogRecord{}, models.ErrInvalidID
	}

	query := `
		UPDATE blogs
		SET title = $2, author = $3, url = $4, likes = $5
		WHERE id = $1
		RETURNING ` + blogColumns
	args := []any{blogID, in.Title, in.Author, in.URL, in.Likes}

	var updated models.BlogRecord
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.BlogRecord{}, models.ErrNotFound
	}
	if err != nil {
		return models.BlogRecord{}, err
	}
	return updated, nil
}
