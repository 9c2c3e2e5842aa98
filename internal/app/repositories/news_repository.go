package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
)

// NewsRepository handles newsletter database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const newsColumns = "id, title, content, category, image, author_id, date"

func scanNews(row pgx.Row) (*models.News, error) {
	news := &models.News{}
	err := row.Scan(&news.ID, &news.Title, &news.Content, &news.Category,
		&news.Image, &news.AuthorID, &news.Date)
	if err != nil {
		return nil, err
	}
	return news, nil
}

// Create inserts a newsletter entry.
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO news (title, content, category, image, author_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, date`,
		news.Title, news.Content, news.Category, news.Image, news.AuthorID,
	).Scan(&news.ID, &news.Date)
	if err != nil {
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

// GetByID retrieves a newsletter entry by ID.
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := r.sb.Select(newsColumns).
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	news, err := scanNews(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("newsletter not found")
		}
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}
	return news, nil
}

// GetAll retrieves newsletter entries, newest first, optionally filtered
// by category.
func (r *NewsRepository) GetAll(ctx context.Context, category string) ([]*models.News, error) {
	builder := r.sb.Select(newsColumns).
		From("news").
		OrderBy("date DESC")
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}
	defer rows.Close()

	var items []*models.News
	for rows.Next() {
		news, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		items = append(items, news)
	}
	return items, rows.Err()
}

// Delete removes a newsletter entry.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("newsletter not found")
	}
	return nil
}
