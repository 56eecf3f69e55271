package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// ArticleRepo persists Medium article links.
type ArticleRepo struct {
	conn *sql.DB
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func NewArticleRepo(db *DB) *ArticleRepo {
	return &ArticleRepo{conn: db.conn}
}

// List returns articles newest-first.
func (r *ArticleRepo) List(ctx context.Context) ([]model.Article, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, medium_url, image_url, excerpt, created_at, updated_at
		 FROM articles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.MediumURL, &a.ImageURL, &a.Excerpt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating articles: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*model.Article, error) {
	var a model.Article

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, medium_url, image_url, excerpt, created_at, updated_at
		 FROM articles WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.Title, &a.MediumURL, &a.ImageURL, &a.Excerpt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Article")
		}
		return nil, fmt.Errorf("sqlite: getting article %s: %w", id, err)
	}

	return &a, nil
}

func (r *ArticleRepo) Create(ctx context.Context, article *model.Article) error {
	now := time.Now()
	article.ID = xid.New().String()
	article.CreatedAt = now
	article.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO articles (id, title, medium_url, image_url, excerpt, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		article.ID, article.Title, article.MediumURL, article.ImageURL, article.Excerpt,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Article with this mediumUrl already exists")
		}
		return fmt.Errorf("sqlite: creating article: %w", err)
	}

	return nil
}

func (r *ArticleRepo) Update(ctx context.Context, article *model.Article) error {
	article.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE articles SET title = ?, medium_url = ?, image_url = ?, excerpt = ?, updated_at = ?
		 WHERE id = ?`,
		article.Title, article.MediumURL, article.ImageURL, article.Excerpt,
		article.UpdatedAt, article.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Article with this mediumUrl already exists")
		}
		return fmt.Errorf("sqlite: updating article %s: %w", article.ID, err)
	}

	return checkAffected(result, "Article")
}

func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting article %s: %w", id, err)
	}

	return checkAffected(result, "Article")
}
