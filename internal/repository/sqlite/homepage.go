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

// HomepageRepo persists the homepage singleton. The table holds at most
// one row; Get reads whichever row exists, Update targets it by id.
type HomepageRepo struct {
	conn *sql.DB
}

var _ repository.HomepageRepository = (*HomepageRepo)(nil)

func NewHomepageRepo(db *DB) *HomepageRepo {
	return &HomepageRepo{conn: db.conn}
}

// Get returns the singleton, or ErrNotFound when none has been created.
func (r *HomepageRepo) Get(ctx context.Context) (*model.HomepageContent, error) {
	var c model.HomepageContent

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, headline, about_text, profile_image_url,
		        featured_skill_ids, featured_project_ids, resume_url,
		        created_at, updated_at
		 FROM homepage_content LIMIT 1`,
	).Scan(
		&c.ID, &c.Name, &c.Headline, &c.AboutText, &c.ProfileImageURL,
		&c.FeaturedSkillIDs, &c.FeaturedProjectIDs, &c.ResumeURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundMessage("Homepage content not found. Please create one first.")
		}
		return nil, fmt.Errorf("sqlite: getting homepage content: %w", err)
	}

	return &c, nil
}

func (r *HomepageRepo) Create(ctx context.Context, content *model.HomepageContent) error {
	now := time.Now()
	content.ID = xid.New().String()
	content.CreatedAt = now
	content.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO homepage_content (id, name, headline, about_text, profile_image_url,
		                               featured_skill_ids, featured_project_ids, resume_url,
		                               created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		content.ID, content.Name, content.Headline, content.AboutText, content.ProfileImageURL,
		content.FeaturedSkillIDs, content.FeaturedProjectIDs, content.ResumeURL,
		content.CreatedAt, content.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating homepage content: %w", err)
	}

	return nil
}

func (r *HomepageRepo) Update(ctx context.Context, content *model.HomepageContent) error {
	content.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE homepage_content
		 SET name = ?, headline = ?, about_text = ?, profile_image_url = ?,
		     featured_skill_ids = ?, featured_project_ids = ?, resume_url = ?, updated_at = ?
		 WHERE id = ?`,
		content.Name, content.Headline, content.AboutText, content.ProfileImageURL,
		content.FeaturedSkillIDs, content.FeaturedProjectIDs, content.ResumeURL,
		content.UpdatedAt, content.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating homepage content: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if n == 0 {
		return apperror.NotFoundMessage("Homepage content not found. Please create one first.")
	}

	return nil
}
