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

// SocialLinkRepo persists social/profile links, one per platform.
type SocialLinkRepo struct {
	conn *sql.DB
}

var _ repository.SocialLinkRepository = (*SocialLinkRepo)(nil)

func NewSocialLinkRepo(db *DB) *SocialLinkRepo {
	return &SocialLinkRepo{conn: db.conn}
}

func (r *SocialLinkRepo) List(ctx context.Context) ([]model.SocialLink, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, platform, url, icon_class, created_at, updated_at
		 FROM social_links ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing social links: %w", err)
	}
	defer rows.Close()

	links := []model.SocialLink{}
	for rows.Next() {
		var l model.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.IconClass, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning social link row: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating social links: %w", err)
	}

	return links, nil
}

func (r *SocialLinkRepo) GetByID(ctx context.Context, id string) (*model.SocialLink, error) {
	var l model.SocialLink

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, platform, url, icon_class, created_at, updated_at
		 FROM social_links WHERE id = ?`,
		id,
	).Scan(&l.ID, &l.Platform, &l.URL, &l.IconClass, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Social link")
		}
		return nil, fmt.Errorf("sqlite: getting social link %s: %w", id, err)
	}

	return &l, nil
}

func (r *SocialLinkRepo) Create(ctx context.Context, link *model.SocialLink) error {
	now := time.Now()
	link.ID = xid.New().String()
	link.CreatedAt = now
	link.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO social_links (id, platform, url, icon_class, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		link.ID, link.Platform, link.URL, link.IconClass, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict(fmt.Sprintf("Social link for %q already exists", link.Platform))
		}
		return fmt.Errorf("sqlite: creating social link: %w", err)
	}

	return nil
}

func (r *SocialLinkRepo) Update(ctx context.Context, link *model.SocialLink) error {
	link.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE social_links SET platform = ?, url = ?, icon_class = ?, updated_at = ?
		 WHERE id = ?`,
		link.Platform, link.URL, link.IconClass, link.UpdatedAt, link.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict(fmt.Sprintf("Social link for %q already exists", link.Platform))
		}
		return fmt.Errorf("sqlite: updating social link %s: %w", link.ID, err)
	}

	return checkAffected(result, "Social link")
}

func (r *SocialLinkRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM social_links WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting social link %s: %w", id, err)
	}

	return checkAffected(result, "Social link")
}
