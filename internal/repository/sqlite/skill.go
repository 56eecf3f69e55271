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

// SkillRepo persists skills.
type SkillRepo struct {
	conn *sql.DB
}

var _ repository.SkillRepository = (*SkillRepo)(nil)

func NewSkillRepo(db *DB) *SkillRepo {
	return &SkillRepo{conn: db.conn}
}

// List returns all skills in insertion order. xid IDs sort by creation
// time, so ordering by id keeps the admin's entry order stable.
func (r *SkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, icon_class, created_at, updated_at
		 FROM skills ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing skills: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.IconClass, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating skills: %w", err)
	}

	return skills, nil
}

func (r *SkillRepo) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	var s model.Skill

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, icon_class, created_at, updated_at
		 FROM skills WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.Name, &s.IconClass, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Skill")
		}
		return nil, fmt.Errorf("sqlite: getting skill %s: %w", id, err)
	}

	return &s, nil
}

func (r *SkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	now := time.Now()
	skill.ID = xid.New().String()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO skills (id, name, icon_class, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		skill.ID, skill.Name, skill.IconClass, skill.CreatedAt, skill.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict(fmt.Sprintf("Skill %q already exists", skill.Name))
		}
		return fmt.Errorf("sqlite: creating skill: %w", err)
	}

	return nil
}

func (r *SkillRepo) Update(ctx context.Context, skill *model.Skill) error {
	skill.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE skills SET name = ?, icon_class = ?, updated_at = ?
		 WHERE id = ?`,
		skill.Name, skill.IconClass, skill.UpdatedAt, skill.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict(fmt.Sprintf("Skill %q already exists", skill.Name))
		}
		return fmt.Errorf("sqlite: updating skill %s: %w", skill.ID, err)
	}

	return checkAffected(result, "Skill")
}

func (r *SkillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting skill %s: %w", id, err)
	}

	return checkAffected(result, "Skill")
}
