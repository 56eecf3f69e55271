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

// ExperienceRepo persists work-history entries. end_date is a nullable
// column: NULL means the position is current.
type ExperienceRepo struct {
	conn *sql.DB
}

var _ repository.ExperienceRepository = (*ExperienceRepo)(nil)

func NewExperienceRepo(db *DB) *ExperienceRepo {
	return &ExperienceRepo{conn: db.conn}
}

// List returns entries newest-first by start date, so the resume reads
// top-down without the client re-sorting.
func (r *ExperienceRepo) List(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, company, start_date, end_date, responsibilities, technologies, created_at, updated_at
		 FROM experience ORDER BY start_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing experience: %w", err)
	}
	defer rows.Close()

	entries := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		var endDate sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Company, &e.StartDate, &endDate,
			&e.Responsibilities, &e.Technologies,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning experience row: %w", err)
		}
		if endDate.Valid {
			e.EndDate = &endDate.Time
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating experience: %w", err)
	}

	return entries, nil
}

func (r *ExperienceRepo) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	var e model.Experience
	var endDate sql.NullTime

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, company, start_date, end_date, responsibilities, technologies, created_at, updated_at
		 FROM experience WHERE id = ?`,
		id,
	).Scan(
		&e.ID, &e.Title, &e.Company, &e.StartDate, &endDate,
		&e.Responsibilities, &e.Technologies,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Experience")
		}
		return nil, fmt.Errorf("sqlite: getting experience %s: %w", id, err)
	}
	if endDate.Valid {
		e.EndDate = &endDate.Time
	}

	return &e, nil
}

func (r *ExperienceRepo) Create(ctx context.Context, exp *model.Experience) error {
	now := time.Now()
	exp.ID = xid.New().String()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO experience (id, title, company, start_date, end_date, responsibilities, technologies, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		exp.ID, exp.Title, exp.Company, exp.StartDate, nullableTime(exp.EndDate),
		exp.Responsibilities, exp.Technologies,
		exp.CreatedAt, exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating experience: %w", err)
	}

	return nil
}

func (r *ExperienceRepo) Update(ctx context.Context, exp *model.Experience) error {
	exp.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE experience
		 SET title = ?, company = ?, start_date = ?, end_date = ?, responsibilities = ?, technologies = ?, updated_at = ?
		 WHERE id = ?`,
		exp.Title, exp.Company, exp.StartDate, nullableTime(exp.EndDate),
		exp.Responsibilities, exp.Technologies,
		exp.UpdatedAt, exp.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating experience %s: %w", exp.ID, err)
	}

	return checkAffected(result, "Experience")
}

func (r *ExperienceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM experience WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting experience %s: %w", id, err)
	}

	return checkAffected(result, "Experience")
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
