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

// ProjectRepo persists portfolio projects. Technologies is a
// model.StringList, so it marshals to its JSON column transparently.
type ProjectRepo struct {
	conn *sql.DB
}

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{conn: db.conn}
}

func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, description, technologies, repo_link, live_link, image_url, created_at, updated_at
		 FROM projects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Technologies,
			&p.RepoLink, &p.LiveLink, &p.ImageURL,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, description, technologies, repo_link, live_link, image_url, created_at, updated_at
		 FROM projects WHERE id = ?`,
		id,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Technologies,
		&p.RepoLink, &p.LiveLink, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Project")
		}
		return nil, fmt.Errorf("sqlite: getting project %s: %w", id, err)
	}

	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, project *model.Project) error {
	now := time.Now()
	project.ID = xid.New().String()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, technologies, repo_link, live_link, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.Technologies,
		project.RepoLink, project.LiveLink, project.ImageURL,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating project: %w", err)
	}

	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *model.Project) error {
	project.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE projects
		 SET name = ?, description = ?, technologies = ?, repo_link = ?, live_link = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		project.Name, project.Description, project.Technologies,
		project.RepoLink, project.LiveLink, project.ImageURL,
		project.UpdatedAt, project.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating project %s: %w", project.ID, err)
	}

	return checkAffected(result, "Project")
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting project %s: %w", id, err)
	}

	return checkAffected(result, "Project")
}
