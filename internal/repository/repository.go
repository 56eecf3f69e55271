// Package repository declares the persistence interfaces the service
// layer depends on. The sqlite subpackage is the concrete implementation;
// tests substitute in-memory mocks.
//
// Conventions shared by all implementations:
//   - Create assigns the ID and both timestamps on the passed record.
//   - Update persists the full record and refreshes UpdatedAt.
//   - GetByID/Update/Delete return apperror.ErrNotFound (wrapped) when no
//     record matches.
//   - Uniqueness violations return apperror.ErrConflict (wrapped).
package repository

import (
	"context"

	"github.com/sakif/portfolio-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	GetByID(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

type ExperienceRepository interface {
	// List returns entries ordered by start date, newest first.
	List(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id string) (*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id string) error
}

type ArticleRepository interface {
	// List returns articles ordered by creation date, newest first.
	List(ctx context.Context) ([]model.Article, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id string) error
}

type SocialLinkRepository interface {
	List(ctx context.Context) ([]model.SocialLink, error)
	GetByID(ctx context.Context, id string) (*model.SocialLink, error)
	Create(ctx context.Context, link *model.SocialLink) error
	Update(ctx context.Context, link *model.SocialLink) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository is append-only plus delete: messages are never updated.
type ContactRepository interface {
	// List returns messages ordered by creation date, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

// HomepageRepository manages the singleton homepage document. Get returns
// ErrNotFound when no row exists yet; the service layer creates the
// default in that case.
type HomepageRepository interface {
	Get(ctx context.Context) (*model.HomepageContent, error)
	Create(ctx context.Context, content *model.HomepageContent) error
	Update(ctx context.Context, content *model.HomepageContent) error
}
