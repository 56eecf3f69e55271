package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// HomepageService manages the homepage singleton. Reads expand the
// featured skill/project references to full records; updates operate on
// the stored form (bare ID lists). It pulls in the skill and project
// repositories because of that expansion.
type HomepageService struct {
	repo     repository.HomepageRepository
	skills   repository.SkillRepository
	projects repository.ProjectRepository
	logger   *slog.Logger
}

func NewHomepageService(
	repo repository.HomepageRepository,
	skills repository.SkillRepository,
	projects repository.ProjectRepository,
	logger *slog.Logger,
) *HomepageService {
	return &HomepageService{
		repo:     repo,
		skills:   skills,
		projects: projects,
		logger:   logger,
	}
}

type HomepagePatch struct {
	Name               *string           `json:"name"`
	Headline           *string           `json:"headline"`
	AboutText          *string           `json:"aboutText"`
	ProfileImageURL    *string           `json:"profileImageUrl"`
	FeaturedSkillIDs   *model.StringList `json:"featuredSkillIds"`
	FeaturedProjectIDs *model.StringList `json:"featuredProjectIds"`
	ResumeURL          *string           `json:"resumeUrl"`
}

// defaultContent is what a fresh install shows before the admin edits
// anything. Created lazily on the first read.
func defaultContent() *model.HomepageContent {
	return &model.HomepageContent{
		Name:               "Your Name",
		Headline:           "Fullstack Software Engineer",
		AboutText:          "Welcome to my portfolio! I build robust and scalable web applications with a focus on both backend and frontend technologies.",
		ProfileImageURL:    "https://placehold.co/150x150/EEEEEE/333333?text=Profile",
		FeaturedSkillIDs:   model.StringList{},
		FeaturedProjectIDs: model.StringList{},
	}
}

// Get returns the singleton, creating the default document first if none
// exists. The second return value reports whether a create happened, so
// the handler can answer 201 instead of 200 on that first read.
func (s *HomepageService) Get(ctx context.Context) (*model.HomepageView, bool, error) {
	content, err := s.repo.Get(ctx)
	if err == nil {
		view, verr := s.buildView(ctx, content)
		return view, false, verr
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		s.logger.Error("failed to load homepage content", slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("loading homepage content: %w", err)
	}

	content = defaultContent()
	if err := s.repo.Create(ctx, content); err != nil {
		return nil, false, fmt.Errorf("creating default homepage content: %w", err)
	}

	s.logger.Info("created default homepage content", slog.String("id", content.ID))

	view, err := s.buildView(ctx, content)
	return view, true, err
}

// Update patches the singleton and returns the stored form. 404s if the
// singleton has never been created (GET creates it).
func (s *HomepageService) Update(ctx context.Context, patch HomepagePatch) (*model.HomepageContent, error) {
	content, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		content.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Headline != nil {
		content.Headline = strings.TrimSpace(*patch.Headline)
	}
	if patch.AboutText != nil {
		content.AboutText = *patch.AboutText
	}
	if patch.ProfileImageURL != nil {
		content.ProfileImageURL = *patch.ProfileImageURL
	}
	if patch.FeaturedSkillIDs != nil {
		content.FeaturedSkillIDs = *patch.FeaturedSkillIDs
	}
	if patch.FeaturedProjectIDs != nil {
		content.FeaturedProjectIDs = *patch.FeaturedProjectIDs
	}
	if patch.ResumeURL != nil {
		content.ResumeURL = *patch.ResumeURL
	}

	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// buildView expands the featured reference lists. A reference whose
// target was deleted is skipped, not an error — the admin SPA prunes the
// stale ID on its next save.
func (s *HomepageService) buildView(ctx context.Context, content *model.HomepageContent) (*model.HomepageView, error) {
	view := &model.HomepageView{
		ID:               content.ID,
		Name:             content.Name,
		Headline:         content.Headline,
		AboutText:        content.AboutText,
		ProfileImageURL:  content.ProfileImageURL,
		FeaturedSkills:   []model.Skill{},
		FeaturedProjects: []model.Project{},
		ResumeURL:        content.ResumeURL,
		CreatedAt:        content.CreatedAt,
		UpdatedAt:        content.UpdatedAt,
	}

	for _, id := range content.FeaturedSkillIDs {
		skill, err := s.skills.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("expanding featured skill %s: %w", id, err)
		}
		view.FeaturedSkills = append(view.FeaturedSkills, *skill)
	}

	for _, id := range content.FeaturedProjectIDs {
		project, err := s.projects.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("expanding featured project %s: %w", id, err)
		}
		view.FeaturedProjects = append(view.FeaturedProjects, *project)
	}

	return view, nil
}
