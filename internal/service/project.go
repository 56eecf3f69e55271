package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// ProjectService handles project CRUD.
type ProjectService struct {
	repo   repository.ProjectRepository
	logger *slog.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

type ProjectInput struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Technologies model.StringList `json:"technologies"`
	RepoLink     string           `json:"repoLink"`
	LiveLink     string           `json:"liveLink"`
	ImageURL     string           `json:"imageUrl"`
}

type ProjectPatch struct {
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	Technologies *model.StringList `json:"technologies"`
	RepoLink     *string           `json:"repoLink"`
	LiveLink     *string           `json:"liveLink"`
	ImageURL     *string           `json:"imageUrl"`
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*model.Project, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		len(in.Technologies) == 0 ||
		strings.TrimSpace(in.ImageURL) == "" {
		return nil, apperror.ValidationFailed("",
			"Please enter all required fields: name, description, technologies, imageUrl")
	}

	project := &model.Project{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Technologies: in.Technologies,
		RepoLink:     in.RepoLink,
		LiveLink:     in.LiveLink,
		ImageURL:     in.ImageURL,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created", slog.String("id", project.ID), slog.String("name", project.Name))

	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Technologies != nil {
		project.Technologies = *patch.Technologies
	}
	if patch.RepoLink != nil {
		project.RepoLink = *patch.RepoLink
	}
	if patch.LiveLink != nil {
		project.LiveLink = *patch.LiveLink
	}
	if patch.ImageURL != nil {
		project.ImageURL = *patch.ImageURL
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
