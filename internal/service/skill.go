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

// SkillService handles skills CRUD.
type SkillService struct {
	repo   repository.SkillRepository
	logger *slog.Logger
}

func NewSkillService(repo repository.SkillRepository, logger *slog.Logger) *SkillService {
	return &SkillService{repo: repo, logger: logger}
}

// SkillInput is the create payload. Both fields are required.
type SkillInput struct {
	Name      string `json:"name"`
	IconClass string `json:"iconClass"`
}

// SkillPatch is the update payload. Pointer fields make "omitted"
// explicit: nil leaves the stored value untouched, a non-nil value is
// assigned even when it's the empty string.
type SkillPatch struct {
	Name      *string `json:"name"`
	IconClass *string `json:"iconClass"`
}

func (s *SkillService) List(ctx context.Context) ([]model.Skill, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list skills", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) Create(ctx context.Context, in SkillInput) (*model.Skill, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.IconClass) == "" {
		return nil, apperror.ValidationFailed("", "Please enter all fields")
	}

	skill := &model.Skill{
		Name:      strings.TrimSpace(in.Name),
		IconClass: strings.TrimSpace(in.IconClass),
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	s.logger.Info("skill created", slog.String("id", skill.ID), slog.String("name", skill.Name))

	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id string, patch SkillPatch) (*model.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		skill.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.IconClass != nil {
		skill.IconClass = strings.TrimSpace(*patch.IconClass)
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
