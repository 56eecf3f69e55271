package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// ExperienceService handles work-history CRUD.
type ExperienceService struct {
	repo   repository.ExperienceRepository
	logger *slog.Logger
}

func NewExperienceService(repo repository.ExperienceRepository, logger *slog.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, logger: logger}
}

type ExperienceInput struct {
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          *time.Time       `json:"endDate"`
	Responsibilities model.StringList `json:"responsibilities"`
	Technologies     model.StringList `json:"technologies"`
}

// ExperiencePatch updates an entry. Unlike the other patch types,
// EndDate is applied unconditionally: omitting it (or sending null)
// clears the end date, which is how a position is marked current again.
type ExperiencePatch struct {
	Title            *string           `json:"title"`
	Company          *string           `json:"company"`
	StartDate        *time.Time        `json:"startDate"`
	EndDate          *time.Time        `json:"endDate"`
	Responsibilities *model.StringList `json:"responsibilities"`
	Technologies     *model.StringList `json:"technologies"`
}

func (s *ExperienceService) List(ctx context.Context) ([]model.Experience, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list experience", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing experience: %w", err)
	}
	return entries, nil
}

func (s *ExperienceService) Create(ctx context.Context, in ExperienceInput) (*model.Experience, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Company) == "" ||
		in.StartDate.IsZero() ||
		len(in.Responsibilities) == 0 {
		return nil, apperror.ValidationFailed("",
			"Please enter all required fields: title, company, startDate, responsibilities")
	}

	exp := &model.Experience{
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Responsibilities: in.Responsibilities,
		Technologies:     in.Technologies,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, err
	}

	s.logger.Info("experience created",
		slog.String("id", exp.ID),
		slog.String("company", exp.Company),
	)

	return exp, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, patch ExperiencePatch) (*model.Experience, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		exp.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Company != nil {
		exp.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.StartDate != nil {
		exp.StartDate = *patch.StartDate
	}
	// Always assigned: nil means "no end date" (current position).
	exp.EndDate = patch.EndDate
	if patch.Responsibilities != nil {
		exp.Responsibilities = *patch.Responsibilities
	}
	if patch.Technologies != nil {
		exp.Technologies = *patch.Technologies
	}

	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
