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

// SocialLinkService handles social link CRUD.
type SocialLinkService struct {
	repo   repository.SocialLinkRepository
	logger *slog.Logger
}

func NewSocialLinkService(repo repository.SocialLinkRepository, logger *slog.Logger) *SocialLinkService {
	return &SocialLinkService{repo: repo, logger: logger}
}

type SocialLinkInput struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IconClass string `json:"iconClass"`
}

type SocialLinkPatch struct {
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	IconClass *string `json:"iconClass"`
}

func (s *SocialLinkService) List(ctx context.Context) ([]model.SocialLink, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list social links", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing social links: %w", err)
	}
	return links, nil
}

func (s *SocialLinkService) Create(ctx context.Context, in SocialLinkInput) (*model.SocialLink, error) {
	if strings.TrimSpace(in.Platform) == "" ||
		strings.TrimSpace(in.URL) == "" ||
		strings.TrimSpace(in.IconClass) == "" {
		return nil, apperror.ValidationFailed("", "Please enter all fields")
	}

	link := &model.SocialLink{
		Platform:  strings.TrimSpace(in.Platform),
		URL:       strings.TrimSpace(in.URL),
		IconClass: strings.TrimSpace(in.IconClass),
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("social link created", slog.String("id", link.ID), slog.String("platform", link.Platform))

	return link, nil
}

func (s *SocialLinkService) Update(ctx context.Context, id string, patch SocialLinkPatch) (*model.SocialLink, error) {
	link, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Platform != nil {
		link.Platform = strings.TrimSpace(*patch.Platform)
	}
	if patch.URL != nil {
		link.URL = strings.TrimSpace(*patch.URL)
	}
	if patch.IconClass != nil {
		link.IconClass = strings.TrimSpace(*patch.IconClass)
	}

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *SocialLinkService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
