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

// ArticleService handles article CRUD.
type ArticleService struct {
	repo   repository.ArticleRepository
	logger *slog.Logger
}

func NewArticleService(repo repository.ArticleRepository, logger *slog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger}
}

type ArticleInput struct {
	Title     string `json:"title"`
	MediumURL string `json:"mediumUrl"`
	ImageURL  string `json:"imageUrl"`
	Excerpt   string `json:"excerpt"`
}

type ArticlePatch struct {
	Title     *string `json:"title"`
	MediumURL *string `json:"mediumUrl"`
	ImageURL  *string `json:"imageUrl"`
	Excerpt   *string `json:"excerpt"`
}

func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (*model.Article, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.MediumURL) == "" ||
		strings.TrimSpace(in.ImageURL) == "" ||
		strings.TrimSpace(in.Excerpt) == "" {
		return nil, apperror.ValidationFailed("", "Please enter all fields")
	}

	article := &model.Article{
		Title:     strings.TrimSpace(in.Title),
		MediumURL: strings.TrimSpace(in.MediumURL),
		ImageURL:  in.ImageURL,
		Excerpt:   in.Excerpt,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article created", slog.String("id", article.ID), slog.String("title", article.Title))

	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, patch ArticlePatch) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		article.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.MediumURL != nil {
		article.MediumURL = strings.TrimSpace(*patch.MediumURL)
	}
	if patch.ImageURL != nil {
		article.ImageURL = *patch.ImageURL
	}
	if patch.Excerpt != nil {
		article.Excerpt = *patch.Excerpt
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
