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

// ContactService handles contact-form submissions: the one public write
// in the whole API. Submissions are listed and deleted by the admin and
// never updated.
type ContactService struct {
	repo   repository.ContactRepository
	logger *slog.Logger
}

func NewContactService(repo repository.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// ContactInput is the public submission payload. Subject is optional.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list contact messages", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	return msgs, nil
}

// Submit stores a visitor's message.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return nil, apperror.ValidationFailed("",
			"Please enter all required fields: name, email, message")
	}

	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received",
		slog.String("id", msg.ID),
		slog.String("from", msg.Email),
	)

	return msg, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
