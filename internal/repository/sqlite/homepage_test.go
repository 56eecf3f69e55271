package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
)

func TestHomepageGet_Empty(t *testing.T) {
	repo := NewHomepageRepo(newTestDB(t))

	_, err := repo.Get(context.Background())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Homepage content not found. Please create one first." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestHomepageCreateAndGet(t *testing.T) {
	repo := NewHomepageRepo(newTestDB(t))

	content := &model.HomepageContent{
		Name:               "Sakif",
		Headline:           "Fullstack Software Engineer",
		AboutText:          "About me.",
		FeaturedSkillIDs:   model.StringList{"skill-a", "skill-b"},
		FeaturedProjectIDs: model.StringList{},
	}
	if err := repo.Create(context.Background(), content); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if content.ID == "" {
		t.Fatal("Create() did not set ID")
	}

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Sakif" {
		t.Errorf("name = %q", got.Name)
	}
	if !reflect.DeepEqual(got.FeaturedSkillIDs, model.StringList{"skill-a", "skill-b"}) {
		t.Errorf("featuredSkillIds = %v", got.FeaturedSkillIDs)
	}
}

func TestHomepageUpdate(t *testing.T) {
	repo := NewHomepageRepo(newTestDB(t))

	content := &model.HomepageContent{
		Name:               "Before",
		Headline:           "h",
		AboutText:          "a",
		FeaturedSkillIDs:   model.StringList{},
		FeaturedProjectIDs: model.StringList{},
	}
	if err := repo.Create(context.Background(), content); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	content.Name = "After"
	content.ResumeURL = "https://example.com/resume.pdf"
	if err := repo.Update(context.Background(), content); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.Get(context.Background())
	if got.Name != "After" || got.ResumeURL != "https://example.com/resume.pdf" {
		t.Errorf("after update: %+v", got)
	}
}

func TestHomepageUpdate_NoRow(t *testing.T) {
	repo := NewHomepageRepo(newTestDB(t))

	err := repo.Update(context.Background(), &model.HomepageContent{
		ID: "never-created", Name: "x", Headline: "y", AboutText: "z",
		FeaturedSkillIDs: model.StringList{}, FeaturedProjectIDs: model.StringList{},
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}
