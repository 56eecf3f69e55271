package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
)

type fakeExperienceRepo struct {
	entries []*model.Experience
	nextID  int
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{nextID: 1}
}

func (f *fakeExperienceRepo) List(ctx context.Context) ([]model.Experience, error) {
	out := make([]model.Experience, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExperienceRepo) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	for _, e := range f.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("Experience")
}

func (f *fakeExperienceRepo) Create(ctx context.Context, exp *model.Experience) error {
	exp.ID = "exp-" + string(rune('0'+f.nextID))
	f.nextID++
	exp.CreatedAt = time.Now()
	exp.UpdatedAt = exp.CreatedAt
	copied := *exp
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeExperienceRepo) Update(ctx context.Context, exp *model.Experience) error {
	for i, e := range f.entries {
		if e.ID == exp.ID {
			copied := *exp
			f.entries[i] = &copied
			return nil
		}
	}
	return apperror.NotFound("Experience")
}

func (f *fakeExperienceRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("Experience")
}

func validExperienceInput() ExperienceInput {
	return ExperienceInput{
		Title:            "Software Engineer",
		Company:          "Acme Corp",
		StartDate:        time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		Responsibilities: model.StringList{"Built the thing"},
		Technologies:     model.StringList{"Go", "SQLite"},
	}
}

func TestExperienceCreate(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo(), testLogger())

	exp, err := svc.Create(context.Background(), validExperienceInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if exp.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if exp.EndDate != nil {
		t.Error("EndDate should be nil for a current position")
	}
}

func TestExperienceCreate_MissingFields(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo(), testLogger())

	cases := map[string]func(*ExperienceInput){
		"no title":            func(in *ExperienceInput) { in.Title = "" },
		"no company":          func(in *ExperienceInput) { in.Company = "" },
		"zero start date":     func(in *ExperienceInput) { in.StartDate = time.Time{} },
		"no responsibilities": func(in *ExperienceInput) { in.Responsibilities = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validExperienceInput()
			mutate(&in)

			_, err := svc.Create(context.Background(), in)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestExperienceUpdate_OmittedEndDateClearsIt(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo(), testLogger())

	in := validExperienceInput()
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	in.EndDate = &end

	exp, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if exp.EndDate == nil {
		t.Fatal("setup: EndDate should be set")
	}

	// A patch without endDate marks the position current again.
	updated, err := svc.Update(context.Background(), exp.ID, ExperiencePatch{
		Title: strPtr("Senior Software Engineer"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.EndDate != nil {
		t.Errorf("EndDate = %v, want nil (cleared)", updated.EndDate)
	}
	if updated.Title != "Senior Software Engineer" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestExperienceUpdate_SetEndDate(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo(), testLogger())

	exp, _ := svc.Create(context.Background(), validExperienceInput())

	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), exp.ID, ExperiencePatch{EndDate: &end})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Errorf("EndDate = %v, want %v", updated.EndDate, end)
	}
	// Untouched fields survive.
	if updated.Company != "Acme Corp" {
		t.Errorf("company = %q, want unchanged", updated.Company)
	}
}
