package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
)

func testExperience(company string, start time.Time) *model.Experience {
	return &model.Experience{
		Title:            "Software Engineer",
		Company:          company,
		StartDate:        start,
		Responsibilities: model.StringList{"Shipped features"},
		Technologies:     model.StringList{"Go"},
	}
}

func TestExperienceCreateAndGet(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t))

	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	exp := testExperience("Acme", time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC))
	exp.EndDate = &end

	if err := repo.Create(context.Background(), exp); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), exp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Company != "Acme" {
		t.Errorf("company = %q", got.Company)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Errorf("EndDate = %v, want %v", got.EndDate, end)
	}
	if len(got.Responsibilities) != 1 || got.Responsibilities[0] != "Shipped features" {
		t.Errorf("responsibilities = %v", got.Responsibilities)
	}
}

func TestExperience_NilEndDateRoundTrip(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t))

	exp := testExperience("Current Employer", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), exp); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), exp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	// NULL end_date comes back as nil, meaning the position is ongoing.
	if got.EndDate != nil {
		t.Errorf("EndDate = %v, want nil", got.EndDate)
	}
}

func TestExperienceList_NewestStartFirst(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t))

	// Inserted out of order on purpose.
	for _, tc := range []struct {
		company string
		year    int
	}{
		{"Middle", 2020},
		{"Oldest", 2016},
		{"Newest", 2024},
	} {
		exp := testExperience(tc.company, time.Date(tc.year, 1, 1, 0, 0, 0, 0, time.UTC))
		if err := repo.Create(context.Background(), exp); err != nil {
			t.Fatalf("Create(%s) error = %v", tc.company, err)
		}
	}

	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"Newest", "Middle", "Oldest"} {
		if entries[i].Company != want {
			t.Errorf("entries[%d].Company = %q, want %q", i, entries[i].Company, want)
		}
	}
}

func TestExperienceUpdate_ClearEndDate(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t))

	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	exp := testExperience("Acme", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	exp.EndDate = &end
	if err := repo.Create(context.Background(), exp); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exp.EndDate = nil
	if err := repo.Update(context.Background(), exp); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(context.Background(), exp.ID)
	if got.EndDate != nil {
		t.Errorf("EndDate after clearing = %v, want nil", got.EndDate)
	}
}

func TestExperienceDelete_NotFound(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
