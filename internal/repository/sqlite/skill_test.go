package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
)

func createTestSkill(t *testing.T, repo *SkillRepo, name string) *model.Skill {
	t.Helper()
	skill := &model.Skill{Name: name, IconClass: "devicon-" + name + "-plain"}
	if err := repo.Create(context.Background(), skill); err != nil {
		t.Fatalf("creating test skill %q: %v", name, err)
	}
	return skill
}

func TestSkillCreateAndGet(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	created := createTestSkill(t, repo, "go")

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "go" || got.IconClass != "devicon-go-plain" {
		t.Errorf("got %+v", got)
	}
}

func TestSkillCreate_DuplicateName(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	createTestSkill(t, repo, "go")

	err := repo.Create(context.Background(), &model.Skill{Name: "go", IconClass: "other"})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
	if err.Error() != `Skill "go" already exists` {
		t.Errorf("message = %q", err.Error())
	}
}

func TestSkillList_InsertionOrder(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	for _, name := range []string{"go", "typescript", "sqlite"} {
		createTestSkill(t, repo, name)
	}

	skills, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("List() returned %d skills, want 3", len(skills))
	}
	for i, want := range []string{"go", "typescript", "sqlite"} {
		if skills[i].Name != want {
			t.Errorf("skills[%d].Name = %q, want %q", i, skills[i].Name, want)
		}
	}
}

func TestSkillList_Empty(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	skills, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Empty, not nil — serializes as [] rather than null.
	if skills == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(skills) != 0 {
		t.Errorf("List() returned %d skills, want 0", len(skills))
	}
}

func TestSkillUpdate(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	skill := createTestSkill(t, repo, "go")

	skill.Name = "golang"
	if err := repo.Update(context.Background(), skill); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(context.Background(), skill.ID)
	if got.Name != "golang" {
		t.Errorf("name after update = %q, want %q", got.Name, "golang")
	}
}

func TestSkillUpdate_NotFound(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	err := repo.Update(context.Background(), &model.Skill{ID: "missing", Name: "x", IconClass: "y"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestSkillDelete(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	skill := createTestSkill(t, repo, "go")

	if err := repo.Delete(context.Background(), skill.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(context.Background(), skill.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting again is a not-found, not a no-op.
	if err := repo.Delete(context.Background(), skill.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
