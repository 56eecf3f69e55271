package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/auth"
	"github.com/sakif/portfolio-api/internal/model"
)

// testLogger discards everything below Error so test output stays quiet.
// Shared by all service tests in this package.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeUserRepo is an in-memory repository.UserRepository. A hand-written
// fake (not a mock framework) keeps the behaviour visible in the test file.
type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperror.Conflict("User already exists")
		}
	}
	user.ID = "user-" + string(rune('0'+f.nextID))
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("User")
}

func newTestAuthService(t *testing.T, repo *fakeUserRepo, openRegistration bool) *AuthService {
	t.Helper()

	ts, err := auth.NewTokenService("test-secret-for-portfolio-api!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	ps := auth.NewPasswordServiceForTest(bcrypt.MinCost)

	return NewAuthService(repo, ts, ps, openRegistration, testLogger())
}

func TestRegister_CreatesAccountAndToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo, true)

	res, err := svc.Register(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if res.User.ID == "" {
		t.Error("Register() did not assign an ID")
	}
	if res.User.Username != "admin" {
		t.Errorf("username = %q, want %q", res.User.Username, "admin")
	}
	if res.Token == "" {
		t.Error("Register() did not issue a token")
	}
	if res.User.PasswordHash == "s3cret" {
		t.Error("Register() stored the plaintext password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), true)

	for _, tc := range []struct{ username, password string }{
		{"", "pass"},
		{"admin", ""},
		{"", ""},
		{"   ", "pass"},
	} {
		_, err := svc.Register(context.Background(), tc.username, tc.password)
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Register(%q, %q) error = %v, want ErrValidation", tc.username, tc.password, err)
		}
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), true)

	if _, err := svc.Register(context.Background(), "admin", "first"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), "admin", "second")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("second Register() error = %v, want ErrConflict", err)
	}
	if err == nil || err.Error() != "User already exists" {
		t.Errorf("message = %v, want %q", err, "User already exists")
	}
}

func TestRegister_Disabled(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), false)

	_, err := svc.Register(context.Background(), "admin", "pass")
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("Register() error = %v, want ErrForbidden", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo, true)

	reg, err := svc.Register(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	res, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.User.ID != reg.User.ID {
		t.Errorf("Login() user ID = %q, want %q", res.User.ID, reg.User.ID)
	}
	if res.Token == "" {
		t.Error("Login() did not issue a token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), true)
	_, _ = svc.Register(context.Background(), "admin", "hunter2")

	_, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("Login() error = %v, want ErrUnauthorized", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Errorf("message = %q, want %q", err.Error(), "Invalid credentials")
	}
}

func TestLogin_UnknownUsername_SameError(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), true)
	_, _ = svc.Register(context.Background(), "admin", "hunter2")

	// Unknown user and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), "nobody", "hunter2")
	_, errWrong := svc.Login(context.Background(), "admin", "wrong")

	if !errors.Is(errUnknown, apperror.ErrUnauthorized) {
		t.Fatalf("unknown-user error = %v, want ErrUnauthorized", errUnknown)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown.Error(), errWrong.Error())
	}
}
