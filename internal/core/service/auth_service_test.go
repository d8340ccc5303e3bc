package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/core/auth"
	"github.com/taskforge/task-tracker/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubThrottle struct {
	locked   bool
	err      error
	failures int
	resets   int
}

func (s *stubThrottle) Locked(context.Context, string) (bool, error) { return s.locked, s.err }
func (s *stubThrottle) RecordFailure(context.Context, string) error  { s.failures++; return nil }
func (s *stubThrottle) Reset(context.Context, string) error          { s.resets++; return nil }

func newAuthService(repo *stubUserRepo, throttle *stubThrottle) (*AuthService, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubThrottle{})

	user, err := svc.Register(context.Background(), "alice", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !auth.VerifyPassword("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubThrottle{})

	if _, err := svc.Register(context.Background(), "", "pass", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass", "superuser"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubThrottle{})

	if _, err := svc.Register(context.Background(), "bob", "pass", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	throttle := &stubThrottle{}
	svc, tokens := newAuthService(newStubUserRepo(), throttle)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", "admin"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if subject != "carol" {
		t.Fatalf("expected subject carol, got %s", subject)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	throttle := &stubThrottle{}
	svc, _ := newAuthService(newStubUserRepo(), throttle)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected failure recorded")
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable.
	svc, _ := newAuthService(newStubUserRepo(), &stubThrottle{})

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubThrottle{locked: true})

	if _, _, err := svc.Login(context.Background(), "dave", "pass"); err != domain.ErrLoginThrottled {
		t.Fatalf("expected ErrLoginThrottled, got %v", err)
	}
}

func TestAuthService_Login_ThrottleFailsOpen(t *testing.T) {
	throttle := &stubThrottle{err: context.DeadlineExceeded}
	svc, _ := newAuthService(newStubUserRepo(), throttle)

	_, _ = svc.Register(context.Background(), "erin", "pass", "")
	if _, _, err := svc.Login(context.Background(), "erin", "pass"); err != nil {
		t.Fatalf("throttle outage must not block login, got %v", err)
	}
}

func TestAuthService_RepeatedLogins_DistinctTokens(t *testing.T) {
	svc, tokens := newAuthService(newStubUserRepo(), &stubThrottle{})

	_, _ = svc.Register(context.Background(), "frank", "pass", "")
	t1, _, err := svc.Login(context.Background(), "frank", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // exp claim has second granularity
	t2, _, err := svc.Login(context.Background(), "frank", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("repeated logins must issue distinct tokens")
	}
	for _, raw := range []string{t1, t2} {
		if _, err := tokens.Validate(raw); err != nil {
			t.Fatalf("token should be independently valid: %v", err)
		}
	}
}
