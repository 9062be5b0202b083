package application

import (
	"context"
	"testing"
	"time"

	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), nil, nil)
}

func TestRegisterThenLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" {
		t.Fatal("registered user has no id")
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email altered on store: %q", u.Email)
	}
	if u.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	token, exp, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}
	if !exp.After(time.Now()) {
		t.Fatal("token already expired")
	}

	claims, err := svc.JWT.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("token bound to %q, want %q", claims.UserID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	in := RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, in)
	if err == nil {
		t.Fatal("duplicate registration succeeded")
	}
	if !apperror.IsConflict(err) {
		t.Fatalf("got %v, want Conflict", err)
	}
}

func TestEmailCaseSensitivity(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	// Emails differing only in case are distinct identities.
	first, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "Alice@Example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("first Register: %v", err)
	}
	second, err := svc.Register(ctx, RegisterInput{Name: "Other Alice", Email: "alice@example.com", Password: "different456"})
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("case variants collapsed into one account")
	}

	// Login matches the stored email exactly.
	if _, _, err := svc.Login(ctx, "ALICE@EXAMPLE.COM", "secret123"); !apperror.IsNotFound(err) {
		t.Fatalf("got %v, want NotFound for a case-mismatched email", err)
	}
	token, _, err := svc.Login(ctx, "Alice@Example.com", "secret123")
	if err != nil {
		t.Fatalf("exact-case Login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if err == nil {
		t.Fatal("login for unknown email succeeded")
	}
	if !apperror.IsNotFound(err) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
	if err == nil {
		t.Fatal("login with wrong password succeeded")
	}
	if !apperror.IsInvalidCredentials(err) {
		t.Fatalf("got %v, want InvalidCredentials", err)
	}
	if token != "" {
		t.Fatal("token issued despite failed login")
	}
}

type captivePublisher struct {
	published []any
	err       error
}

func (p *captivePublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

func TestRegisterEnqueuesWelcomeEmail(t *testing.T) {
	users := newFakeUserRepo()
	pub := &captivePublisher{}
	svc := NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), pub, nil)

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d jobs, want 1", len(pub.published))
	}
}

func TestRegisterSurvivesPublishFailure(t *testing.T) {
	users := newFakeUserRepo()
	pub := &captivePublisher{err: context.DeadlineExceeded}
	svc := NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), pub, nil)

	u, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register failed on publish error: %v", err)
	}
	if u == nil || u.ID == "" {
		t.Fatal("user not persisted")
	}
}
