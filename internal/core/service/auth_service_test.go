package service

import (
	"context"
	"testing"
	"time"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(t *testing.T, id, username, password, role string) {
	t.Helper()
	hash, err := (&BcryptHasher{Cost: 4}).Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	r.users[username] = &domain.User{ID: id, Username: username, PasswordHash: hash, Role: role}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "id-1", "admin", "secret123", domain.RoleAdmin)

	tokens := NewTokenIssuer("secret", time.Hour)
	svc := NewAuthService(repo, &BcryptHasher{Cost: 4}, tokens)

	token, user, err := svc.Login(context.Background(), "admin", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.SubjectID != "id-1" {
		t.Fatalf("expected subject id-1, got %q", claims.SubjectID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %q", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "id-1", "admin", "secret123", domain.RoleAdmin)

	svc := NewAuthService(repo, &BcryptHasher{Cost: 4}, NewTokenIssuer("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "admin", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// An unknown username must be indistinguishable from a wrong password.
func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "id-1", "admin", "secret123", domain.RoleAdmin)

	svc := NewAuthService(repo, &BcryptHasher{Cost: 4}, NewTokenIssuer("secret", time.Hour))

	_, _, unknownErr := svc.Login(context.Background(), "ghost", "secret123")
	_, _, wrongPassErr := svc.Login(context.Background(), "admin", "wrong")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}
	if unknownErr != wrongPassErr {
		t.Fatalf("expected identical errors, got %v vs %v", unknownErr, wrongPassErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &BcryptHasher{Cost: 4}, NewTokenIssuer("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "admin", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// A corrupt stored hash must fail authentication, never bypass it.
func TestAuthService_Login_CorruptHash(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["admin"] = &domain.User{ID: "id-1", Username: "admin", PasswordHash: "corrupted", Role: domain.RoleAdmin}

	svc := NewAuthService(repo, &BcryptHasher{Cost: 4}, NewTokenIssuer("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "admin", "anything"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
