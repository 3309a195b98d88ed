package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

const testSecret = "test-secret"

func seededLoginRepo(t *testing.T) *stubUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return newStubUserRepo(domain.User{
		ID:           "user_1",
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService(seededLoginRepo(t), testSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}
}

func TestAuthService_Login_TokenCarriesIdentityClaims(t *testing.T) {
	svc := NewAuthService(seededLoginRepo(t), testSecret, time.Hour)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["sub"] != "user_1" || claims["role"] != domain.RoleAdmin || claims["email"] != "admin@example.com" {
		t.Errorf("claims wrong: %v", claims)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(seededLoginRepo(t), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "admin123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(seededLoginRepo(t), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(seededLoginRepo(t), testSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
