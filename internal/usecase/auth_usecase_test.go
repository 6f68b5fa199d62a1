package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hiretrack/internal/domain/admin"
	"hiretrack/internal/pkg/jwt"
)

func testAuthUsecase(admins admin.Repository) *Auth {
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase(admins, jwtSvc)
}

func TestAuth_Login_Success(t *testing.T) {
	uc := testAuthUsecase(&fakeAdminRepo{byEmail: map[string]admin.Admin{
		"hr@example.com": {ID: 1, Email: "hr@example.com", Password: "letmein"},
	}})

	a, access, refresh, err := uc.Login(context.Background(), "hr@example.com", "letmein")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID != 1 || a.Email != "hr@example.com" {
		t.Fatalf("admin: %+v", a)
	}
	if a.Password != "" {
		t.Fatalf("password leaked in response")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected tokens, got %q / %q", access, refresh)
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	uc := testAuthUsecase(&fakeAdminRepo{byEmail: map[string]admin.Admin{
		"hr@example.com": {ID: 1, Email: "hr@example.com", Password: "letmein"},
	}})

	_, _, _, err := uc.Login(context.Background(), "hr@example.com", "LETMEIN")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	uc := testAuthUsecase(&fakeAdminRepo{byEmail: map[string]admin.Admin{}})

	_, _, _, err := uc.Login(context.Background(), "nobody@example.com", "x")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
