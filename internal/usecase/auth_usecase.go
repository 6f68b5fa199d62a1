package usecase

import (
	"context"
	"errors"

	"hiretrack/internal/domain/admin"
	"hiretrack/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (admin.Admin, string, string, error)
}

type Auth struct {
	admins admin.Repository
	jwt    jwt.Service
}

func NewAuthUsecase(admins admin.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{admins: admins, jwt: jwtSvc}
}

// Login checks the stored plaintext password against the submitted one.
// Hashing is out of scope; legacy dashboard accounts are stored as-is.
func (u *Auth) Login(ctx context.Context, email, password string) (admin.Admin, string, string, error) {
	a, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return admin.Admin{}, "", "", ErrInvalidCredentials
		}
		return admin.Admin{}, "", "", ErrInternal
	}

	if a.Password != password {
		return admin.Admin{}, "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		return admin.Admin{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return admin.Admin{}, "", "", ErrInternal
	}

	a.Password = ""
	return a, access, refresh, nil
}
