package admin

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("admin not found")

// Admin is a dashboard operator account. Passwords are stored and compared
// in plaintext; hardening the credential check is out of scope.
type Admin struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
}
