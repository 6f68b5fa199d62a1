package postgres

import (
	"context"
	"errors"

	"hiretrack/internal/database"
	"hiretrack/internal/domain/admin"

	"github.com/jackc/pgx/v5"
)

type AdminRepository struct {
	db database.DB
}

func NewAdminRepository(db database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT admin_id, COALESCE(first_name, ''), COALESCE(last_name, ''), email, COALESCE(password, '')
		 FROM admin WHERE email = $1`, email)

	var a admin.Admin
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, err
	}
	return a, nil
}
