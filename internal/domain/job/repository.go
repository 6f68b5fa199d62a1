package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
