package usecase

import (
	"context"
	"strconv"
	"time"
)

// ViewCache is the slice of the Redis cache the view builder needs.
type ViewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func CandidateJobDetailsCacheKey(candidateID int64) string {
	return "candidate:jobdetails:" + strconv.FormatInt(candidateID, 10)
}
