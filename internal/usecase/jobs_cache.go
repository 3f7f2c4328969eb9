package usecase

import (
	"context"
	"time"
)

// JobsSnapshotCache caches the active-jobs fetch, not recommendation
// output: results stay per-request while the storage read is shared.
type JobsSnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	activeJobsCacheKey = "jobs:active:snapshot"
	activeJobsCacheTTL = 60 * time.Second
)
