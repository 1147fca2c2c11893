package service

import (
	"context"
	"time"
)

// listingCache is the read-side cache consumed by the content services. The
// Redis-backed implementation lives in the repository package; a nil-client
// instance degrades every lookup to a miss.
type listingCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
