package repository

import "context"

// CacheRepository caches serialized calculation results keyed by a
// digest of the request terms.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
