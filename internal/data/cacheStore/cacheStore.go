package cacheStore

import (
	"context"
	"time"
)

// ResponseCache holds raw upstream payloads for a short TTL. Only the fetched
// JSON body is ever stored here - pipeline artifacts are rebuilt on every call.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
