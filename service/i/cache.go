package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-forge-api/domain"
)

// UnlockFunc releases a lock taken with DesignCache.Lock.
type UnlockFunc func() error

// DesignCache caches fully rendered blueprints keyed by their resolved
// parameters, so identical seeded requests are generated once.
type DesignCache interface {
	// Get returns the cached blueprint for the key, or nil on a miss.
	Get(ctx context.Context, key string) (*dmn.Blueprint, error)

	// Set stores a blueprint under the key.
	Set(ctx context.Context, key string, blueprint *dmn.Blueprint) error

	// Lock takes a short-lived distributed lock on the key so concurrent
	// identical requests do not all generate the same maze.
	Lock(key string) (UnlockFunc, error)
}
