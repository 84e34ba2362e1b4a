package interfaces

import "context"

// Storage is the durable key-value collaborator the persistence meta-layer
// writes versioned slice snapshots to. It is a best-effort cache, not a
// source of truth: callers treat every error as "nothing persisted" and a
// missing key is reported via the bool, not an error.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
