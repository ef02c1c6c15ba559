package ports

import "context"

// Storage is the persistent key-value substrate underneath the data store: an
// opaque string-keyed blob store with synchronous access and no transactions.
// Writes from one process become visible to another only on that process's
// next Get; there is no notification mechanism and no optimistic-concurrency
// check (last write wins).
type Storage interface {
	// Get returns the blob stored under key. The second result is false when
	// the key has never been written — which is distinct from an empty value.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
