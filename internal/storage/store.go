package storage

import "context"

// DefaultCartKey identifies the cart snapshot in the key-value store. The whole
// cart is always written under a single key; there is no per-item persistence.
const DefaultCartKey = "cart"

// SnapshotStore is a durable key-value store for serialized cart snapshots.
// Read reports absence through the boolean, not through an error.
type SnapshotStore interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
}
