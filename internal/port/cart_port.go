package port

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value slot the cart is persisted to.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
