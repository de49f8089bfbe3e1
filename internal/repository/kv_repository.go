package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

type kvRepository struct {
	q *db.Queries
}

// NewKV returns a KVStore backed by the kv_store table.
func NewKV(pool *pgxpool.Pool) port.KVStore {
	return &kvRepository{q: db.New(pool)}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is empty")
	}

	value, err := r.q.GetValue(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", port.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("q.GetValue: %w", err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := r.q.SetValue(ctx, db.SetValueParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("q.SetValue: %w", err)
	}

	return nil
}
