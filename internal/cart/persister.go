package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// StorageKey is the key-value slot holding the serialized cart.
const StorageKey = "cart-storage"

// KeyFor is the slot of the cart owned by owner.
func KeyFor(owner string) string {
	return StorageKey + ":" + owner
}

const defaultWriteTimeout = 5 * time.Second

// Persister mirrors the cart into a KVStore. Writes happen on a background
// worker and only the latest snapshot is kept, so a slow store never delays
// a cart mutation. Durability is best effort: failures are logged and dropped.
type Persister struct {
	kv           port.KVStore
	logger       *zap.Logger
	key          string
	writeTimeout time.Duration

	pending chan []domain.LineItem
	stop    chan struct{}
	done    chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

type PersisterOption func(*Persister)

func WithWriteTimeout(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.writeTimeout = d
		}
	}
}

// WithKey replaces StorageKey as the slot the cart is kept in.
func WithKey(key string) PersisterOption {
	return func(p *Persister) {
		if key != "" {
			p.key = key
		}
	}
}

func NewPersister(kv port.KVStore, logger *zap.Logger, opts ...PersisterOption) *Persister {
	p := &Persister{
		kv:           kv,
		logger:       logger.Named("cart.persister"),
		key:          StorageKey,
		writeTimeout: defaultWriteTimeout,
		pending:      make(chan []domain.LineItem, 1),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.String("key", p.key))

	return p
}

// Load reads the persisted cart. A missing, unreadable or malformed slot
// yields an empty cart.
func (p *Persister) Load(ctx context.Context) []domain.LineItem {
	raw, err := p.kv.Get(ctx, p.key)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		p.logger.Warn("cart restore failed, starting with an empty cart", zap.Error(err))
		return nil
	}

	items, err := decodeItems(raw)
	if err != nil {
		p.logger.Warn("persisted cart is malformed, starting with an empty cart", zap.Error(err))
		return nil
	}

	p.logger.Debug("cart restored", zap.Int("items", len(items)))

	return items
}

// CartChanged queues items for writing, replacing any snapshot not yet written.
func (p *Persister) CartChanged(items []domain.LineItem) {
	for {
		select {
		case p.pending <- items:
			return
		default:
		}

		select {
		case <-p.pending:
		default:
		}
	}
}

// Start launches the write worker.
func (p *Persister) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Close writes the last queued snapshot and stops the worker.
func (p *Persister) Close() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	p.startOnce.Do(func() {
		close(p.done)
	})
	<-p.done
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		select {
		case items := <-p.pending:
			p.save(items)
		case <-p.stop:
			select {
			case items := <-p.pending:
				p.save(items)
			default:
			}
			return
		}
	}
}

func (p *Persister) save(items []domain.LineItem) {
	raw, err := encodeItems(items)
	if err != nil {
		p.logger.Error("cart encode failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	if err := p.kv.Set(ctx, p.key, raw); err != nil {
		p.logger.Warn("cart persist failed", zap.Error(err), zap.Int("items", len(items)))
		return
	}

	p.logger.Debug("cart persisted", zap.Int("items", len(items)))
}

func encodeItems(items []domain.LineItem) (string, error) {
	if items == nil {
		items = []domain.LineItem{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return string(b), nil
}

func decodeItems(raw string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	valid := items[:0]
	for _, item := range items {
		if item.Product.ID == uuid.Nil {
			continue
		}
		valid = append(valid, item)
	}

	return valid, nil
}
