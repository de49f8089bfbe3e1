package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var ErrRegistryClosed = errors.New("cart registry is closed")

const defaultLoadTimeout = 5 * time.Second

// Registry keeps one Store per owner. Each Store is restored from and
// mirrored to its own slot, KeyFor(owner).
type Registry struct {
	kv            port.KVStore
	unit          currency.Unit
	logger        *zap.Logger
	persisterOpts []PersisterOption
	loadTimeout   time.Duration

	mu     sync.Mutex
	carts  map[string]*ownedCart
	closed bool
}

type ownedCart struct {
	once      sync.Once
	store     *Store
	persister *Persister
}

func NewRegistry(kv port.KVStore, unit currency.Unit, logger *zap.Logger, opts ...PersisterOption) *Registry {
	return &Registry{
		kv:            kv,
		unit:          unit,
		logger:        logger,
		persisterOpts: opts,
		loadTimeout:   defaultLoadTimeout,
		carts:         make(map[string]*ownedCart),
	}
}

// For returns the cart of owner, restoring it on first use.
// The restore ignores ctx cancellation and is bounded by its own timeout.
func (r *Registry) For(ctx context.Context, owner string) (*Store, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: cart owner is empty", domain.ErrUnauthenticated)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	c, ok := r.carts[owner]
	if !ok {
		c = &ownedCart{}
		r.carts[owner] = c
	}
	r.mu.Unlock()

	c.once.Do(func() {
		r.open(ctx, owner, c)
	})
	if c.store == nil {
		return nil, ErrRegistryClosed
	}

	return c.store, nil
}

// Len is the number of owners with an open cart.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.carts)
}

// Close flushes and stops every cart persister. For fails afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true

	carts := make([]*ownedCart, 0, len(r.carts))
	for _, c := range r.carts {
		carts = append(carts, c)
	}
	r.mu.Unlock()

	for _, c := range carts {
		c.once.Do(func() {})
		if c.persister != nil {
			c.persister.Close()
		}
	}
}

func (r *Registry) open(ctx context.Context, owner string, c *ownedCart) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.loadTimeout)
	defer cancel()

	opts := make([]PersisterOption, 0, len(r.persisterOpts)+1)
	opts = append(opts, r.persisterOpts...)
	opts = append(opts, WithKey(KeyFor(owner)))

	persister := NewPersister(r.kv, r.logger, opts...)
	store := NewStore(r.unit, persister.Load(ctx)...)
	store.Subscribe(persister)
	persister.Start()

	c.store = store
	c.persister = persister
}
