// Package cart holds the in-memory shopping cart and its durable persistence.
//
// Store is the only mutator of cart state. Every mutation is announced to the
// subscribed observers in mutation order; Persister is one such observer.
package cart

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

// Observer receives a copy of the cart contents after every mutation.
// Implementations must not block and must not call back into the Store.
type Observer interface {
	CartChanged(items []domain.LineItem)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(items []domain.LineItem)

func (f ObserverFunc) CartChanged(items []domain.LineItem) { f(items) }

type Store struct {
	mu        sync.Mutex
	unit      currency.Unit
	items     []domain.LineItem
	observers map[int]Observer
	nextObsID int
}

// NewStore creates a cart priced in unit, seeded with restored items.
// Seed items with a non-positive quantity, a negative price or a foreign
// currency are dropped, duplicates are merged.
func NewStore(unit currency.Unit, restored ...domain.LineItem) *Store {
	s := &Store{
		unit:      unit,
		observers: make(map[int]Observer),
	}

	for _, item := range restored {
		if item.Quantity < 1 || s.checkProduct(item.Product) != nil {
			continue
		}
		s.merge(item.Product, item.Quantity)
	}

	return s
}

func (s *Store) Currency() currency.Unit {
	return s.unit
}

// AddToCart adds quantity units of product, merging with an existing line item
// for the same product ID.
func (s *Store) AddToCart(product domain.Product, quantity int) error {
	return s.add(product, quantity, false)
}

// AddWithinStock is AddToCart that fails with domain.ErrInsufficientStock
// when the merged quantity would exceed product.Stock.
func (s *Store) AddWithinStock(product domain.Product, quantity int) error {
	return s.add(product, quantity, true)
}

func (s *Store) add(product domain.Product, quantity int, withinStock bool) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if err := s.checkProduct(product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if withinStock {
		inCart := 0
		if idx := s.indexOf(product.ID); idx >= 0 {
			inCart = s.items[idx].Quantity
		}
		if quantity > product.Stock-inCart {
			return domain.ErrInsufficientStock
		}
	}

	s.merge(product, quantity)
	s.notify()

	return nil
}

// RemoveFromCart is a no-op when productID is not in the cart.
func (s *Store) RemoveFromCart(productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	s.notify()
}

// SetQuantity replaces the quantity of an existing line item.
func (s *Store) SetQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if s.items[idx].Quantity == quantity {
		return nil
	}

	s.items[idx].Quantity = quantity
	s.notify()

	return nil
}

// Deduct subtracts the quantities of submitted from the matching line items
// and drops lines that reach zero. Lines and units added after submitted was
// taken stay in the cart.
func (s *Store) Deduct(submitted []domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, item := range submitted {
		idx := s.indexOf(item.Product.ID)
		if idx < 0 || item.Quantity < 1 {
			continue
		}

		changed = true
		if left := s.items[idx].Quantity - item.Quantity; left > 0 {
			s.items[idx].Quantity = left
			continue
		}
		s.items = slices.Delete(s.items, idx, idx+1)
	}

	if changed {
		s.notify()
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.notify()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Store) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CartTotal(s.items, s.unit)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Subscribe registers o and returns a function that unregisters it.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = o

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.observers, id)
		})
	}
}

func (s *Store) checkProduct(product domain.Product) error {
	if product.Price.Currency != s.unit {
		return domain.ErrCurrencyMismatch
	}
	if product.Price.Amount.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}

func (s *Store) merge(product domain.Product, quantity int) {
	if idx := s.indexOf(product.ID); idx >= 0 {
		s.items[idx] = domain.LineItem{
			Product:  product,
			Quantity: s.items[idx].Quantity + quantity,
		}
		return
	}

	s.items = append(s.items, domain.LineItem{Product: product, Quantity: quantity})
}

func (s *Store) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(s.items, func(item domain.LineItem) bool {
		return item.Product.ID == productID
	})
}

func (s *Store) snapshot() []domain.LineItem {
	return slices.Clone(s.items)
}

// notify runs with s.mu held so observers see mutations in order.
func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}

	for _, o := range s.observers {
		o.CartChanged(s.snapshot())
	}
}
