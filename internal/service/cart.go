package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// Carts hands out the cart of one owner.
type Carts interface {
	For(ctx context.Context, owner string) (*cart.Store, error)
}

// Cart operates on the session user's cart. Products are resolved from the
// catalog before they reach the cart store.
type Cart struct {
	catalog port.CatalogRepository
	session port.Session
	carts   Carts
}

func NewCart(catalog port.CatalogRepository, session port.Session, carts Carts) *Cart {
	return &Cart{
		catalog: catalog,
		session: session,
		carts:   carts,
	}
}

// Snapshot returns the line items and their total, read together.
func (s *Cart) Snapshot(ctx context.Context) ([]domain.LineItem, domain.Money, error) {
	store, err := s.current(ctx)
	if err != nil {
		return nil, domain.Money{}, err
	}

	items := store.Items()

	return items, domain.CartTotal(items, store.Currency()), nil
}

// Add looks up productID and adds quantity units of it to the cart, up to
// the product's stock. Quantity is checked before the catalog is queried.
func (s *Cart) Add(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if productID == uuid.Nil {
		return domain.NewValidationError("productId", "is required")
	}

	store, err := s.current(ctx)
	if err != nil {
		return err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}

	if err := store.AddWithinStock(product, quantity); err != nil {
		return fmt.Errorf("store.AddWithinStock: %w", err)
	}

	return nil
}

// SetQuantity replaces the quantity of a product already in the cart.
// Quantity may not exceed the product's current stock.
func (s *Cart) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	store, err := s.current(ctx)
	if err != nil {
		return err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}
	if quantity > product.Stock {
		return domain.ErrInsufficientStock
	}

	if err := store.SetQuantity(productID, quantity); err != nil {
		return fmt.Errorf("store.SetQuantity: %w", err)
	}

	return nil
}

func (s *Cart) Remove(ctx context.Context, productID uuid.UUID) error {
	store, err := s.current(ctx)
	if err != nil {
		return err
	}

	store.RemoveFromCart(productID)

	return nil
}

func (s *Cart) Clear(ctx context.Context) error {
	store, err := s.current(ctx)
	if err != nil {
		return err
	}

	store.ClearCart()

	return nil
}

func (s *Cart) current(ctx context.Context) (*cart.Store, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.CurrentUser: %w", err)
	}

	store, err := s.carts.For(ctx, user.Key())
	if err != nil {
		return nil, fmt.Errorf("carts.For: %w", err)
	}

	return store, nil
}
