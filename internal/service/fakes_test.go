package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

type fakeCarts struct {
	mu    sync.Mutex
	carts map[string]*cart.Store
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{carts: make(map[string]*cart.Store)}
}

func (c *fakeCarts) For(_ context.Context, owner string) (*cart.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	store, ok := c.carts[owner]
	if !ok {
		store = cart.NewStore(currency.MustParseISO("INR"))
		c.carts[owner] = store
	}
	return store, nil
}

type fakeSession struct {
	user  domain.User
	err   error
	calls int
}

func (s *fakeSession) CurrentUser(context.Context) (domain.User, error) {
	s.calls++
	if s.err != nil {
		return domain.User{}, s.err
	}
	return s.user, nil
}

type fakeCatalog struct {
	categories []domain.Category
	products   map[uuid.UUID]domain.Product
	err        error
	calls      int
}

func (c *fakeCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	c.calls++
	return c.categories, c.err
}

func (c *fakeCatalog) ListProductsByCategory(_ context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	var out []domain.Product
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *fakeCatalog) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	c.calls++
	if c.err != nil {
		return domain.Product{}, c.err
	}

	p, ok := c.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

type fakeCustomers struct {
	mu     sync.Mutex
	byMail map[string]domain.Customer
	err    error
}

func newFakeCustomers(customers ...domain.Customer) *fakeCustomers {
	f := &fakeCustomers{byMail: make(map[string]domain.Customer)}
	for _, c := range customers {
		f.byMail[c.Email] = c
	}
	return f
}

func (c *fakeCustomers) GetByEmail(_ context.Context, email string) (domain.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return domain.Customer{}, c.err
	}
	customer, ok := c.byMail[email]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return customer, nil
}

func (c *fakeCustomers) UpdatePersonalDetails(_ context.Context, email string, details domain.PersonalDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	customer, ok := c.byMail[email]
	if !ok {
		return domain.ErrNotFound
	}
	if _, taken := c.byMail[details.Email]; taken && details.Email != email {
		return domain.NewValidationError("email", "is already in use")
	}

	delete(c.byMail, email)
	customer.Name = details.Name
	customer.Email = details.Email
	customer.PhoneNumber = details.PhoneNumber
	c.byMail[customer.Email] = customer

	return nil
}

func (c *fakeCustomers) UpdateShippingDetails(_ context.Context, email string, details domain.ShippingDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	customer, ok := c.byMail[email]
	if !ok {
		return domain.ErrNotFound
	}
	customer.Address = details.Address
	customer.City = details.City
	c.byMail[email] = customer

	return nil
}

type fakeOrders struct {
	orders map[uuid.UUID]domain.Order
	err    error
	calls  int
	gotIDs []uuid.UUID
}

func newFakeOrders(orders ...domain.Order) *fakeOrders {
	f := &fakeOrders{orders: make(map[uuid.UUID]domain.Order)}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (o *fakeOrders) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = uuid.New()
	o.orders[order.ID] = order
	return order, nil
}

func (o *fakeOrders) ListOrders(_ context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	o.calls++
	if o.err != nil {
		return nil, o.err
	}

	out := []domain.Order{}
	for _, order := range o.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (o *fakeOrders) CancelOrders(_ context.Context, customerID uuid.UUID, orderIDs []uuid.UUID) ([]uuid.UUID, error) {
	o.calls++
	o.gotIDs = orderIDs
	if o.err != nil {
		return nil, o.err
	}

	var canceled []uuid.UUID
	for _, id := range orderIDs {
		order, ok := o.orders[id]
		if !ok || order.CustomerID != customerID || order.Status != domain.OrderStatusPending {
			continue
		}
		order.Status = domain.OrderStatusCanceled
		o.orders[id] = order
		canceled = append(canceled, id)
	}
	return canceled, nil
}
