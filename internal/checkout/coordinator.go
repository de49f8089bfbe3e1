// Package checkout turns the cart into a submitted order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var (
	ErrCheckoutInProgress       = errors.New("checkout already in progress")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
)

const (
	shipAfter             = 72 * time.Hour
	defaultCarrierID      = 1
	defaultSubmitTimeout  = 15 * time.Second
	defaultDeliveryAmount = 100
)

var defaultCommissionRate = decimal.RequireFromString("0.15")

// Cart is the part of the cart store checkout reads and deducts from.
type Cart interface {
	Items() []domain.LineItem
	Currency() currency.Unit
	Deduct(submitted []domain.LineItem)
}

// CartLookup returns the cart owned by user.
type CartLookup func(ctx context.Context, user domain.User) (Cart, error)

type Coordinator struct {
	carts     CartLookup
	session   port.Session
	customers port.CustomerRepository
	orders    port.OrderRepository
	logger    *zap.Logger

	now            func() time.Time
	deliveryFee    decimal.Decimal
	commissionRate decimal.Decimal
	carrierID      int64
	submitTimeout  time.Duration

	// user key -> struct{} while that user's PlaceOrder runs
	inFlight sync.Map
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithDeliveryFee sets the flat fee added to every order, in the cart currency.
func WithDeliveryFee(fee decimal.Decimal) Option {
	return func(c *Coordinator) {
		c.deliveryFee = fee
	}
}

func WithCommissionRate(rate decimal.Decimal) Option {
	return func(c *Coordinator) {
		c.commissionRate = rate
	}
}

func WithCarrierID(id int64) Option {
	return func(c *Coordinator) {
		c.carrierID = id
	}
}

// WithSubmitTimeout bounds the remote calls of a single PlaceOrder.
func WithSubmitTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.submitTimeout = d
		}
	}
}

func NewCoordinator(
	carts CartLookup,
	session port.Session,
	customers port.CustomerRepository,
	orders port.OrderRepository,
	logger *zap.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		carts:          carts,
		session:        session,
		customers:      customers,
		orders:         orders,
		logger:         logger.Named("checkout"),
		now:            time.Now,
		deliveryFee:    decimal.NewFromInt(defaultDeliveryAmount),
		commissionRate: defaultCommissionRate,
		carrierID:      defaultCarrierID,
		submitTimeout:  defaultSubmitTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Quote prices items in unit: subtotal plus the delivery fee, and the
// commission on that total.
func (c *Coordinator) Quote(unit currency.Unit, items []domain.LineItem) (domain.Quote, error) {
	subtotal := domain.ZeroMoney(unit)
	for i, item := range items {
		var err error
		if subtotal, err = subtotal.Add(item.Subtotal()); err != nil {
			return domain.Quote{}, fmt.Errorf("item[%d]: %w", i, err)
		}
	}

	deliveryFee := domain.NewMoney(c.deliveryFee, unit)

	total, err := subtotal.Add(deliveryFee)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("delivery fee: %w", err)
	}

	return domain.Quote{
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       total,
		Commission:  total.Rate(c.commissionRate),
	}, nil
}

// Preview quotes the session user's cart.
func (c *Coordinator) Preview(ctx context.Context) (domain.Quote, error) {
	_, cart, err := c.cartOf(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	items := cart.Items()
	if len(items) == 0 {
		return domain.Quote{}, domain.ErrEmptyCart
	}

	return c.Quote(cart.Currency(), items)
}

// PlaceOrder submits the session user's cart as one order and deducts the
// submitted items from the cart on success. On any failure the cart is left
// as it was. Only one PlaceOrder runs per user at a time; a concurrent call
// for the same user gets ErrCheckoutInProgress.
func (c *Coordinator) PlaceOrder(ctx context.Context, form domain.ShippingForm, method domain.PaymentMethod) (domain.Order, error) {
	user, cart, err := c.cartOf(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	key := user.Key()
	if _, busy := c.inFlight.LoadOrStore(key, struct{}{}); busy {
		return domain.Order{}, ErrCheckoutInProgress
	}
	defer c.inFlight.Delete(key)

	items := cart.Items()
	if len(items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return domain.Order{}, err
	}
	if method != domain.PaymentMethodCashOnDelivery {
		return domain.Order{}, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}

	quote, err := c.Quote(cart.Currency(), items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("c.Quote: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	customer, err := c.customers.GetByEmail(ctx, user.Email)
	if err != nil {
		return domain.Order{}, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	now := c.now().UTC()

	order, err := c.orders.CreateOrder(ctx, domain.Order{
		CustomerID:    customer.ID,
		OrderDate:     now,
		ShipDate:      now.Add(shipAfter),
		Total:         quote.Total,
		Commission:    quote.Commission,
		CarrierID:     c.carrierID,
		Status:        domain.OrderStatusPending,
		PaymentMethod: method,
		Shipping:      form,
		Items:         snapshotItems(items),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	cart.Deduct(items)

	c.logger.Info("order placed",
		zap.Stringer("orderID", order.ID),
		zap.Stringer("customerID", customer.ID),
		zap.Stringer("total", order.Total),
		zap.Int("items", len(order.Items)),
	)

	return order, nil
}

func (c *Coordinator) cartOf(ctx context.Context) (domain.User, Cart, error) {
	user, err := c.session.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("session.CurrentUser: %w", err)
	}

	cart, err := c.carts(ctx, user)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("carts: %w", err)
	}

	return user, cart, nil
}

func snapshotItems(items []domain.LineItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	return out
}
