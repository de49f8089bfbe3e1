// Package httpapi exposes the storefront over HTTP with gin.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error)
	Product(ctx context.Context, productID uuid.UUID) (domain.Product, error)
}

// CartService operates on the cart of the session user.
type CartService interface {
	Snapshot(ctx context.Context) ([]domain.LineItem, domain.Money, error)
	Add(ctx context.Context, productID uuid.UUID, quantity int) error
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, productID uuid.UUID) error
	Clear(ctx context.Context) error
}

type CheckoutService interface {
	Preview(ctx context.Context) (domain.Quote, error)
	PlaceOrder(ctx context.Context, form domain.ShippingForm, method domain.PaymentMethod) (domain.Order, error)
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Cancel(ctx context.Context, orderIDs []uuid.UUID) ([]uuid.UUID, error)
}

type ProfileService interface {
	Get(ctx context.Context) (domain.Customer, error)
	UpdatePersonal(ctx context.Context, details domain.PersonalDetails) (domain.Customer, error)
	UpdateShipping(ctx context.Context, details domain.ShippingDetails) (domain.Customer, error)
}

type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
	Orders   OrderService
	Profile  ProfileService

	// Ready reports whether backing stores are reachable. Nil means always ready.
	Ready func(ctx context.Context) error
}

type Options struct {
	Release        bool
	AllowedOrigins []string
}

func NewRouter(deps Deps, logger *zap.Logger, opts Options) *gin.Engine {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	logger = logger.Named("http")
	h := &handler{deps: deps, logger: logger}

	r := gin.New()
	r.Use(recovery(logger), requestLogger(logger))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(opts.AllowedOrigins))
	}

	r.GET("/health", h.health)

	r.GET("/categories", h.listCategories)
	r.GET("/categories/:id/products", h.listProducts)
	r.GET("/products/:id", h.getProduct)

	cart := r.Group("/cart", bearerToken())
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/items", h.addCartItem)
	cart.PATCH("/items/:productId", h.setCartItemQuantity)
	cart.DELETE("/items/:productId", h.removeCartItem)

	authed := r.Group("/", bearerToken())
	authed.GET("/checkout/quote", h.quote)
	authed.POST("/checkout", h.placeOrder)
	authed.GET("/orders", h.listOrders)
	authed.POST("/orders/cancel", h.cancelOrders)
	authed.GET("/profile/personal", h.getProfile)
	authed.PUT("/profile/personal", h.updatePersonal)
	authed.GET("/profile/shipping", h.getProfile)
	authed.PUT("/profile/shipping", h.updateShipping)

	return r
}
