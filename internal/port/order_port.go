package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	// CancelOrders moves the customer's pending orders among orderIDs to CANCELED
	// and returns the ids that changed.
	CancelOrders(ctx context.Context, customerID uuid.UUID, orderIDs []uuid.UUID) ([]uuid.UUID, error)
}
