package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// Orders is the order history of the session customer.
type Orders struct {
	session   port.Session
	customers port.CustomerRepository
	orders    port.OrderRepository
	logger    *zap.Logger
}

func NewOrders(session port.Session, customers port.CustomerRepository, orders port.OrderRepository, logger *zap.Logger) *Orders {
	return &Orders{
		session:   session,
		customers: customers,
		orders:    orders,
		logger:    logger.Named("orders"),
	}
}

func (s *Orders) List(ctx context.Context) ([]domain.Order, error) {
	customer, err := currentCustomer(ctx, s.session, s.customers)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrders(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}

// Cancel cancels the selected pending orders owned by the session customer
// and returns the ids that were canceled. Other ids are ignored.
func (s *Orders) Cancel(ctx context.Context, orderIDs []uuid.UUID) ([]uuid.UUID, error) {
	selected := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id != uuid.Nil && !slices.Contains(selected, id) {
			selected = append(selected, id)
		}
	}
	if len(selected) == 0 {
		return nil, domain.NewValidationError("orderIds", "no orders selected")
	}

	customer, err := currentCustomer(ctx, s.session, s.customers)
	if err != nil {
		return nil, err
	}

	canceled, err := s.orders.CancelOrders(ctx, customer.ID, selected)
	if err != nil {
		return nil, fmt.Errorf("orders.CancelOrders: %w", err)
	}

	s.logger.Info("orders canceled",
		zap.Stringer("customerID", customer.ID),
		zap.Int("requested", len(selected)),
		zap.Int("canceled", len(canceled)),
	)

	return canceled, nil
}
