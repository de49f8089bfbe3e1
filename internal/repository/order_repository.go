package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil,
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.CustomerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("customerID is empty")
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items")
	}
	if order.Commission.Currency != order.Total.Currency {
		return domain.Order{}, fmt.Errorf("commission currency[%s] differs from total currency[%s]", order.Commission.Currency, order.Total.Currency)
	}
	for i, item := range order.Items {
		if item.UnitPrice.Currency != order.Total.Currency {
			return domain.Order{}, fmt.Errorf("item[%d] currency[%s] differs from total currency[%s]", i, item.UnitPrice.Currency, order.Total.Currency)
		}
		if item.Quantity < 1 || item.Quantity > math.MaxInt32 {
			return domain.Order{}, fmt.Errorf("item[%d] quantity[%d] is out of range", i, item.Quantity)
		}
	}

	return inTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		orderID, err := q.CreateOrder(ctx, db.CreateOrderParams{
			CustomerID:       order.CustomerID,
			OrderDate:        order.OrderDate,
			ShipDate:         order.ShipDate,
			TotalAmount:      order.Total.Amount,
			CommissionAmount: order.Commission.Amount,
			Currency:         order.Total.Currency.String(),
			CarrierID:        order.CarrierID,
			Status:           string(order.Status),
			PaymentMethod:    string(order.PaymentMethod),
			ShippingName:     order.Shipping.Name,
			ShippingPhone:    order.Shipping.Phone,
			ShippingAddress:  order.Shipping.Address,
			ShippingCity:     order.Shipping.City,
			ShippingPincode:  order.Shipping.Pincode,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for i, item := range order.Items {
			err := q.AddOrderItem(ctx, db.AddOrderItemParams{
				OrderID:     orderID,
				ProductID:   item.ProductID,
				ProductName: item.Name,
				UnitPrice:   item.UnitPrice.Amount,
				Quantity:    int32(item.Quantity),
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.AddOrderItem[%d]: %w", i, err)
			}
		}

		created := order
		created.ID = orderID
		created.Items = append([]domain.OrderItem(nil), order.Items...)

		return created, nil
	})
}

func (r *orderRepository) ListOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customerID is empty")
	}

	rows, err := r.q.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByCustomer: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Order{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.OrderID)
	}

	itemRows, err := r.q.ListOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrderItems: %w", err)
	}

	return mapOrderRowsToDomain(rows, itemRows)
}

func (r *orderRepository) CancelOrders(ctx context.Context, customerID uuid.UUID, orderIDs []uuid.UUID) ([]uuid.UUID, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customerID is empty")
	}
	if len(orderIDs) == 0 {
		return nil, fmt.Errorf("orderIDs is empty")
	}

	canceled, err := r.q.CancelOrders(ctx, db.CancelOrdersParams{
		CustomerID: customerID,
		OrderIds:   orderIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("q.CancelOrders: %w", err)
	}

	return canceled, nil
}

func mapOrderRowsToDomain(rows []db.Order, itemRows []db.OrderItem) ([]domain.Order, error) {
	itemsByOrder := make(map[uuid.UUID][]db.OrderItem, len(rows))
	for _, item := range itemRows {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderRowToDomain(row, itemsByOrder[row.OrderID])
		if err != nil {
			return nil, fmt.Errorf("mapOrderRowToDomain[%s]: %w", row.OrderID, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func mapOrderRowToDomain(row db.Order, itemRows []db.OrderItem) (domain.Order, error) {
	unit, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	items := make([]domain.OrderItem, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			UnitPrice: domain.NewMoney(item.UnitPrice, unit),
			Quantity:  int(item.Quantity),
		})
	}

	return domain.Order{
		ID:            row.OrderID,
		CustomerID:    row.CustomerID,
		OrderDate:     row.OrderDate,
		ShipDate:      row.ShipDate,
		Total:         domain.NewMoney(row.TotalAmount, unit),
		Commission:    domain.NewMoney(row.CommissionAmount, unit),
		CarrierID:     row.CarrierID,
		Status:        domain.OrderStatus(row.Status),
		PaymentMethod: domain.PaymentMethod(row.PaymentMethod),
		Shipping: domain.ShippingForm{
			Name:    row.ShippingName,
			Phone:   row.ShippingPhone,
			Address: row.ShippingAddress,
			City:    row.ShippingCity,
			Pincode: row.ShippingPincode,
		},
		Items: items,
	}, nil
}
