package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCanceled  OrderStatus = "CANCELED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

type PaymentMethod string

const PaymentMethodCashOnDelivery PaymentMethod = "cod"

type ShippingForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Address string `json:"address" validate:"required,max=500"`
	City    string `json:"city" validate:"required,max=120"`
	Pincode string `json:"pincode" validate:"required,numeric,len=6"`
}

func (f ShippingForm) Validate() error {
	return validateStruct(f)
}

type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"productName"`
	UnitPrice Money     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

type Order struct {
	ID            uuid.UUID     `json:"orderId"`
	CustomerID    uuid.UUID     `json:"customerId"`
	OrderDate     time.Time     `json:"orderDate"`
	ShipDate      time.Time     `json:"shipDate"`
	Total         Money         `json:"total"`
	Commission    Money         `json:"commission"`
	CarrierID     int64         `json:"carrierId"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Shipping      ShippingForm  `json:"shipping"`
	Items         []OrderItem   `json:"items,omitempty"`
}

// Quote is the price breakdown shown before an order is placed.
type Quote struct {
	Items       []LineItem `json:"items"`
	Subtotal    Money      `json:"subtotal"`
	DeliveryFee Money      `json:"deliveryFee"`
	Total       Money      `json:"total"`
	Commission  Money      `json:"commission"`
}
