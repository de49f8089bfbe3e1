package domain

import "github.com/google/uuid"

// Product is the single product shape shared by catalog, cart and checkout.
// ID is the only identifier used to match line items.
type Product struct {
	ID          uuid.UUID `json:"productId"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"productName"`
	Description string    `json:"description,omitempty"`
	Price       Money     `json:"price"`
	Stock       int       `json:"stock"`
}

type Category struct {
	ID          uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}
