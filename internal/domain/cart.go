package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (li LineItem) Subtotal() Money {
	return li.Product.Price.Times(li.Quantity)
}

// CartTotal sums price x quantity over items. Items are expected to be priced in unit.
func CartTotal(items []LineItem, unit currency.Unit) Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal().Amount)
	}

	return Money{Amount: total, Currency: unit}
}
