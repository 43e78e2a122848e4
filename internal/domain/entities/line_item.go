package entities

import "github.com/shopspring/decimal"

// LineItem is one priced quantity of a SKU inside a quote.
//
// LineTotal is always Quantity x UnitPrice at construction time; callers never
// patch an item in place, they build a new one.
type LineItem struct {
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// NewLineItem builds a line item with its total derived from quantity and price.
func NewLineItem(sku, description string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		SKU:         sku,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   quantity.Mul(unitPrice),
	}
}
