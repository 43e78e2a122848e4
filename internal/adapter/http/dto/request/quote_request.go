package request

import (
	"strings"

	"insumos_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuoteLineItemRequest is one line item of a quote-assembly payload.
type QuoteLineItemRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

// QuoteRequest is the payload for POST /quotes.
type QuoteRequest struct {
	CustomerID string                 `json:"customer_id"`
	MachineID  string                 `json:"machine_id" binding:"required"`
	Items      []QuoteLineItemRequest `json:"items" binding:"required"`
}

// ToLineItems converts the payload into domain line items; totals are derived
// by the constructor, never taken from the caller.
func (r QuoteRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.NewLineItem(
			item.SKU,
			item.Description,
			decimal.NewFromFloat(item.Quantity),
			decimal.NewFromFloat(item.UnitPrice),
		))
	}
	return items
}

// QuoteActionRequest is the payload for the status-transition endpoints.
type QuoteActionRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

func (r QuoteActionRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}

// LegacyQuoteRequest is the payload for POST /quotes/legacy, the built-in
// catalog path used when no formula is registered.
type LegacyQuoteRequest struct {
	MachineID        string  `json:"machine_id" binding:"required"`
	AreaSquareMeters float64 `json:"area_m2" binding:"required"`
	QualityGrade     int     `json:"quality_grade" binding:"required"`
}
