package response

import (
	"time"

	"insumos_xpto/internal/domain/entities"
)

// LineItemResponse serializes monetary fields as decimal strings; float JSON
// numbers are not acceptable for prices.
type LineItemResponse struct {
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

func FromLineItem(item entities.LineItem) LineItemResponse {
	return LineItemResponse{
		SKU:         item.SKU,
		Description: item.Description,
		Quantity:    item.Quantity.String(),
		UnitPrice:   item.UnitPrice.String(),
		LineTotal:   item.LineTotal.String(),
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromLineItem(item))
	}
	return out
}

// LegacyQuoteResponse is the body of POST /quotes/legacy.
type LegacyQuoteResponse struct {
	MachineID string             `json:"machine_id"`
	Items     []LineItemResponse `json:"items"`
}

type QuoteResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id,omitempty"`
	MachineID  string             `json:"machine_id"`
	Items      []LineItemResponse `json:"items"`
	Total      string             `json:"total"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		MachineID:  q.MachineID,
		Items:      FromLineItems(q.Items),
		Total:      q.Total.String(),
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
