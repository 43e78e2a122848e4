package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of an assembled quote (orçamento).
//
// Domain notes:
//   - The quoting service is the source of truth for quote state.
//   - A quote is assembled from engine-produced line items; the total is the
//     sum of the line totals and is never mutated independently.

type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// Quote is the assembled quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Quote struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	MachineID  string          `json:"machine_id"`
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Status     QuoteStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
