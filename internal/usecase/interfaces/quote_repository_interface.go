package interfaces

import (
	"context"

	"insumos_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quoting service must be able to:
//   - persist a quote assembled from engine-produced line items
//   - update quote status by ID (approve/reject/cancel)

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
