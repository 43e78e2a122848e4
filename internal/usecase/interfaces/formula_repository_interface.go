package interfaces

import (
	"context"

	"insumos_xpto/internal/domain/entities"
)

// IFormulaRepository abstracts DynamoDB persistence for Formula.
//
// The calculation engine only reads (GetByID, FindActiveByProductAndMachine,
// FindAllByProductAndMachine); Create/Update/SetActive serve the formula
// administration use case. Not-found is signalled by a zero-value Formula with
// an empty ID and a nil error.

type IFormulaRepository interface {
	Create(ctx context.Context, f entities.Formula) (entities.Formula, error)
	Update(ctx context.Context, f entities.Formula) (entities.Formula, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Formula, error)
	GetByID(ctx context.Context, id string) (entities.Formula, error)
	FindActiveByProductAndMachine(ctx context.Context, productID, machineID string) ([]entities.Formula, error)
	FindAllByProductAndMachine(ctx context.Context, productID, machineID string) ([]entities.Formula, error)
}
