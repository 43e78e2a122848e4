package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteItems = errors.New("invalid quote items")
)

// IQuoteUseCase assembles engine-produced line items into a persisted quote
// and drives its approval lifecycle.

type IQuoteUseCase interface {
	AssembleQuote(ctx context.Context, customerID, machineID string, items []entities.LineItem) (entities.Quote, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) AssembleQuote(ctx context.Context, customerID, machineID string, items []entities.LineItem) (entities.Quote, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return entities.Quote{}, ErrInvalidMachineID
	}
	if len(items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteItems
	}

	// Line totals are rebuilt through the constructor; a quote never stores an
	// item whose total drifted from quantity x price.
	normalized := make([]entities.LineItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		if strings.TrimSpace(item.SKU) == "" {
			return entities.Quote{}, ErrInvalidQuoteItems
		}
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return entities.Quote{}, ErrInvalidQuoteItems
		}
		if item.UnitPrice.IsNegative() {
			return entities.Quote{}, ErrInvalidQuoteItems
		}
		rebuilt := entities.NewLineItem(item.SKU, item.Description, item.Quantity, item.UnitPrice)
		normalized = append(normalized, rebuilt)
		total = total.Add(rebuilt.LineTotal)
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		CustomerID: strings.TrimSpace(customerID),
		MachineID:  machineID,
		Items:      normalized,
		Total:      total,
		Status:     entities.QuoteStatusPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRejeitado)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelado)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
