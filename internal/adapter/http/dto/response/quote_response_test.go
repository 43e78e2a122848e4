package response

import (
	"testing"
	"time"

	"insumos_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	item := entities.NewLineItem("END-LIT-001", "Endurecedor de superficie (litro)", decimal.NewFromInt(30), decimal.NewFromFloat(38.90))
	q := entities.Quote{
		ID:         "q-1",
		CustomerID: "c-1",
		MachineID:  "pg450",
		Items:      []entities.LineItem{item},
		Total:      item.LineTotal,
		Status:     entities.QuoteStatusPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.MachineID != "pg450" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "pendente" {
		t.Fatalf("unexpected status: %s", res.Status)
	}
	if res.Total != "1167" {
		t.Fatalf("expected total 1167, got %s", res.Total)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	if res.Items[0].Quantity != "30" || res.Items[0].UnitPrice != "38.9" || res.Items[0].LineTotal != "1167" {
		t.Fatalf("unexpected item fields: %+v", res.Items[0])
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
