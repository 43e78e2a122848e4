package response

import (
	"testing"
	"time"

	"insumos_xpto/internal/domain/entities"
)

func TestFromFormula(t *testing.T) {
	now := time.Now().UTC()
	min := 0.1
	max := 1000.0
	f := entities.Formula{
		ID:         "f-1",
		ProductID:  "piso-metalico",
		MachineID:  "pg450",
		Expression: "ceiling(area/10)",
		InputSchema: []entities.VariableDeclaration{
			{Name: "area", Type: entities.VariableTypeNumber, Required: true, Min: &min, Max: &max},
		},
		ResultUnit: "unidade",
		Active:     true,
		Priority:   10,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromFormula(f)
	if res.ID != "f-1" || res.ProductID != "piso-metalico" || res.MachineID != "pg450" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Expression != "ceiling(area/10)" || res.ResultUnit != "unidade" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.InputSchema) != 1 {
		t.Fatalf("expected 1 schema entry, got %d", len(res.InputSchema))
	}
	decl := res.InputSchema[0]
	if decl.Name != "area" || decl.Type != "number" || !decl.Required {
		t.Fatalf("unexpected schema entry: %+v", decl)
	}
	if decl.Min == nil || *decl.Min != 0.1 || decl.Max == nil || *decl.Max != 1000 {
		t.Fatalf("unexpected bounds: %+v", decl)
	}
}
