package response

import (
	"time"

	"insumos_xpto/internal/domain/entities"
)

type VariableDeclarationResponse struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
}

type FormulaResponse struct {
	ID          string                        `json:"id"`
	ProductID   string                        `json:"product_id"`
	MachineID   string                        `json:"machine_id"`
	Expression  string                        `json:"expression"`
	InputSchema []VariableDeclarationResponse `json:"input_schema"`
	ResultUnit  string                        `json:"result_unit"`
	Active      bool                          `json:"active"`
	Priority    int                           `json:"priority"`
	ResultMin   *float64                      `json:"result_min,omitempty"`
	ResultMax   *float64                      `json:"result_max,omitempty"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

func FromFormula(f entities.Formula) FormulaResponse {
	schema := make([]VariableDeclarationResponse, 0, len(f.InputSchema))
	for _, decl := range f.InputSchema {
		schema = append(schema, VariableDeclarationResponse{
			Name:     decl.Name,
			Type:     string(decl.Type),
			Required: decl.Required,
			Min:      decl.Min,
			Max:      decl.Max,
		})
	}

	return FormulaResponse{
		ID:          f.ID,
		ProductID:   f.ProductID,
		MachineID:   f.MachineID,
		Expression:  f.Expression,
		InputSchema: schema,
		ResultUnit:  f.ResultUnit,
		Active:      f.Active,
		Priority:    f.Priority,
		ResultMin:   f.ResultMin,
		ResultMax:   f.ResultMax,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromFormulas(formulas []entities.Formula) []FormulaResponse {
	out := make([]FormulaResponse, 0, len(formulas))
	for _, f := range formulas {
		out = append(out, FromFormula(f))
	}
	return out
}
