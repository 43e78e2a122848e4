package entities

import "time"

// VariableType constrains the numeric kind accepted for a declared input variable.

type VariableType string

const (
	VariableTypeInteger VariableType = "integer"
	VariableTypeNumber  VariableType = "number"
)

// VariableDeclaration describes one named input a formula expects.
//
// A nil Min/Max means the bound is not enforced.
type VariableDeclaration struct {
	Name     string       `json:"name"`
	Type     VariableType `json:"type"`
	Required bool         `json:"required"`
	Min      *float64     `json:"min,omitempty"`
	Max      *float64     `json:"max,omitempty"`
}

// Formula is the stored calculation rule for one (product, machine) pair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_machine-index): product_machine = "<product_id>#<machine_id>"
//
// The calculation engine consumes formulas read-only; creation and updates go
// through the administration use case. Expression is restricted to variable
// names, numeric literals, + - * / ( ) and ceiling(...); it is validated on
// write and parsed again on every evaluation.
type Formula struct {
	ID          string                `json:"id"`
	ProductID   string                `json:"product_id"`
	MachineID   string                `json:"machine_id"`
	Expression  string                `json:"expression"`
	InputSchema []VariableDeclaration `json:"input_schema"`
	ResultUnit  string                `json:"result_unit"`
	Active      bool                  `json:"active"`
	Priority    int                   `json:"priority"`
	ResultMin   *float64              `json:"result_min,omitempty"`
	ResultMax   *float64              `json:"result_max,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CalculationResult is the packaged outcome of one formula evaluation.
//
// It carries no timestamp on purpose: the same (formula, variables) against an
// unchanged store must produce identical results.
type CalculationResult struct {
	FormulaID  string             `json:"formula_id"`
	Expression string             `json:"expression"`
	Result     float64            `json:"result"`
	ResultUnit string             `json:"result_unit"`
	Variables  map[string]float64 `json:"variables"`
}
