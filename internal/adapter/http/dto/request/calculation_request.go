package request

import "strings"

// CalculationRequest is the payload for POST /calculations.
//
// Callers either name the formula directly (formula_id) or supply the
// (product_id, machine_id) pair and let the resolver pick the best active
// formula.
type CalculationRequest struct {
	FormulaID string             `json:"formula_id"`
	ProductID string             `json:"product_id"`
	MachineID string             `json:"machine_id"`
	Variables map[string]float64 `json:"variables" binding:"required"`
}

func (r CalculationRequest) ResolveFormulaID() string {
	return strings.TrimSpace(r.FormulaID)
}

func (r CalculationRequest) ResolvePair() (productID, machineID string) {
	return strings.TrimSpace(r.ProductID), strings.TrimSpace(r.MachineID)
}

// HasFormulaID reports whether the direct-by-id path applies.
func (r CalculationRequest) HasFormulaID() bool {
	return r.ResolveFormulaID() != ""
}

// HasPair reports whether the resolver path applies.
func (r CalculationRequest) HasPair() bool {
	productID, machineID := r.ResolvePair()
	return productID != "" && machineID != ""
}
