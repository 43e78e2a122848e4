package response

import "insumos_xpto/internal/domain/entities"

// CalculationResponse mirrors entities.CalculationResult for HTTP callers.
type CalculationResponse struct {
	FormulaID  string             `json:"formula_id"`
	Expression string             `json:"expression"`
	Result     float64            `json:"result"`
	ResultUnit string             `json:"result_unit"`
	Variables  map[string]float64 `json:"variables"`
}

func FromCalculationResult(r entities.CalculationResult) CalculationResponse {
	return CalculationResponse{
		FormulaID:  r.FormulaID,
		Expression: r.Expression,
		Result:     r.Result,
		ResultUnit: r.ResultUnit,
		Variables:  r.Variables,
	}
}
