package request

// VariableDeclarationRequest mirrors one input-schema entry of a formula.
type VariableDeclarationRequest struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

// FormulaRequest is the administration payload for creating or updating a
// formula.
type FormulaRequest struct {
	ProductID   string                       `json:"product_id" binding:"required"`
	MachineID   string                       `json:"machine_id" binding:"required"`
	Expression  string                       `json:"expression" binding:"required"`
	InputSchema []VariableDeclarationRequest `json:"input_schema" binding:"required"`
	ResultUnit  string                       `json:"result_unit"`
	Priority    int                          `json:"priority"`
	Active      *bool                        `json:"active"`
	ResultMin   *float64                     `json:"result_min"`
	ResultMax   *float64                     `json:"result_max"`
}

// ResolveActive defaults omitted active to true: a newly registered formula is
// usable unless the administrator says otherwise.
func (r FormulaRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
