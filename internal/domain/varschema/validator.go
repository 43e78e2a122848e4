// Package varschema validates caller-supplied variable values against a
// formula's declared input schema.
package varschema

import (
	"fmt"
	"math"

	"insumos_xpto/internal/domain/entities"
)

// IssueKind discriminates validation failures.

type IssueKind string

const (
	IssueMissingVariable IssueKind = "missing_variable"
	IssueTypeMismatch    IssueKind = "type_mismatch"
	IssueOutOfRange      IssueKind = "out_of_range"
)

// Issue is one validation failure for one declared variable.
//
// Min/Max are only set for out-of-range issues, and only when the schema
// declares the corresponding bound.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Name   string    `json:"name"`
	Min    *float64  `json:"min,omitempty"`
	Max    *float64  `json:"max,omitempty"`
	Actual float64   `json:"actual,omitempty"`
}

func (i Issue) Error() string {
	switch i.Kind {
	case IssueMissingVariable:
		return fmt.Sprintf("variable %q is required", i.Name)
	case IssueTypeMismatch:
		return fmt.Sprintf("variable %q must be an integer, got %v", i.Name, i.Actual)
	default:
		return fmt.Sprintf("variable %q out of range: %v not in [%s, %s]", i.Name, i.Actual, boundText(i.Min), boundText(i.Max))
	}
}

func boundText(b *float64) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *b)
}

// Validate checks values against the declared schema and returns every issue
// found, in schema order. Values present but not declared are ignored; the
// expression evaluator resolves by name and extra values are harmless.
//
// Pure function: neither argument is mutated.
func Validate(schema []entities.VariableDeclaration, values map[string]float64) []Issue {
	var issues []Issue
	for _, decl := range schema {
		v, present := values[decl.Name]
		if !present {
			if decl.Required {
				issues = append(issues, Issue{Kind: IssueMissingVariable, Name: decl.Name})
			}
			continue
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			issues = append(issues, Issue{Kind: IssueTypeMismatch, Name: decl.Name, Actual: v})
			continue
		}
		if decl.Type == entities.VariableTypeInteger && v != math.Trunc(v) {
			issues = append(issues, Issue{Kind: IssueTypeMismatch, Name: decl.Name, Actual: v})
			continue
		}

		if decl.Min != nil && v < *decl.Min {
			issues = append(issues, Issue{Kind: IssueOutOfRange, Name: decl.Name, Min: decl.Min, Max: decl.Max, Actual: v})
			continue
		}
		if decl.Max != nil && v > *decl.Max {
			issues = append(issues, Issue{Kind: IssueOutOfRange, Name: decl.Name, Min: decl.Min, Max: decl.Max, Actual: v})
		}
	}
	return issues
}
