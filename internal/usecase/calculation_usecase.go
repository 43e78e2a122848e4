package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/domain/expression"
	"insumos_xpto/internal/domain/varschema"
	"insumos_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrFormulaNotFound         = errors.New("formula not found")
	ErrFormulaInactive         = errors.New("formula inactive")
	ErrInvalidFormulaID        = errors.New("invalid formula id")
	ErrInvalidProductID        = errors.New("invalid product id")
	ErrInvalidMachineID        = errors.New("invalid machine id")
	ErrInvalidCalculationInput = errors.New("invalid calculation input")
	ErrResultNotFinite         = errors.New("calculation result is not finite")
	ErrResultOutOfRange        = errors.New("calculation result out of range")
)

// InvalidInputError carries the per-variable validation issues behind
// ErrInvalidCalculationInput so handlers can report the offending variables.
type InvalidInputError struct {
	Issues []varschema.Issue
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Error()
	}
	return "invalid calculation input: " + strings.Join(parts, "; ")
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidCalculationInput }

// ResultOutOfRangeError carries the violated bounds behind ErrResultOutOfRange.
// The result is rejected, never clamped.
type ResultOutOfRangeError struct {
	Min    *float64
	Max    *float64
	Actual float64
}

func (e *ResultOutOfRangeError) Error() string {
	return fmt.Sprintf("calculation result out of range: %v not in [%s, %s]", e.Actual, boundText(e.Min), boundText(e.Max))
}

func (e *ResultOutOfRangeError) Unwrap() error { return ErrResultOutOfRange }

func boundText(b *float64) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *b)
}

// ICalculationUseCase exposes the rule-driven quantity calculation engine.
//
// Operations:
//   - CalculateByFormulaID: direct calculation against a known formula.
//   - CalculateForPair: resolves the best active formula for the
//     (product, machine) pair first, then calculates.
//   - ResolveBest / ResolveAll: formula resolution for callers and audit views.
//
// Every call is a pure computation plus one repository read; no state is kept
// between invocations.

type ICalculationUseCase interface {
	CalculateByFormulaID(ctx context.Context, formulaID string, values map[string]float64) (entities.CalculationResult, error)
	CalculateForPair(ctx context.Context, productID, machineID string, values map[string]float64) (entities.CalculationResult, error)
	ResolveBest(ctx context.Context, productID, machineID string) (entities.Formula, error)
	ResolveAll(ctx context.Context, productID, machineID string) ([]entities.Formula, error)
}

type CalculationUseCase struct {
	repo interfaces.IFormulaRepository
}

var _ ICalculationUseCase = (*CalculationUseCase)(nil)

func NewCalculationUseCase(repo interfaces.IFormulaRepository) *CalculationUseCase {
	return &CalculationUseCase{repo: repo}
}

func (u *CalculationUseCase) CalculateByFormulaID(ctx context.Context, formulaID string, values map[string]float64) (entities.CalculationResult, error) {
	formulaID = strings.TrimSpace(formulaID)
	if formulaID == "" {
		return entities.CalculationResult{}, ErrInvalidFormulaID
	}

	f, err := u.repo.GetByID(ctx, formulaID)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	if f.ID == "" {
		return entities.CalculationResult{}, ErrFormulaNotFound
	}
	if !f.Active {
		return entities.CalculationResult{}, ErrFormulaInactive
	}

	return u.calculate(f, values)
}

func (u *CalculationUseCase) CalculateForPair(ctx context.Context, productID, machineID string, values map[string]float64) (entities.CalculationResult, error) {
	f, err := u.ResolveBest(ctx, productID, machineID)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	return u.calculate(f, values)
}

// ResolveBest selects the active formula with the highest priority for the
// pair; equal priorities resolve to the most recently created. ErrFormulaNotFound
// means "no automatic calculation available", not a fault.
func (u *CalculationUseCase) ResolveBest(ctx context.Context, productID, machineID string) (entities.Formula, error) {
	productID = strings.TrimSpace(productID)
	machineID = strings.TrimSpace(machineID)
	if productID == "" {
		return entities.Formula{}, ErrInvalidProductID
	}
	if machineID == "" {
		return entities.Formula{}, ErrInvalidMachineID
	}

	candidates, err := u.repo.FindActiveByProductAndMachine(ctx, productID, machineID)
	if err != nil {
		return entities.Formula{}, err
	}
	if len(candidates) == 0 {
		return entities.Formula{}, ErrFormulaNotFound
	}

	sortFormulas(candidates)
	return candidates[0], nil
}

// ResolveAll lists every formula registered for the pair, inactive ones
// included, in resolution order. Intended for display and audit.
func (u *CalculationUseCase) ResolveAll(ctx context.Context, productID, machineID string) ([]entities.Formula, error) {
	productID = strings.TrimSpace(productID)
	machineID = strings.TrimSpace(machineID)
	if productID == "" {
		return nil, ErrInvalidProductID
	}
	if machineID == "" {
		return nil, ErrInvalidMachineID
	}

	all, err := u.repo.FindAllByProductAndMachine(ctx, productID, machineID)
	if err != nil {
		return nil, err
	}
	sortFormulas(all)
	return all, nil
}

// sortFormulas orders by priority descending, then creation time descending;
// equal timestamps fall back to the greater id so ordering stays deterministic.
func sortFormulas(formulas []entities.Formula) {
	sort.SliceStable(formulas, func(i, j int) bool {
		if formulas[i].Priority != formulas[j].Priority {
			return formulas[i].Priority > formulas[j].Priority
		}
		if !formulas[i].CreatedAt.Equal(formulas[j].CreatedAt) {
			return formulas[i].CreatedAt.After(formulas[j].CreatedAt)
		}
		return formulas[i].ID > formulas[j].ID
	})
}

func (u *CalculationUseCase) calculate(f entities.Formula, values map[string]float64) (entities.CalculationResult, error) {
	if issues := varschema.Validate(f.InputSchema, values); len(issues) > 0 {
		log.Printf("[calc][usecase] input rejected formula_id=%s issues=%d", f.ID, len(issues))
		return entities.CalculationResult{}, &InvalidInputError{Issues: issues}
	}

	raw, err := expression.Evaluate(f.Expression, values)
	if err != nil {
		log.Printf("[calc][usecase] evaluation failed formula_id=%s err=%v", f.ID, err)
		return entities.CalculationResult{}, fmt.Errorf("evaluation of formula %s failed: %w", f.ID, err)
	}

	// Schema-valid inputs can still overflow float64 (e.g. a*a with a huge
	// unbounded variable); decimal.NewFromFloat panics on NaN and ±Inf.
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		log.Printf("[calc][usecase] non-finite result formula_id=%s", f.ID)
		return entities.CalculationResult{}, fmt.Errorf("evaluation of formula %s failed: %w", f.ID, ErrResultNotFinite)
	}

	// 4 decimal places, half away from zero.
	result, _ := decimal.NewFromFloat(raw).Round(4).Float64()

	if f.ResultMin != nil && result < *f.ResultMin {
		return entities.CalculationResult{}, &ResultOutOfRangeError{Min: f.ResultMin, Max: f.ResultMax, Actual: result}
	}
	if f.ResultMax != nil && result > *f.ResultMax {
		return entities.CalculationResult{}, &ResultOutOfRangeError{Min: f.ResultMin, Max: f.ResultMax, Actual: result}
	}

	vars := make(map[string]float64, len(values))
	for k, v := range values {
		vars[k] = v
	}

	return entities.CalculationResult{
		FormulaID:  f.ID,
		Expression: f.Expression,
		Result:     result,
		ResultUnit: f.ResultUnit,
		Variables:  vars,
	}, nil
}
