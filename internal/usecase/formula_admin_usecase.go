package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/domain/expression"
	"insumos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidFormulaExpression = errors.New("invalid formula expression")
	ErrInvalidFormulaSchema     = errors.New("invalid formula schema")
	ErrInvalidFormulaBounds     = errors.New("invalid formula result bounds")
)

// FormulaInput is the command payload for creating or updating a formula.
type FormulaInput struct {
	ProductID   string
	MachineID   string
	Expression  string
	InputSchema []entities.VariableDeclaration
	ResultUnit  string
	Priority    int
	Active      bool
	ResultMin   *float64
	ResultMax   *float64
}

// IFormulaAdminUseCase manages the stored formula registry the calculation
// engine reads from. Every write statically validates the expression under the
// closed grammar so a formula that parses today cannot stop parsing later.

type IFormulaAdminUseCase interface {
	CreateFormula(ctx context.Context, in FormulaInput) (entities.Formula, error)
	UpdateFormula(ctx context.Context, id string, in FormulaInput) (entities.Formula, error)
	ActivateFormula(ctx context.Context, id string) (entities.Formula, error)
	DeactivateFormula(ctx context.Context, id string) (entities.Formula, error)
	GetByID(ctx context.Context, id string) (entities.Formula, error)
}

type FormulaAdminUseCase struct {
	repo interfaces.IFormulaRepository
}

var _ IFormulaAdminUseCase = (*FormulaAdminUseCase)(nil)

func NewFormulaAdminUseCase(repo interfaces.IFormulaRepository) *FormulaAdminUseCase {
	return &FormulaAdminUseCase{repo: repo}
}

func (u *FormulaAdminUseCase) CreateFormula(ctx context.Context, in FormulaInput) (entities.Formula, error) {
	f, err := buildFormula(in)
	if err != nil {
		return entities.Formula{}, err
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now

	log.Printf("[formula][usecase] create product_id=%s machine_id=%s priority=%d", f.ProductID, f.MachineID, f.Priority)
	return u.repo.Create(ctx, f)
}

func (u *FormulaAdminUseCase) UpdateFormula(ctx context.Context, id string, in FormulaInput) (entities.Formula, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Formula{}, ErrInvalidFormulaID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Formula{}, err
	}
	if existing.ID == "" {
		return entities.Formula{}, ErrFormulaNotFound
	}

	f, err := buildFormula(in)
	if err != nil {
		return entities.Formula{}, err
	}
	f.ID = existing.ID
	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()

	log.Printf("[formula][usecase] update formula_id=%s priority=%d active=%t", f.ID, f.Priority, f.Active)
	return u.repo.Update(ctx, f)
}

func (u *FormulaAdminUseCase) ActivateFormula(ctx context.Context, id string) (entities.Formula, error) {
	return u.setActive(ctx, id, true)
}

func (u *FormulaAdminUseCase) DeactivateFormula(ctx context.Context, id string) (entities.Formula, error) {
	return u.setActive(ctx, id, false)
}

func (u *FormulaAdminUseCase) setActive(ctx context.Context, id string, active bool) (entities.Formula, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Formula{}, ErrInvalidFormulaID
	}

	updated, err := u.repo.SetActive(ctx, id, active)
	if err != nil {
		return entities.Formula{}, err
	}
	if updated.ID == "" {
		return entities.Formula{}, ErrFormulaNotFound
	}
	return updated, nil
}

func (u *FormulaAdminUseCase) GetByID(ctx context.Context, id string) (entities.Formula, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Formula{}, ErrInvalidFormulaID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Formula{}, err
	}
	if f.ID == "" {
		return entities.Formula{}, ErrFormulaNotFound
	}
	return f, nil
}

// buildFormula validates the command and assembles the entity, without id or
// timestamps.
func buildFormula(in FormulaInput) (entities.Formula, error) {
	productID := strings.TrimSpace(in.ProductID)
	machineID := strings.TrimSpace(in.MachineID)
	if productID == "" {
		return entities.Formula{}, ErrInvalidProductID
	}
	if machineID == "" {
		return entities.Formula{}, ErrInvalidMachineID
	}

	declared, err := validateSchema(in.InputSchema)
	if err != nil {
		return entities.Formula{}, err
	}

	expr := strings.TrimSpace(in.Expression)
	referenced, err := expression.Variables(expr)
	if err != nil {
		return entities.Formula{}, fmt.Errorf("%w: %v", ErrInvalidFormulaExpression, err)
	}
	if len(referenced) == 0 {
		return entities.Formula{}, fmt.Errorf("%w: expression must reference at least one input variable", ErrInvalidFormulaExpression)
	}
	for _, name := range referenced {
		if !declared[name] {
			return entities.Formula{}, fmt.Errorf("%w: expression references undeclared variable %q", ErrInvalidFormulaExpression, name)
		}
	}

	if in.ResultMin != nil && in.ResultMax != nil && *in.ResultMin > *in.ResultMax {
		return entities.Formula{}, fmt.Errorf("%w: result_min %v greater than result_max %v", ErrInvalidFormulaBounds, *in.ResultMin, *in.ResultMax)
	}

	return entities.Formula{
		ProductID:   productID,
		MachineID:   machineID,
		Expression:  expr,
		InputSchema: in.InputSchema,
		ResultUnit:  strings.TrimSpace(in.ResultUnit),
		Active:      in.Active,
		Priority:    in.Priority,
		ResultMin:   in.ResultMin,
		ResultMax:   in.ResultMax,
	}, nil
}

func validateSchema(schema []entities.VariableDeclaration) (map[string]bool, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: at least one variable declaration is required", ErrInvalidFormulaSchema)
	}

	declared := make(map[string]bool, len(schema))
	for _, decl := range schema {
		name := strings.TrimSpace(decl.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: variable name cannot be empty", ErrInvalidFormulaSchema)
		}
		if name != decl.Name {
			return nil, fmt.Errorf("%w: variable name %q has surrounding whitespace", ErrInvalidFormulaSchema, decl.Name)
		}
		if declared[name] {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrInvalidFormulaSchema, name)
		}
		if decl.Type != entities.VariableTypeInteger && decl.Type != entities.VariableTypeNumber {
			return nil, fmt.Errorf("%w: variable %q has unknown type %q", ErrInvalidFormulaSchema, name, decl.Type)
		}
		if decl.Min != nil && decl.Max != nil && *decl.Min > *decl.Max {
			return nil, fmt.Errorf("%w: variable %q min %v greater than max %v", ErrInvalidFormulaSchema, name, *decl.Min, *decl.Max)
		}
		declared[name] = true
	}
	return declared, nil
}
