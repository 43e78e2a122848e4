package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insumos_xpto/internal/domain/entities"
	mock_interfaces "insumos_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInput() FormulaInput {
	return FormulaInput{
		ProductID:  "prod-1",
		MachineID:  "pg450",
		Expression: "ceiling(area/10)",
		InputSchema: []entities.VariableDeclaration{
			{Name: "area", Type: entities.VariableTypeNumber, Required: true, Min: f(0.1), Max: f(1000)},
		},
		ResultUnit: "unidade",
		Priority:   1,
		Active:     true,
		ResultMin:  f(1),
		ResultMax:  f(100),
	}
}

func TestFormulaAdminUseCase_CreateFormula(t *testing.T) {
	t.Run("missing product id", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.ProductID = "  "
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("missing machine id", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.MachineID = ""
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidMachineID) {
			t.Fatalf("expected ErrInvalidMachineID, got %v", err)
		}
	})

	t.Run("empty schema", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.InputSchema = nil
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaSchema) {
			t.Fatalf("expected ErrInvalidFormulaSchema, got %v", err)
		}
	})

	t.Run("duplicate variable", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.InputSchema = append(in.InputSchema, in.InputSchema[0])
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaSchema) {
			t.Fatalf("expected ErrInvalidFormulaSchema, got %v", err)
		}
	})

	t.Run("unknown variable type", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.InputSchema[0].Type = "texto"
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaSchema) {
			t.Fatalf("expected ErrInvalidFormulaSchema, got %v", err)
		}
	})

	t.Run("variable min above max", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.InputSchema[0].Min = f(10)
		in.InputSchema[0].Max = f(1)
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaSchema) {
			t.Fatalf("expected ErrInvalidFormulaSchema, got %v", err)
		}
	})

	t.Run("unparseable expression", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.Expression = "area +* 2"
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaExpression) {
			t.Fatalf("expected ErrInvalidFormulaExpression, got %v", err)
		}
	})

	t.Run("expression without variables", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.Expression = "2*21"
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaExpression) {
			t.Fatalf("expected ErrInvalidFormulaExpression, got %v", err)
		}
	})

	t.Run("expression references undeclared variable", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.Expression = "area*fator"
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaExpression) {
			t.Fatalf("expected ErrInvalidFormulaExpression, got %v", err)
		}
	})

	t.Run("result min above max", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		in := validInput()
		in.ResultMin = f(100)
		in.ResultMax = f(1)
		_, err := uc.CreateFormula(context.Background(), in)
		if !errors.Is(err, ErrInvalidFormulaBounds) {
			t.Fatalf("expected ErrInvalidFormulaBounds, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaAdminUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, created entities.Formula) (entities.Formula, error) {
				if created.ID == "" {
					t.Fatalf("expected generated id")
				}
				if created.ProductID != "prod-1" || created.MachineID != "pg450" || !created.Active {
					t.Fatalf("unexpected formula: %+v", created)
				}
				if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
					t.Fatalf("expected matching timestamps, got %+v", created)
				}
				return created, nil
			},
		)

		created, err := uc.CreateFormula(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected id on returned formula")
		}
	})
}

func TestFormulaAdminUseCase_UpdateFormula(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		_, err := uc.UpdateFormula(context.Background(), "  ", validInput())
		if !errors.Is(err, ErrInvalidFormulaID) {
			t.Fatalf("expected ErrInvalidFormulaID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaAdminUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Formula{}, nil)

		_, err := uc.UpdateFormula(context.Background(), "form-1", validInput())
		if !errors.Is(err, ErrFormulaNotFound) {
			t.Fatalf("expected ErrFormulaNotFound, got %v", err)
		}
	})

	t.Run("keeps id and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaAdminUseCase(repo)

		createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Formula{ID: "form-1", CreatedAt: createdAt}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, updated entities.Formula) (entities.Formula, error) {
				if updated.ID != "form-1" || !updated.CreatedAt.Equal(createdAt) {
					t.Fatalf("expected preserved identity, got %+v", updated)
				}
				if !updated.UpdatedAt.After(createdAt) {
					t.Fatalf("expected refreshed UpdatedAt, got %+v", updated)
				}
				return updated, nil
			},
		)

		if _, err := uc.UpdateFormula(context.Background(), "form-1", validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormulaAdminUseCase_ActivationFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *FormulaAdminUseCase, ctx context.Context, id string) (entities.Formula, error)
		active bool
	}{
		{name: "activate", call: (*FormulaAdminUseCase).ActivateFormula, active: true},
		{name: "deactivate", call: (*FormulaAdminUseCase).DeactivateFormula, active: false},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewFormulaAdminUseCase(nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidFormulaID) {
				t.Fatalf("expected ErrInvalidFormulaID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
			uc := NewFormulaAdminUseCase(repo)
			repo.EXPECT().SetActive(gomock.Any(), "form-1", tc.active).Return(entities.Formula{}, nil)

			_, err := tc.call(uc, context.Background(), "form-1")
			if !errors.Is(err, ErrFormulaNotFound) {
				t.Fatalf("expected ErrFormulaNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
			uc := NewFormulaAdminUseCase(repo)
			expected := entities.Formula{ID: "form-1", Active: tc.active}
			repo.EXPECT().SetActive(gomock.Any(), "form-1", tc.active).Return(expected, nil)

			got, err := tc.call(uc, context.Background(), "form-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Active != tc.active {
				t.Fatalf("expected active=%t, got %+v", tc.active, got)
			}
		})
	}
}

func TestFormulaAdminUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewFormulaAdminUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidFormulaID) {
			t.Fatalf("expected ErrInvalidFormulaID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaAdminUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Formula{}, nil)

		_, err := uc.GetByID(context.Background(), "form-1")
		if !errors.Is(err, ErrFormulaNotFound) {
			t.Fatalf("expected ErrFormulaNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaAdminUseCase(repo)
		expected := entities.Formula{ID: "form-1", ProductID: "prod-1"}
		repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(expected, nil)

		got, err := uc.GetByID(context.Background(), "form-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "form-1" {
			t.Fatalf("unexpected formula: %+v", got)
		}
	})
}
