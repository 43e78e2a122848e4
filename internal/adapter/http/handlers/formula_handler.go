package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "insumos_xpto/internal/adapter/http/dto/request"
	response "insumos_xpto/internal/adapter/http/dto/response"
	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/usecase"
	"insumos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFormulaPayload = pkg.NewDomainErrorSimple("INVALID_FORMULA_INPUT", "Invalid formula payload", http.StatusBadRequest)

// FormulaHandler handles the formula administration endpoints.

type FormulaHandler struct {
	usecase usecase.IFormulaAdminUseCase
}

func NewFormulaHandler(uc usecase.IFormulaAdminUseCase) *FormulaHandler {
	return &FormulaHandler{usecase: uc}
}

func (h *FormulaHandler) CreateFormula(c *gin.Context) {
	var payload request.FormulaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToHTTPError())
		return
	}

	log.Printf("[formula][handler] create start product_id=%s machine_id=%s", payload.ProductID, payload.MachineID)
	created, err := h.usecase.CreateFormula(c.Request.Context(), toFormulaInput(payload))
	if err != nil {
		log.Printf("[formula][handler] create failed err=%v", err)
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[formula][handler] create success formula_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromFormula(created))
}

func (h *FormulaHandler) UpdateFormula(c *gin.Context) {
	id := c.Param("id")

	var payload request.FormulaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateFormula(c.Request.Context(), id, toFormulaInput(payload))
	if err != nil {
		log.Printf("[formula][handler] update failed formula_id=%s err=%v", id, err)
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(updated))
}

func (h *FormulaHandler) ActivateFormula(c *gin.Context) {
	h.patchActive(c, h.usecase.ActivateFormula)
}

func (h *FormulaHandler) DeactivateFormula(c *gin.Context) {
	h.patchActive(c, h.usecase.DeactivateFormula)
}

func (h *FormulaHandler) patchActive(c *gin.Context, patch func(ctx context.Context, id string) (entities.Formula, error)) {
	id := c.Param("id")

	updated, err := patch(c.Request.Context(), id)
	if err != nil {
		log.Printf("[formula][handler] patch-active failed formula_id=%s err=%v", id, err)
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(updated))
}

func (h *FormulaHandler) GetFormula(c *gin.Context) {
	id := c.Param("id")

	f, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(f))
}

func toFormulaInput(payload request.FormulaRequest) usecase.FormulaInput {
	schema := make([]entities.VariableDeclaration, 0, len(payload.InputSchema))
	for _, decl := range payload.InputSchema {
		schema = append(schema, entities.VariableDeclaration{
			Name:     decl.Name,
			Type:     entities.VariableType(decl.Type),
			Required: decl.Required,
			Min:      decl.Min,
			Max:      decl.Max,
		})
	}

	return usecase.FormulaInput{
		ProductID:   payload.ProductID,
		MachineID:   payload.MachineID,
		Expression:  payload.Expression,
		InputSchema: schema,
		ResultUnit:  payload.ResultUnit,
		Priority:    payload.Priority,
		Active:      payload.ResolveActive(),
		ResultMin:   payload.ResultMin,
		ResultMax:   payload.ResultMax,
	}
}

func mapFormulaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormulaID), errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidMachineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFormulaExpression), errors.Is(err, usecase.ErrInvalidFormulaSchema), errors.Is(err, usecase.ErrInvalidFormulaBounds):
		return pkg.NewDomainErrorSimple("INVALID_FORMULA_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormulaNotFound):
		return pkg.NewDomainErrorSimple("FORMULA_NOT_FOUND", "Formula not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
