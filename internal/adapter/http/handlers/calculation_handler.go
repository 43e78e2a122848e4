package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "insumos_xpto/internal/adapter/http/dto/request"
	response "insumos_xpto/internal/adapter/http/dto/response"
	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/domain/expression"
	"insumos_xpto/internal/usecase"
	"insumos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalculationPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", "Invalid calculation payload", http.StatusBadRequest)

// CalculationHandler exposes the quantity calculation engine over HTTP.

type CalculationHandler struct {
	usecase usecase.ICalculationUseCase
}

func NewCalculationHandler(uc usecase.ICalculationUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// Calculate runs a formula calculation, either directly by formula_id or by
// resolving the best active formula for (product_id, machine_id).
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var payload request.CalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}

	switch {
	case payload.HasFormulaID():
		formulaID := payload.ResolveFormulaID()
		log.Printf("[calc][handler] calculate start formula_id=%s", formulaID)
		result, err := h.usecase.CalculateByFormulaID(c.Request.Context(), formulaID, payload.Variables)
		h.respond(c, result, err)
	case payload.HasPair():
		productID, machineID := payload.ResolvePair()
		log.Printf("[calc][handler] calculate start product_id=%s machine_id=%s", productID, machineID)
		result, err := h.usecase.CalculateForPair(c.Request.Context(), productID, machineID, payload.Variables)
		h.respond(c, result, err)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Either formula_id or product_id+machine_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *CalculationHandler) respond(c *gin.Context, result entities.CalculationResult, err error) {
	if err != nil {
		log.Printf("[calc][handler] calculate failed err=%v", err)
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[calc][handler] calculate success formula_id=%s result=%v %s", result.FormulaID, result.Result, result.ResultUnit)
	c.JSON(http.StatusOK, response.FromCalculationResult(result))
}

// ResolveFormula returns the best active formula for a (product, machine)
// pair, or every candidate when all=true.
func (h *CalculationHandler) ResolveFormula(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("product_id"))
	machineID := strings.TrimSpace(c.Query("machine_id"))
	listAll := c.Query("all") == "true"
	log.Printf("[calc][handler] resolve start product_id=%s machine_id=%s all=%t", productID, machineID, listAll)

	if listAll {
		formulas, err := h.usecase.ResolveAll(c.Request.Context(), productID, machineID)
		if err != nil {
			appErr := mapCalculationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromFormulas(formulas))
		return
	}

	best, err := h.usecase.ResolveBest(c.Request.Context(), productID, machineID)
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFormula(best))
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormulaID), errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidMachineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormulaNotFound):
		return pkg.NewDomainErrorSimple("FORMULA_NOT_FOUND", "No formula registered for this accessory and machine", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormulaInactive):
		return pkg.NewDomainErrorSimple("FORMULA_INACTIVE", "Formula is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCalculationInput):
		// The message carries the offending variables and bounds.
		return pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResultOutOfRange):
		return pkg.NewDomainErrorSimple("RESULT_OUT_OF_RANGE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrResultNotFinite),
		errors.Is(err, expression.ErrInvalidExpression),
		errors.Is(err, expression.ErrUnknownVariable),
		errors.Is(err, expression.ErrDivisionByZero):
		// A stored formula is broken; this needs an administrator, not a retry.
		return pkg.NewDomainErrorSimple("FORMULA_EVALUATION_FAILED", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
