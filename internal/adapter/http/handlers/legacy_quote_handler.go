package handlers

import (
	"errors"
	"log"
	"net/http"

	request "insumos_xpto/internal/adapter/http/dto/request"
	response "insumos_xpto/internal/adapter/http/dto/response"
	"insumos_xpto/internal/usecase"
	"insumos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// LegacyQuoteHandler exposes the built-in catalog calculation, used for
// machines whose consumables have no registered formula.

type LegacyQuoteHandler struct {
	usecase usecase.ILegacyQuoteUseCase
}

func NewLegacyQuoteHandler(uc usecase.ILegacyQuoteUseCase) *LegacyQuoteHandler {
	return &LegacyQuoteHandler{usecase: uc}
}

func (h *LegacyQuoteHandler) BuildLegacyQuote(c *gin.Context) {
	var payload request.LegacyQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid legacy quote payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[legacy][handler] build start machine_id=%s area_m2=%v grade=%d", payload.MachineID, payload.AreaSquareMeters, payload.QualityGrade)
	items, err := h.usecase.BuildLineItems(payload.MachineID, payload.AreaSquareMeters, payload.QualityGrade)
	if err != nil {
		log.Printf("[legacy][handler] build failed machine_id=%s err=%v", payload.MachineID, err)
		appErr := mapLegacyQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[legacy][handler] build success machine_id=%s items=%d", payload.MachineID, len(items))

	c.JSON(http.StatusOK, response.LegacyQuoteResponse{
		MachineID: payload.MachineID,
		Items:     response.FromLineItems(items),
	})
}

func mapLegacyQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogMachine):
		return pkg.NewDomainErrorSimple("INVALID_MACHINE", "Machine is not in the built-in catalog", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidArea):
		return pkg.NewDomainErrorSimple("INVALID_AREA", "Area must be a positive finite number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQualityGrade):
		return pkg.NewDomainErrorSimple("INVALID_QUALITY_GRADE", "Quality grade must be between 1 and 10", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
