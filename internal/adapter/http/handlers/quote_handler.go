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

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for consumables quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// AssembleQuote creates a quote from the caller's line items. Quantities and
// unit prices are taken as-is; line totals and the quote total are recomputed
// server-side.
func (h *QuoteHandler) AssembleQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] assemble start customer_id=%s machine_id=%s items=%d", payload.CustomerID, payload.MachineID, len(payload.Items))
	quote, err := h.usecase.AssembleQuote(c.Request.Context(), payload.CustomerID, payload.MachineID, payload.ToLineItems())
	if err != nil {
		log.Printf("[quote][handler] assemble failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] assemble success quote_id=%s total=%s", quote.ID, quote.Total.String())

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")

	quote, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.ApproveByID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.RejectByID)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidMachineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteItems):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
