package routes

import (
	"insumos_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculations = "/calculations"
	PathFormulas     = "/formulas"
	PathQuotes       = "/quotes"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	calculationHandler *handlers.CalculationHandler,
	formulaHandler *handlers.FormulaHandler,
	legacyQuoteHandler *handlers.LegacyQuoteHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	calculations := rg.Group(PathCalculations)
	{
		calculations.POST("", calculationHandler.Calculate)
	}

	formulas := rg.Group(PathFormulas)
	{
		formulas.GET("/resolve", calculationHandler.ResolveFormula)
		formulas.POST("", formulaHandler.CreateFormula)
		formulas.GET("/:id", formulaHandler.GetFormula)
		formulas.PUT("/:id", formulaHandler.UpdateFormula)
		formulas.PATCH("/:id/activate", formulaHandler.ActivateFormula)
		formulas.PATCH("/:id/deactivate", formulaHandler.DeactivateFormula)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.AssembleQuote)
		quotes.POST("/legacy", legacyQuoteHandler.BuildLegacyQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/cancel", quoteHandler.CancelQuote)
	}
}
