package routes

import (
	"log"
	"strconv"

	_ "insumos_xpto/docs" // This will be auto-generated
	"insumos_xpto/internal/adapter/http/handlers"
	repository2 "insumos_xpto/internal/adapter/persistence/repository"
	"insumos_xpto/internal/infrastructure/database"
	"insumos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	formulaRepo := repository2.NewFormulaDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	calculationUseCase := usecase.NewCalculationUseCase(formulaRepo)
	formulaAdminUseCase := usecase.NewFormulaAdminUseCase(formulaRepo)
	legacyQuoteUseCase := usecase.NewLegacyQuoteUseCase()
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)

	calculationHandler := handlers.NewCalculationHandler(calculationUseCase)
	formulaHandler := handlers.NewFormulaHandler(formulaAdminUseCase)
	legacyQuoteHandler := handlers.NewLegacyQuoteHandler(legacyQuoteUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, calculationHandler, formulaHandler, legacyQuoteHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
