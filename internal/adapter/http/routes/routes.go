package routes

import (
	"os"
	"strconv"

	_ "sobujigangas/docs" // swag-generated
	"sobujigangas/internal/adapter/http/handlers"
	repository2 "sobujigangas/internal/adapter/persistence/repository"
	"sobujigangas/internal/infrastructure/database"
	"sobujigangas/internal/infrastructure/email"
	"sobujigangas/internal/infrastructure/payments"
	"sobujigangas/internal/infrastructure/scheduler"
	"sobujigangas/internal/usecase"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
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
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb, productRepo)
	alertRepo := repository2.NewStockAlertDynamoRepository(ddb)
	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	movementRepo := repository2.NewStockMovementDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	resetRepo := repository2.NewPasswordResetDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	var emailSender interfaces.IEmailSender
	resendSender, err := email.NewResendSender(os.Getenv("RESEND_API_KEY"))
	if err != nil {
		log.Warn().Err(err).Msg("email sender not configured")
	} else {
		emailSender = resendSender
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, movementRepo)
	alertUseCase := usecase.NewStockAlertUseCase(alertRepo, productRepo)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, productRepo, movementRepo, paymentGateway)
	userUseCase := usecase.NewUserUseCase(profileRepo)
	resetUseCase := usecase.NewPasswordResetUseCase(resetRepo, profileRepo, emailSender)
	analyticsUseCase := usecase.NewAnalyticsUseCase(saleRepo, movementRepo)

	sched := scheduler.New(alertUseCase)
	if err := sched.Start(); err != nil {
		log.Error().Err(err).Msg("scheduler failed to start")
	}

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	alertHandler := handlers.NewStockAlertHandler(alertUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	resetHandler := handlers.NewPasswordResetHandler(resetUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInventoryRoutes(v1, orderHandler, productHandler, alertHandler, saleHandler, userHandler, resetHandler, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("recovered", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
