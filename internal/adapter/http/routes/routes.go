package routes

import (
	"log"
	_ "logistica_iac/docs" // This will be auto-generated
	"logistica_iac/internal/adapter/http/handlers"
	repository2 "logistica_iac/internal/adapter/persistence/repository"
	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/domain/pricing"
	"logistica_iac/internal/infrastructure/crypto"
	"logistica_iac/internal/infrastructure/database"
	"logistica_iac/internal/infrastructure/notification"
	"logistica_iac/internal/infrastructure/payments"
	"logistica_iac/internal/usecase"
	"logistica_iac/internal/usecase/interfaces"
	"os"
	"strconv"

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
	shipmentRepo, abonoRepo, accountRepo := buildRepositories()

	cfg := usecase.ShipmentConfig{
		Rates:                     ratesFromEnv(),
		DiscrepancyThresholdRatio: envFloat("DISCREPANCY_THRESHOLD_RATIO", 0),
		OverdueAfterDays:          envInt("OVERDUE_AFTER_DAYS", 0),
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notification.NewLogNotifier()

	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo, notifier, cfg)
	paymentUseCase := usecase.NewPaymentUseCase(shipmentRepo, abonoRepo, paymentGateway, notifier, cfg)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, crypto.NewBcryptHasher(0))

	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase, paymentUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	accountHandler := handlers.NewAccountHandler(accountUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLogisticsRoutes(v1, shipmentHandler, paymentHandler, accountHandler, accountUseCase)
}

// buildRepositories selects the storage backend. CSV flat files are the
// default; STORAGE_BACKEND=dynamodb switches every collection to DynamoDB.
func buildRepositories() (interfaces.IShipmentRepository, interfaces.IAbonoRepository, interfaces.IAccountRepository) {
	backend := getenvDefault("STORAGE_BACKEND", "csv")
	if backend == "dynamodb" {
		log.Printf("[storage] backend=dynamodb")
		ddb := database.ConnectDynamoDB()
		return repository2.NewShipmentDynamoRepository(ddb),
			repository2.NewAbonoDynamoRepository(ddb),
			repository2.NewAccountDynamoRepository(ddb)
	}

	dataDir := getenvDefault("DATA_DIR", "./data")
	log.Printf("[storage] backend=csv data_dir=%s", dataDir)
	return repository2.NewShipmentCSVRepository(dataDir),
		repository2.NewAbonoCSVRepository(dataDir),
		repository2.NewAccountCSVRepository(dataDir)
}

func ratesFromEnv() pricing.RateTable {
	rates := pricing.DefaultRates()
	if v := envFloat("RATE_AIR_PER_KG", 0); v > 0 {
		rates[entities.TransportModeAir] = v
	}
	if v := envFloat("RATE_OCEAN_PER_FT3", 0); v > 0 {
		rates[entities.TransportModeOcean] = v
	}
	if v := envFloat("RATE_DOMESTIC_PER_KG", 0); v > 0 {
		rates[entities.TransportModeDomestic] = v
	}
	return rates
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default", key, v)
		return def
	}
	return f
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default", key, v)
		return def
	}
	return n
}
