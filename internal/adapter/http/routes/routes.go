package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/events"
	eventskafka "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/events/kafka"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/handlers"
	repository2 "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/persistence/repository"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/infrastructure/database"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/infrastructure/gateway"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/infrastructure/killbill"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase"
	"github.com/fathomstudio/killbill-basecommerce-plugin/pkg/secrets"
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

	cipher, err := secrets.NewCipherFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize secrets cipher: %v", err)
	}

	credentialRepo := repository2.NewCredentialDynamoRepository(ddb, cipher)
	paymentMethodRepo := repository2.NewPaymentMethodDynamoRepository(ddb, cipher)

	gatewayClient := gateway.NewBaseCommerceClient()
	hostClient := killbill.NewHostClient()

	ingestor := usecase.NewConfigIngestor(credentialRepo, hostClient)
	registrar := usecase.NewPaymentMethodRegistrar(credentialRepo, paymentMethodRepo, gatewayClient)
	dispatcher := usecase.NewTransactionDispatcher(credentialRepo, paymentMethodRepo, gatewayClient)

	listener := events.NewListener(ingestor, hostClient)
	if os.Getenv("KAFKA_BROKERS") != "" {
		consumer := eventskafka.NewEventConsumer(listener)
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				log.Printf("[events][kafka] consumer stopped err=%v", err)
			}
		}()
	} else {
		log.Printf("[events][kafka] KAFKA_BROKERS not set, event consumer disabled")
	}

	paymentMethodHandler := handlers.NewPaymentMethodHandler(registrar)
	paymentHandler := handlers.NewPaymentHandler(dispatcher)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPluginRoutes(v1, paymentMethodHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
