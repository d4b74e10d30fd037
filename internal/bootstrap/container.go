package bootstrap

import (
	"context"
	"log"
	"time"

	"bundle-store-be/internal/config"
	"bundle-store-be/internal/controller"
	"bundle-store-be/internal/pkg/logger"
	"bundle-store-be/internal/repository/memory"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/internal/service"
	"bundle-store-be/pkg/payment"

	pktNats "bundle-store-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	CatalogController  controller.ICatalogController
	PurchaseController controller.IPurchaseController
	UserController     controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Payment gateway. Charges are simulated; the delay mimics a real
	// mobile-money round trip.
	gateway := payment.NewSimulator(time.Duration(cfg.Payment.ProcessingDelayMs) * time.Millisecond)

	publisherService := service.NewPublisherService(cfg.Payment.TransactionTopic, pubSub)

	workerLogger := logger.NewIsolatedLogger("logs/purchase_worker.log")
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Payment.TransactionTopic,
		uowFactory,
		rdb,
		workerLogger,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, sessionRepo, natsPub)
	catalogService := service.NewCatalogService(uowFactory, rdb, sysLogger)
	purchaseService := service.NewPurchaseService(uowFactory, gateway, publisherService, natsPub)
	userService := service.NewUserService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		CatalogController:  controller.NewCatalogController(catalogService),
		PurchaseController: controller.NewPurchaseController(purchaseService),
		UserController:     controller.NewUserController(userService),

		ConsumerService: consumerService,
	}
}
