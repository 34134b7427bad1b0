package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swarnapay/api/audit"
	"github.com/swarnapay/api/config"
	"github.com/swarnapay/api/controller"
	"github.com/swarnapay/api/db"
	"github.com/swarnapay/api/ledger"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/middleware"
	"github.com/swarnapay/api/router"
	"github.com/swarnapay/api/service"
	"github.com/swarnapay/api/session"
	"github.com/swarnapay/api/token"
	"github.com/swarnapay/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	gdb, err := db.InitPostgres()
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres(gdb)

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis(redisClient)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	sessionStore := session.NewRedisStore(redisClient, config.GetDuration("auth.sessionTTL"))

	tokenManager, err := token.NewManager(token.Config{
		Secret:    []byte(config.GetString("jwt.secret")),
		Issuer:    config.GetString("jwt.issuer"),
		AccessTTL: config.GetDuration("jwt.accessTTL"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize token manager", zap.Error(err))
	}

	services, err := service.InitializeServices(
		gdb,
		sessionStore,
		ledger.Noop{},
		validationUtil,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	controllers := controller.InitializeControllers(services)

	authConfig := middleware.AuthConfig{
		TokenManager:     tokenManager,
		AuthService:      services.Auth,
		AuditService:     auditService,
		RequiredUserType: config.GetString("auth.requiredUserType"),
		EnforceIPBinding: config.GetBool("auth.enforceIPBinding"),
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, authConfig, redisClient, 100, time.Minute)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
