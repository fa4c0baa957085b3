// cmd/crypto-playground-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/EakDev-hub/asymmetric-crypto/internal/api/rest/v1"
	"github.com/EakDev-hub/asymmetric-crypto/internal/app"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/infrastructure/persistence"
	"github.com/EakDev-hub/asymmetric-crypto/internal/infrastructure/persistence/models"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/config"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized operation services
type appServices struct {
	keyGen    operations.KeyGenService
	cipher    operations.CipherService
	signature operations.SignatureService
	exchange  operations.ExchangeService
	history   operations.HistoryService
}

// initializeServices sets up the crypto engines, the operation history
// store and the operation services on top of them.
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.OperationRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	operationRepo, err := persistence.NewGormOperationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation repository: %w", err)
	}

	// Initialize crypto engines
	engines, err := app.NewEngines(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize crypto engines: %w", err)
	}

	// Initialize services
	keyGenService, err := app.NewKeyGenService(engines, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	cipherService, err := app.NewCipherService(engines, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	signatureService, err := app.NewSignatureService(engines, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	exchangeService, err := app.NewExchangeService(engines, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange service: %w", err)
	}

	historyService, err := app.NewHistoryService(operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create history service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		keyGen:    keyGenService,
		cipher:    cipherService,
		signature: signatureService,
		exchange:  exchangeService,
		history:   historyService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.keyGen,
		services.cipher,
		services.signature,
		services.exchange,
		services.history,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
