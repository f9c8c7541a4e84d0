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

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/internal/billing"
	"github.com/RajFruit/Hospital-Managment-System/internal/dashboard"
	"github.com/RajFruit/Hospital-Managment-System/internal/records"
	"github.com/RajFruit/Hospital-Managment-System/internal/registry"
	"github.com/RajFruit/Hospital-Managment-System/internal/scheduling"
	"github.com/RajFruit/Hospital-Managment-System/pkg/config"
	"github.com/RajFruit/Hospital-Managment-System/pkg/database"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/monitoring"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Connect to the database and ensure the schema exists
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.CreateSchema(ctx); err != nil {
		cancel()
		logger.Fatalf("Failed to create database schema: %v", err)
	}
	cancel()

	// Distributed tracing (spans come from the HTTP middleware)
	var stopTracing func(context.Context) error
	if cfg.Monitoring.TracingEnabled {
		stopTracing, err = monitoring.InitTracing(&monitoring.TracingConfig{
			ServiceName:    "hms-server",
			JaegerEndpoint: cfg.Monitoring.JaegerEndpoint,
			SamplingRate:   cfg.Monitoring.TracingSampleRate,
		})
		if err != nil {
			logger.Fatalf("Failed to initialize tracing: %v", err)
		}
	}

	// Repositories
	registryRepo := registry.NewRepository(db, logger)
	schedulingRepo := scheduling.NewRepository(db, logger)
	billingRepo := billing.NewRepository(db, logger)
	recordsRepo := records.NewRepository(db, logger)

	// Services. The registry service doubles as the patient directory for
	// billing, scheduling and clinical records; the registry repository
	// serves as the doctor directory.
	registrySvc := registry.NewService(registryRepo, logger)
	schedulingSvc := scheduling.NewService(schedulingRepo, registrySvc, registryRepo, logger)
	billingSvc := billing.NewService(registrySvc, billingRepo, billing.SystemClock(), logger)
	recordsSvc := records.NewService(recordsRepo, registrySvc, registryRepo, logger)
	dashboardSvc := dashboard.NewService(registryRepo, schedulingRepo, billingRepo, recordsRepo, logger)

	// Router
	router := mux.NewRouter()
	router.Use(monitoring.Middleware(logger))
	router.HandleFunc(cfg.Monitoring.HealthPath,
		monitoring.HealthHandler("hms-server", &monitoring.DBHealthChecker{Pinger: db})).Methods("GET")
	if cfg.Monitoring.Enabled {
		router.Handle(cfg.Monitoring.MetricsPath, monitoring.MetricsHandler()).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	registrySvc.RegisterRoutes(api)
	schedulingSvc.RegisterRoutes(api)
	billingSvc.RegisterRoutes(api)
	recordsSvc.RegisterRoutes(api)
	dashboardSvc.RegisterRoutes(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Starting HMS server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start HMS server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down HMS server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	if stopTracing != nil {
		if err := stopTracing(shutdownCtx); err != nil {
			logger.Errorf("Error flushing traces: %v", err)
		}
	}
	logger.Info("HMS server stopped")
}
