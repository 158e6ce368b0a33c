package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domainRepo "flightcal-service/internal/domain/repository"
	"flightcal-service/internal/infrastructure/config"
	"flightcal-service/internal/infrastructure/persistence"
	appRepo "flightcal-service/internal/interface/repository"
	"flightcal-service/internal/interface/web"
	"flightcal-service/internal/usecase"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger(os.Getenv("DEBUG") != "")
	log.Info("Starting Flightcal Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session store: MongoDB with TTL expiry when configured, otherwise
	// in-memory with a janitor.
	var sessionRepo domainRepo.SessionRepository
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client
		sessionRepo = appRepo.NewMongoSessionRepository(db, cfg.SessionTTL)
	} else {
		log.Info("No MongoDB configured, using in-memory sessions")
		memRepo := appRepo.NewMemorySessionRepository(cfg.SessionTTL)
		go memRepo.StartJanitor(ctx, time.Minute)
		sessionRepo = memRepo
	}

	// Airline and airport-timezone lookups: PostgreSQL tables when
	// configured, otherwise the built-in carrier table.
	airlineRepository := appRepo.NewStaticAirlineRepository()
	var timezoneRepository domainRepo.TimezoneRepository
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlineRepository = appRepo.NewGormAirlineRepository(gormDB)
		timezoneRepository = appRepo.NewGormTimezoneRepository(gormDB)
	} else {
		log.Info("No PostgreSQL configured, using built-in airline table")
	}

	// Metrics
	m := metrics.NewMetrics("flightcal")

	// Flight provider and use cases
	provider := appRepo.NewHTTPFlightProvider(cfg.ProviderBaseURL, cfg.ProviderTimeout, log)
	resolver := usecase.NewFlightResolver(provider, airlineRepository, log, m)
	builder := usecase.NewICSBuilder(log)

	// Web handler
	handler := web.NewHandler(resolver, builder, sessionRepo, timezoneRepository, log, m)

	// Set up HTTP server
	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the session janitor

	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flightcal Service stopped")
}
