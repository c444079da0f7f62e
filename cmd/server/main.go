package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"iris-serving-service/internal/adapters/primary/http/handlers"
	"iris-serving-service/internal/adapters/primary/http/middleware"
	"iris-serving-service/internal/adapters/secondary/artifact"
	"iris-serving-service/internal/adapters/secondary/prometheus"
	"iris-serving-service/internal/config"
	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
	"iris-serving-service/internal/core/services"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Model artifact: loaded once, read-only for the life of the process
	classifier, err := artifact.Load(cfg.Model.Path)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}
	log.WithField("path", cfg.Model.Path).Info("model artifact loaded")

	fingerprint, err := computeFingerprint(cfg)
	if err != nil {
		log.Fatalf("compute fingerprint: %v", err)
	}
	log.WithField("fingerprint", fingerprint).Info("artifact fingerprint computed")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Metrics (Optional - based on config)
	var recorder ports.MetricsRecorder = ports.NopMetricsRecorder{}
	registry := prom.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder, err = prometheus.NewRecorder(registry)
		if err != nil {
			log.Fatalf("register metrics: %v", err)
		}
		log.Info("Prometheus metrics enabled")
	} else {
		log.Info("Prometheus metrics disabled")
	}

	// Core Services (Application Layer)
	gateway, err := services.NewModelGateway(classifier, domain.IrisLabels(), recorder, cfg.Model.CacheSize)
	if err != nil {
		log.Fatalf("create model gateway: %v", err)
	}
	predictionSvc := services.NewPredictionService(gateway, fingerprint, services.NewSampler(cfg.Model.RandomSeed), recorder)
	workloadSvc := services.NewWorkloadSimulator(cfg.Workload.DefaultDelay, cfg.Workload.MaxDelay, recorder)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(predictionSvc, workloadSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/health", h.Health)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

// computeFingerprint hashes the configured sources, or the running binary
// plus the model artifact when none are configured.
func computeFingerprint(cfg *config.Config) (domain.Fingerprint, error) {
	sources := cfg.Fingerprint.Sources
	if len(sources) == 0 {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("%w: locate executable: %v", domain.ErrFingerprintSource, err)
		}
		sources = []string{exe, cfg.Model.Path}
	}
	return services.ComputeFingerprint(sources...)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Logger.File,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			Compress:   true,
		}))
	}
}
