package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/config"
	"github.com/pathwise-io/pathwise/internal/db"
	dbRedis "github.com/pathwise-io/pathwise/internal/db/redis"
	"github.com/pathwise-io/pathwise/internal/domain"
	logpkg "github.com/pathwise-io/pathwise/internal/logger"
	"github.com/pathwise-io/pathwise/internal/metrics"
	catalogrepo "github.com/pathwise-io/pathwise/internal/repository/catalog"
	projectsrepo "github.com/pathwise-io/pathwise/internal/repository/projects"
	chiTransport "github.com/pathwise-io/pathwise/internal/transport/chi"
	"github.com/pathwise-io/pathwise/internal/transport/nebula"
	openaiAdvisor "github.com/pathwise-io/pathwise/internal/transport/openai"
	"github.com/pathwise-io/pathwise/internal/transport/serpapi"
	"github.com/pathwise-io/pathwise/internal/usecase/orchestrator"
	"github.com/pathwise-io/pathwise/internal/usecase/router"
	"github.com/pathwise-io/pathwise/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pathwise API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// Register dispatch metrics explicitly (no init())
	metrics.RegisterDispatchMetrics()

	ctx := context.Background()

	// Optional catalog cache store. Empty addrs disables caching entirely.
	var store db.KVStore
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Capability clients
	courseClient, err := nebula.NewClient(&nebula.Config{
		APIKey:           cfg.Providers.Nebula.APIKey,
		BaseURL:          cfg.Providers.Nebula.BaseURL,
		MaxResults:       cfg.Providers.Nebula.MaxResults,
		DescriptionLimit: cfg.Providers.Nebula.DescriptionLimit,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("Failed to create course search client", zap.Error(err))
	}
	if store != nil {
		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		courseClient.WithCatalog(catalogrepo.NewCache(courseClient.Catalog(), store, ttl, logger))
	}

	jobClient, err := serpapi.NewClient(&serpapi.Config{
		APIKey:            cfg.Providers.SerpAPI.APIKey,
		BaseURL:           cfg.Providers.SerpAPI.BaseURL,
		Engine:            cfg.Providers.SerpAPI.Engine,
		Language:          cfg.Providers.SerpAPI.Language,
		MaxTitleResults:   cfg.Providers.SerpAPI.MaxTitleResults,
		MaxKeywordResults: cfg.Providers.SerpAPI.MaxKeywordResults,
		DescriptionLimit:  cfg.Providers.SerpAPI.DescriptionLimit,
		Logger:            logger,
	})
	if err != nil {
		logger.Fatal("Failed to create job search client", zap.Error(err))
	}

	projectRepo := projectsrepo.New(cfg.Providers.Projects.MaxResults, logger)

	// Intent router
	intentRouter := router.New(routerConfig(cfg), logger)

	// Orchestrator over all registered capabilities
	orch := orchestrator.New(intentRouter, map[domain.Capability]orchestrator.Client{
		domain.CourseSearch:  courseClient,
		domain.JobSearch:     jobClient,
		domain.ProjectSearch: projectRepo,
	}, logger)

	// Optional advisor. Pass nil interface (not typed nil pointer!) when disabled.
	var advisor chiTransport.Advisor
	if cfg.Advisor.APIKey != "" {
		a, err := openaiAdvisor.NewAdvisor(&openaiAdvisor.Config{
			APIKey:    cfg.Advisor.APIKey,
			BaseURL:   cfg.Advisor.BaseURL,
			Model:     cfg.Advisor.Model,
			MaxTokens: cfg.Advisor.MaxTokens,
			Logger:    logger,
		})
		if err != nil {
			logger.Fatal("Failed to create advisor", zap.Error(err))
		}
		advisor = a
		logger.Info("Advisor enabled", zap.String("model", cfg.Advisor.Model))
	}

	server := chiTransport.NewServer(orch, advisor, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// routerConfig maps the loaded configuration onto router settings, including
// per-capability dispatch timeouts.
func routerConfig(cfg config.Config) router.Config {
	capabilities := make([]domain.Capability, 0, len(cfg.Router.DefaultCapabilities))
	for _, name := range cfg.Router.DefaultCapabilities {
		if c, ok := domain.ParseCapability(name); ok {
			capabilities = append(capabilities, c)
		}
	}

	return router.Config{
		DefaultQuery:        cfg.Router.DefaultQuery,
		DefaultCapabilities: capabilities,
		DefaultDepartments:  cfg.Router.DefaultDepartments,
		DefaultJobTitle:     cfg.Router.DefaultJobTitle,
		DefaultLocation:     cfg.Router.DefaultLocation,
		DefaultCountry:      cfg.Router.DefaultCountry,
		MaxDepartments:      cfg.Router.MaxDepartments,
		MaxRequests:         cfg.Router.MaxRequests,

		CourseTimeout:  time.Duration(cfg.Providers.Nebula.TimeoutSec) * time.Second,
		JobTimeout:     time.Duration(cfg.Providers.SerpAPI.TimeoutSec) * time.Second,
		ProjectTimeout: time.Duration(cfg.Providers.Projects.TimeoutSec) * time.Second,
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
