package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/config"
	dbRedis "github.com/eduwijs/querywise/internal/db/redis"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/taxonomy"
	logpkg "github.com/eduwijs/querywise/internal/logger"
	"github.com/eduwijs/querywise/internal/metrics"
	catalogrepo "github.com/eduwijs/querywise/internal/repository/catalog"
	"github.com/eduwijs/querywise/internal/respond"
	chiTransport "github.com/eduwijs/querywise/internal/transport/chi"
	"github.com/eduwijs/querywise/internal/usecase/classify"
	"github.com/eduwijs/querywise/internal/usecase/contentsearch"
	"github.com/eduwijs/querywise/internal/usecase/path"
	queryuc "github.com/eduwijs/querywise/internal/usecase/query"
	"github.com/eduwijs/querywise/internal/usecase/scoring"
	"github.com/eduwijs/querywise/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting querywise API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	ctx := context.Background()

	// Load the catalog snapshot once; the engine never re-reads it.
	courses, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	tax := taxonomy.Default()
	idx, err := catalog.New(courses, tax)
	if err != nil {
		logger.Fatal("Failed to build catalog index", zap.Error(err))
	}
	logger.Info("Catalog indexed", zap.Int("courses", idx.Len()))

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	// Assemble the engine — composition root
	scorer := scoring.New(idx, scoring.Weights{
		SkillMax:      cfg.Engine.SkillMax,
		LevelMax:      cfg.Engine.LevelMax,
		LevelStep:     cfg.Engine.LevelStep,
		InterestBonus: cfg.Engine.InterestBonus,
		TimeBonus:     cfg.Engine.TimeBonus,
		AffinityBonus: cfg.Engine.AffinityBonus,
	})
	querySvc := queryuc.New(
		idx,
		classify.New(),
		scorer,
		path.New(idx),
		contentsearch.New(idx),
		respond.New(cfg.Engine.BaseURL),
		queryuc.Limits{
			MaxSuggestions: cfg.Engine.MaxSuggestions,
			MaxRelated:     cfg.Engine.MaxRelated,
		},
	)

	server := chiTransport.NewServer(querySvc, idx, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Mount("/", server.Router())

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

// loadCatalog reads the course snapshot from the configured source.
func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]course.Course, error) {
	switch cfg.Catalog.Source {
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Catalog.Addrs,
			Password: cfg.Catalog.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("create catalog store: %w", err)
		}
		defer store.Close()

		timeout := time.Duration(cfg.Catalog.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			return nil, fmt.Errorf("catalog store not ready: %w", err)
		}
		logger.Info("Connected to catalog store", zap.Strings("addrs", cfg.Catalog.Addrs))

		return catalogrepo.NewRedisSource(store, cfg.Catalog.KeyPrefix).Load(ctx)
	default:
		return catalogrepo.NewFileSource(cfg.Catalog.Path).Load(ctx)
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
			)
		})
	}
}
