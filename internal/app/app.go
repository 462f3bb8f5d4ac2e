// Package app wires configuration, storage, services, and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	postgres "github.com/ballotworks/advocacy-backend/internal/adapter/postgres"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/activity"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/presenceaudit"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/section"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/vettingcase"
	"github.com/ballotworks/advocacy-backend/internal/adapter/provider/presencescan"
	"github.com/ballotworks/advocacy-backend/internal/auth"
	"github.com/ballotworks/advocacy-backend/internal/config"
	"github.com/ballotworks/advocacy-backend/internal/provider"
	"github.com/ballotworks/advocacy-backend/internal/service/presence"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting"
	"github.com/ballotworks/advocacy-backend/internal/transport/middleware"
	"github.com/ballotworks/advocacy-backend/internal/transport/rest"
	"github.com/ballotworks/advocacy-backend/pkg/background"
)

// scanProvider abstracts the real and stub presence scan providers.
type scanProvider interface {
	Scan(ctx context.Context, req presencescan.ScanRequest) (*provider.ScanResult, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	poolCtx, poolCancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := postgres.NewPool(poolCtx, cfg.Database)
	poolCancel()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	caseRepo := vettingcase.New(pool)
	sectionRepo := section.New(pool)
	auditRepo := presenceaudit.New(pool)
	activityRepo := activity.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Background tasks keep their own context so an HTTP shutdown does not
	// cancel in-flight audits; tasksStop ends them after the server drains.
	tasksCtx, tasksStop := context.WithCancel(context.Background())
	defer tasksStop()
	registry := background.NewRegistry(tasksCtx, logger)

	var scans scanProvider
	if cfg.Presence.ScanBaseURL != "" {
		scans = presencescan.NewProvider(cfg.Presence.ScanBaseURL, cfg.Presence.ScanAPIKey, logger)
	} else {
		logger.Warn("no presence scan endpoint configured, using stub provider")
		scans = presencescan.NewStub()
	}
	runner := presence.NewRunner(logger, auditRepo, caseRepo, scans, registry, cfg.Presence.ScanTimeout)

	vettingSvc := vetting.NewService(logger, caseRepo, sectionRepo, auditRepo, runner, activityRepo, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// HTTP.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	rest.NewVettingHandler(vettingSvc, logger).Register(mux)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(&jwtValidator{jwt: jwtManager}),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}

	// Let running audits finish their terminal status writes.
	tasksStop()
	registry.Wait()

	logger.Info("stopped")
	return nil
}

// jwtValidator adapts the JWT manager to the middleware's token validator.
type jwtValidator struct {
	jwt *auth.JWTManager
}

func (v *jwtValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}
