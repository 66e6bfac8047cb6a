package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/trip-planner/internal/auth"
	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/internal/tourism"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; Ping verifies the DB is
	// reachable before accepting traffic.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	// --- Dependencies -----------------------------------------------------
	src, err := tourism.NewCSVSource(cfg.TourismCSVPath, cfg.TourismCSVEncoding)
	if err != nil {
		return fmt.Errorf("tourism source: %w", err)
	}

	accountRepo := repo.NewAccountRepo(pool)
	tripRepo := repo.NewTripRepo(pool)
	scheduleRepo := repo.NewScheduleRepo(pool)

	srv := handler.NewServer(handler.Services{
		Accounts: service.NewAccountService(
			accountRepo,
			auth.NewPasswordHasher(bcrypt.DefaultCost),
			auth.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		),
		Trips:     service.NewTripService(tripRepo, accountRepo, repo.NewTxRunner(pool)),
		Schedules: service.NewScheduleService(scheduleRepo, tripRepo, accountRepo),
		Tourism:   tourism.NewEngine(src),
	}, logger)

	// --- Router -----------------------------------------------------------
	// Order: RequestID, RealIP, Logger, Recoverer, CORS, body limit.
	// Recoverer sits inside the logger so a panic is logged as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Give in-flight requests up to 15 seconds to complete.
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
