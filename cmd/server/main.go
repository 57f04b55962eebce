package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/coopsight/coopsight-backend/internal/config"
	"github.com/coopsight/coopsight-backend/internal/handler"
	"github.com/coopsight/coopsight-backend/internal/logger"
	"github.com/coopsight/coopsight-backend/internal/repository"
	"github.com/coopsight/coopsight-backend/internal/router"
	"github.com/coopsight/coopsight-backend/internal/service"
	"github.com/coopsight/coopsight-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Coopsight Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Repositories ───────────────────────────────────────
	// All storage is in-memory and volatile; repositories are constructed
	// once here and threaded through the services that need them.
	majorCatalog := repository.NewMajorCatalog()
	companyRegistry := repository.NewCompanyRegistry()
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	reviewRepo := repository.NewReviewRepository()
	userMajorLinks := repository.NewMajorLinkRepository(majorCatalog)
	roleMajorLinks := repository.NewMajorLinkRepository(majorCatalog)

	// ─── Initialize Services ──────────────────────────────────────────
	userService := service.NewUserService(userRepo, majorCatalog, userMajorLinks)
	roleService := service.NewRoleService(
		roleRepo, userRepo, reviewRepo, companyRegistry, majorCatalog, roleMajorLinks, userMajorLinks)
	reviewService := service.NewReviewService(reviewRepo, userRepo, roleRepo)
	systemService := service.NewSystemService(
		userRepo, roleRepo, reviewRepo, companyRegistry, userMajorLinks, roleMajorLinks, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		User:   handler.NewUserHandler(userService),
		Role:   handler.NewRoleHandler(roleService),
		Review: handler.NewReviewHandler(reviewService),
		System: handler.NewSystemHandler(systemService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
