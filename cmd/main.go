// @title TripSync API
// @version 1.0
// @description Collaborative trip planning backend: shared expenses, voting, tasks, and chat.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "github.com/felpschneider/TripSync/docs" // swagger docs registration
	"github.com/felpschneider/TripSync/internal/config"
	"github.com/felpschneider/TripSync/internal/handlers"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/routes"
	"github.com/felpschneider/TripSync/internal/storage/postgres"
	"github.com/felpschneider/TripSync/internal/utils"
	"github.com/felpschneider/TripSync/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.New(ctx, &cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	emailService := utils.NewEmailService(&cfg.Email)

	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(store, &cfg.JWT),
		GoogleAuth: handlers.NewGoogleAuthHandler(store, cfg),
		Profile:    handlers.NewProfileHandler(store),
		Trips:      handlers.NewTripHandler(store),
		Expenses:   handlers.NewExpenseHandler(store),
		Proposals:  handlers.NewProposalHandler(store),
		Tasks:      handlers.NewTaskHandler(store),
		Messages:   handlers.NewMessageHandler(store),
		Members:    handlers.NewMemberHandler(store, emailService, &cfg.App),
		Invites:    handlers.NewInviteHandler(store),
		Activity:   handlers.NewActivityHandler(store),
		Export:     handlers.NewExportHandler(store),
		Health:     handlers.NewHealthHandler(store),
	}
	mux := routes.SetupRoutes(h, &cfg.JWT)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.Logging(middleware.Metrics(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
