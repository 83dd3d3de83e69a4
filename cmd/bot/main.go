package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/dx3bot/internal/api"
	"github.com/dom/dx3bot/internal/bot"
	"github.com/dom/dx3bot/internal/config"
	"github.com/dom/dx3bot/internal/gateway/discord"
	"github.com/dom/dx3bot/internal/repository"
	"github.com/dom/dx3bot/internal/repository/memory"
	"github.com/dom/dx3bot/internal/repository/postgres"
	"github.com/dom/dx3bot/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	// Initialize storage: postgres when configured, in-memory otherwise.
	var repo repository.DocumentRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		repo = postgres.NewDocumentRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		repo = memory.New()
	}
	st := store.New(repo)

	// Initialize the Discord gateway and the dispatcher.
	gw, err := discord.New(cfg.DiscordBotToken, logger)
	if err != nil {
		logger.Fatal("failed to create discord session", zap.Error(err))
	}
	dispatcher := bot.New(st, gw, cfg.BotOwnerID, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw.OnMessage(func(ev bot.Event) {
		dispatcher.HandleEvent(ctx, ev)
	})
	if err := gw.Open(); err != nil {
		logger.Fatal("failed to open discord gateway", zap.Error(err))
	}
	defer gw.Close()

	go dispatcher.RunKeepAlive(ctx, cfg.KeepAliveInterval)

	// Operational HTTP server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      api.NewRouter(st),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start http server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server forced to shutdown", zap.Error(err))
	}
}

func newLogger(environment string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
