package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"smartgreeting/internal/config"
	"smartgreeting/internal/logging"
	"smartgreeting/internal/responder"
	"smartgreeting/internal/server"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevelValue(), cfg.IsDev()))

	// Greeting table is loaded once and never changes afterwards
	table, err := config.LoadGreetingTable(cfg.GreetingConfigFile)
	if err != nil {
		slog.Error("failed to load greeting table", "path", cfg.GreetingConfigFile, "error", err)
		os.Exit(1)
	}
	slog.Info("greeting table loaded", "rules", len(table.Rules()))

	srv, err := server.New(cfg, responder.New(table, nil))
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}
	srv.RegisterRoutes()

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}
