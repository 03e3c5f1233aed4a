package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caregrid/advisor-api/advisor"
	"github.com/caregrid/advisor-api/config"
	"github.com/caregrid/advisor-api/data"
	"github.com/caregrid/advisor-api/handlers"
	"github.com/caregrid/advisor-api/health"
	"github.com/caregrid/advisor-api/logging"
	"github.com/caregrid/advisor-api/ruleset"
	"github.com/caregrid/advisor-api/scheduler"
	"github.com/caregrid/advisor-api/server"
	"github.com/caregrid/advisor-api/validation"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; deployed environments set variables directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogRetentionWeeks, cfg.MaxLogFileSize)

	container := data.NewRulesetContainer()
	container.SetServerStartTime(time.Now())

	validator := validation.NewRulesetValidator()
	loader := &ruleset.Loader{Path: cfg.RulesetPath}

	sched := scheduler.NewScheduler(container, loader, validator)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	adv := advisor.New(container)
	healthChecker := health.NewHealthChecker(container)
	handler := handlers.NewHTTPHandler(container, adv, validator, healthChecker)

	srv := server.NewServer(cfg, handler)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}
