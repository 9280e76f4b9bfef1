package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-short-syntax/config"
	_ "task-short-syntax/docs" // Swagger docs
	"task-short-syntax/internal/httpserver"
	"task-short-syntax/internal/shortsyntax/usecase"
	"task-short-syntax/pkg/datemath"
	"task-short-syntax/pkg/log"
)

// @title       Task Short-Syntax API
// @description Extracts project, tag, date and time-tracking directives from task titles.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Short-Syntax API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.ShortSyntax.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.ShortSyntax.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Short-syntax domain
	catalog := newCatalog(ctx, cfg.ShortSyntax, logger)
	shortSyntaxUC := usecase.New(logger, dateMathParser, catalog)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RateLimitPerMin:    cfg.RateLimit.RequestsPerMin,
		ShortSyntaxUseCase: shortSyntaxUC,
		Location:           dateMathParser.Location(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
