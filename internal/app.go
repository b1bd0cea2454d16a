package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "domain-market-web/internal/adapters/logger"
	"domain-market-web/internal/adapters/marketapi"
	"domain-market-web/internal/adapters/rest"
	"domain-market-web/internal/adapters/store"
	"domain-market-web/internal/auth"
	"domain-market-web/internal/configs"
	"domain-market-web/internal/core/port"
	"domain-market-web/internal/core/usecase"
	"domain-market-web/internal/workers/refresher"
	"domain-market-web/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App holds the wired application components.
type App struct {
	server       *rest.Server
	refresher    *refresher.Refresher
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

// NewApp builds and wires every component of the application.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Outbound adapter: the listings backend client.
	marketClient := marketapi.NewClient(appConfig.BackendBaseURL)
	appLogger.Debug("Market client initialized", port.Fields{"target_url": appConfig.BackendBaseURL})

	// The catalog store sits between the backend and the public pages.
	catalogStore := store.NewCatalogStore(marketClient)

	// Use cases.
	browseUC := usecase.NewBrowseCatalogUseCase(catalogStore)
	detailsUC := usecase.NewGetListingDetailsUseCase(marketClient)
	listUC := usecase.NewListAllListingsUseCase(marketClient)
	createUC := usecase.NewCreateListingUseCase(marketClient, catalogStore)
	updateUC := usecase.NewUpdateListingUseCase(marketClient, catalogStore)
	deleteUC := usecase.NewDeleteListingUseCase(marketClient, catalogStore)
	recalcUC := usecase.NewRecalculateBRLUseCase(marketClient, catalogStore)

	sessions := auth.NewSessionManager(appConfig.AdminToken)

	// Inbound adapter: the REST server.
	catalogHandler := rest.NewCatalogHandler(browseUC, detailsUC)
	adminHandler := rest.NewAdminHandler(sessions, listUC, createUC, updateUC, deleteUC, recalcUC)
	server := rest.NewServer(appConfig, catalogHandler, adminHandler, sessions, baseLogger)

	catalogRefresher := refresher.New(catalogStore, appConfig.RefreshCron, baseLogger)

	return &App{
		server:       server,
		refresher:    catalogRefresher,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run starts the application and manages its lifecycle.
func (a *App) Run() error {
	refresherCtx, cancelRefresher := context.WithCancel(context.Background())
	defer cancelRefresher()

	if err := a.refresher.Start(refresherCtx); err != nil {
		return fmt.Errorf("failed to start catalog refresher: %w", err)
	}

	go func() {
		if err := a.server.Start(); err != nil {
			a.logger.Error("Failed to start web server", err, nil)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	a.logger.Debug("Application is shutting down...", port.Fields{"signal": sig.String()})

	a.refresher.Stop()
	cancelRefresher()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("Server shutdown failed", err, nil)
		os.Exit(1)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
