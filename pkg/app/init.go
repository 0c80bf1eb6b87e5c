package app

import (
	"context"
	"log"
	"log/slog"

	"go-pokedex/pkg/config"
	"go-pokedex/pkg/dex"
	"go-pokedex/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	Dex              *dex.Service
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp initializes common application dependencies
func InitializeApp(serviceName string) (*AppContext, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	ctx := context.Background()

	telemetryManager := logging.NewTelemetryManager()
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
		// Continue without telemetry rather than failing
	}

	dataDir := config.GetDataDir()
	dexService := dex.NewService(dex.Config{
		DataDir:         dataDir,
		SpriteBaseURL:   config.GetSpriteBaseURL(),
		ResourceBaseURL: config.GetAPIPrefix(),
	})

	// An unreadable primary file leaves the service running uninitialized
	// rather than taking the process down; /status reports the gap and a
	// later reload can recover.
	if err := dexService.Reload(); err != nil {
		slog.Error("Initial data load failed, serving uninitialized", "error", err, "data_dir", dataDir)
	} else {
		slog.Info("Pokédex service initialized", "data_dir", dataDir)
	}

	appCtx := &AppContext{
		Dex:              dexService,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}

	if telemetryManager != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)
	}

	return appCtx, nil
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}

	slog.Info("Application shutdown completed", "service", a.ServiceName)
	return nil
}

// GetPort returns the port from environment or default
func GetPort(defaultPort string) string {
	return config.GetEnv("PORT", defaultPort)
}
