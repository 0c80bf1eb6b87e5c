package pokedex

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"

	"go-pokedex/internal/pokedex/routes"
	"go-pokedex/internal/pokedex/services"
	"go-pokedex/pkg/config"
	"go-pokedex/pkg/dex"
	"go-pokedex/pkg/module"
)

// Module represents the Pokédex module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
	cron    *cron.Cron
}

// NewModule creates a new Pokédex module instance
func NewModule(dexService *dex.Service) *Module {
	service := services.NewService(dexService)
	routesHandler := routes.NewRoutes(service)

	return &Module{
		BaseModule: module.NewBaseModule("pokedex", dexService),
		service:    service,
		routes:     routesHandler,
	}
}

// Routes registers the module's chi routes
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterHumaRoutes registers the module's API operations
func (m *Module) RegisterHumaRoutes(api huma.API) {
	m.routes.RegisterRoutes(api)
}

// StartBackgroundTasks starts the scheduled data reload when configured
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	slog.Info("Starting Pokédex background tasks")

	schedule := config.GetReloadSchedule()
	if schedule != "" {
		c := cron.New()
		_, err := c.AddFunc(schedule, func() {
			if res := m.service.Reload(); !res.Success {
				slog.Warn("Scheduled reload kept previous dataset")
			}
		})
		if err != nil {
			slog.Error("Invalid reload schedule, scheduled reloads disabled", "schedule", schedule, "error", err)
		} else {
			c.Start()
			m.cron = c
			slog.Info("Scheduled data reload enabled", "schedule", schedule)
		}
	}

	select {
	case <-ctx.Done():
		slog.Info("Pokédex background tasks stopped due to context cancellation")
	case <-m.StopChannel():
		slog.Info("Pokédex background tasks stopped")
	}

	if m.cron != nil {
		m.cron.Stop()
	}
}
