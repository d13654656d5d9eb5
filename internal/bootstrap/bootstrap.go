// Package bootstrap arma las dependencias compartidas por el servidor HTTP y el CLI:
// pool del warehouse, repositorios, casos de uso, registro de herramientas y agente.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/floor-assistant/internal/application/agent"
	"github.com/jhoicas/floor-assistant/internal/application/inventory"
	"github.com/jhoicas/floor-assistant/internal/application/tools"
	infraai "github.com/jhoicas/floor-assistant/internal/infrastructure/ai"
	"github.com/jhoicas/floor-assistant/internal/infrastructure/postgres"
	"github.com/jhoicas/floor-assistant/pkg/config"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// Components dependencias ya construidas.
type Components struct {
	Pool     *pgxpool.Pool
	Scope    inventory.Scope
	Registry *tools.Registry
	Agent    *agent.Agent
}

// Close libera el pool.
func (c *Components) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// Build conecta al warehouse y construye registro y agente según cfg.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Components, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTables(cfg.Warehouse)
	inventoryRepo := postgres.NewInventoryRepository(pool, tables)
	storeRepo := postgres.NewStoreRepository(pool, tables)
	catalogRepo := postgres.NewCatalogRepository(pool, tables)

	scope := inventory.NewScope(cfg)
	registry := tools.NewRegistry(tools.InventoryTools(
		inventory.NewLookupUseCase(inventoryRepo, scope, log),
		inventory.NewAvailabilityUseCase(inventoryRepo, log),
		inventory.NewDirectoryUseCase(storeRepo, catalogRepo, scope, log),
	)...)

	llm, err := infraai.NewLLMService(cfg.AI)
	if err != nil {
		pool.Close()
		return nil, err
	}
	a := agent.New(llm, registry, agent.Config{
		Name:          cfg.AI.AgentName,
		SystemPrompt:  agent.SystemPrompt(scope),
		MaxToolRounds: cfg.AI.MaxToolRounds,
	}, log)

	log.Info().
		Str("store_id", scope.StoreID).
		Str("project", scope.Project).
		Str("dataset", scope.Dataset).
		Str("agent", a.Name()).
		Str("llm", llm.Name()).
		Int("tools", len(registry.Defs())).
		Msg("asistente de piso listo")

	return &Components{Pool: pool, Scope: scope, Registry: registry, Agent: a}, nil
}
