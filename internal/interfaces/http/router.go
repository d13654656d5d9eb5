package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/floor-assistant/internal/application/agent"
	"github.com/jhoicas/floor-assistant/internal/application/tools"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry  *tools.Registry
	Agent     *agent.Agent
	JWTSecret string
	Log       *logger.Logger // opcional
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	toolHandler := NewToolHandler(deps.Registry)
	api.Get("/tools", toolHandler.List)
	api.Post("/tools/:name", toolHandler.Call)

	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	agentHandler := NewAgentHandler(deps.Agent, log)
	api.Post("/agent/chat", agentHandler.Chat)
}
