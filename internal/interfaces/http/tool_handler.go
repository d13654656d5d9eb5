package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/floor-assistant/internal/application/dto"
	"github.com/jhoicas/floor-assistant/internal/application/tools"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

// ToolHandler expone las herramientas del registro para invocación directa.
type ToolHandler struct {
	registry *tools.Registry
}

// NewToolHandler construye el handler.
func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

// List godoc
// @Summary      Listar herramientas
// @Description  Definiciones (nombre, descripción, esquema de parámetros) ordenadas por nombre.
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   tools.ToolDef
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tools [get]
func (h *ToolHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.registry.Defs())
}

// Call godoc
// @Summary      Invocar una herramienta
// @Description  El body JSON son los argumentos de la herramienta. Las fallas de consulta se devuelven como texto en output con HTTP 200.
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "nombre de la herramienta"
// @Success      200   {object}  dto.ToolCallResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tools/{name} [post]
func (h *ToolHandler) Call(c *fiber.Ctx) error {
	name := c.Params("name")
	tool, err := h.registry.Get(name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTool) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_TOOL", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	args := strings.TrimSpace(string(c.Body()))
	if args == "" {
		args = "{}"
	}
	out := tool.Call(c.UserContext(), args)
	return c.JSON(dto.ToolCallResponse{Tool: name, Output: out})
}
