package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/floor-assistant/internal/application/agent"
	"github.com/jhoicas/floor-assistant/internal/application/dto"
	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// chatTimeout cubre todas las rondas LLM → herramienta de una petición.
const chatTimeout = 60 * time.Second

// AgentHandler maneja la conversación con el asistente de piso.
type AgentHandler struct {
	agent *agent.Agent
	log   *logger.Logger
}

// NewAgentHandler construye el handler.
func NewAgentHandler(a *agent.Agent, log *logger.Logger) *AgentHandler {
	return &AgentHandler{agent: a, log: log.Named("http_agent")}
}

// Chat godoc
// @Summary      Conversar con el asistente de piso
// @Description  Envía un mensaje; el asistente consulta el inventario con sus herramientas. El historial es opcional y solo contiene turnos de texto.
// @Tags         agent
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message (obligatorio), session_id e history opcionales"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/agent/chat [post]
func (h *AgentHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "message es obligatorio",
		})
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), chatTimeout)
	defer cancel()

	res, err := h.agent.Chat(ctx, toHistory(req.History), req.Message)
	if err != nil {
		h.log.Error().Err(err).
			Str("session_id", req.SessionID).
			Str("subject", GetSubject(c)).
			Msg("chat fallido")
		return chatError(c, err)
	}
	h.log.Info().
		Str("session_id", req.SessionID).
		Str("subject", GetSubject(c)).
		Str("token_store_id", GetStoreID(c)).
		Int("tools_used", len(res.ToolsUsed)).
		Msg("chat respondido")

	out := dto.ChatResponse{SessionID: req.SessionID, Reply: res.Reply, ToolsUsed: make([]dto.ToolUseDTO, 0, len(res.ToolsUsed))}
	for _, u := range res.ToolsUsed {
		out.ToolsUsed = append(out.ToolsUsed, dto.ToolUseDTO{Name: u.Name, Summary: u.Summary})
	}
	return c.JSON(out)
}

func toHistory(in []dto.ChatMessageDTO) []ports.ChatMessage {
	out := make([]ports.ChatMessage, 0, len(in))
	for _, m := range in {
		role := ports.RoleUser
		if m.Role == ports.RoleAssistant {
			role = ports.RoleAssistant
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		out = append(out, ports.ChatMessage{Role: role, Content: m.Content})
	}
	return out
}

func chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "el asistente tardó demasiado; intenta de nuevo",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrAIUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "AI_UNAVAILABLE", Message: "el servicio de IA no está configurado",
		})
	case errors.Is(err, domain.ErrToolRoundsExceeded):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "TOOL_ROUNDS_EXCEEDED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
