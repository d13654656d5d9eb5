// Package agent conduce la conversación del asistente de piso: llama al LLM con las
// herramientas de inventario, ejecuta las que pida y repite hasta obtener una respuesta final.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/application/tools"
	"github.com/jhoicas/floor-assistant/internal/domain"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

const (
	defaultMaxToolRounds = 6
	defaultMaxTokens     = 1024
	summaryLen           = 80
)

// Config parámetros del agente.
type Config struct {
	Name          string
	SystemPrompt  string
	MaxToolRounds int
	MaxTokens     int
}

// ToolUse registro de una invocación de herramienta durante el ciclo.
type ToolUse struct {
	Name    string `json:"name"`
	Summary string `json:"summary"` // primeros 80 caracteres del resultado
}

// Result respuesta final y traza del ciclo.
type Result struct {
	Reply     string
	ToolsUsed []ToolUse
	Messages  []ports.ChatMessage // conversación completa, para continuarla
}

// Agent asistente conversacional con acceso a las herramientas registradas.
type Agent struct {
	llm      ports.LLMService
	registry *tools.Registry
	cfg      Config
	log      *logger.Logger
}

// New construye el agente aplicando valores por defecto.
func New(llm ports.LLMService, registry *tools.Registry, cfg Config, log *logger.Logger) *Agent {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = defaultMaxToolRounds
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &Agent{llm: llm, registry: registry, cfg: cfg, log: log.Named("agent")}
}

// Name nombre configurado del agente.
func (a *Agent) Name() string { return a.cfg.Name }

// Chat agrega message al historial y ejecuta el ciclo LLM → herramientas → LLM.
// Devuelve domain.ErrToolRoundsExceeded si el modelo no termina en MaxToolRounds vueltas.
func (a *Agent) Chat(ctx context.Context, history []ports.ChatMessage, message string) (*Result, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: mensaje vacío", domain.ErrInvalidInput)
	}

	msgs := make([]ports.ChatMessage, len(history), len(history)+1)
	copy(msgs, history)
	msgs = append(msgs, ports.ChatMessage{Role: ports.RoleUser, Content: message})

	specs := a.toolSpecs()
	var used []ToolUse

	for round := 0; round < a.cfg.MaxToolRounds; round++ {
		resp, err := a.llm.ChatWithTools(ctx, ports.ChatRequest{
			System:    a.cfg.SystemPrompt,
			Messages:  msgs,
			Tools:     specs,
			MaxTokens: a.cfg.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("agente %s: %w", a.llm.Name(), err)
		}

		if len(resp.ToolCalls) == 0 {
			msgs = append(msgs, ports.ChatMessage{Role: ports.RoleAssistant, Content: resp.Content})
			return &Result{Reply: resp.Content, ToolsUsed: used, Messages: msgs}, nil
		}

		msgs = append(msgs, ports.ChatMessage{
			Role:      ports.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			a.log.Debug().Int("round", round).Str("tool", call.Name).Str("args", call.ArgsJSON).Msg("ejecutando herramienta")
			out := a.registry.Dispatch(ctx, call.Name, call.ArgsJSON)
			used = append(used, ToolUse{Name: call.Name, Summary: summarize(out)})
			msgs = append(msgs, ports.ChatMessage{
				Role:       ports.RoleTool,
				Content:    out,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	return nil, fmt.Errorf("%w (%d)", domain.ErrToolRoundsExceeded, a.cfg.MaxToolRounds)
}

func (a *Agent) toolSpecs() []ports.ToolSpec {
	defs := a.registry.Defs()
	specs := make([]ports.ToolSpec, len(defs))
	for i, d := range defs {
		specs[i] = ports.ToolSpec{Name: d.Name, Description: d.Description, Schema: d.Schema()}
	}
	return specs
}

func summarize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) > summaryLen {
		return string(r[:summaryLen]) + "…"
	}
	return s
}
