package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

// AnthropicService adaptador de LLMService sobre la API Messages de Anthropic (tool use).
type AnthropicService struct {
	client anthropic.Client
	apiKey string
	model  string
}

// NewAnthropicService construye el adaptador. Opciones extra (p. ej. option.WithBaseURL)
// se pasan al cliente del SDK.
// Si apiKey está vacío las llamadas devuelven domain.ErrAIUnavailable en lugar de fallar en la API.
func NewAnthropicService(apiKey, model string, opts ...option.RequestOption) *AnthropicService {
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicService{
		client: anthropic.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

// Name nombre del proveedor.
func (s *AnthropicService) Name() string { return "anthropic" }

// ChatWithTools envía la conversación a Claude y traduce los bloques tool_use.
func (s *AnthropicService) ChatWithTools(ctx context.Context, req ports.ChatRequest) (*ports.ChatResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		Messages:  toAnthropicMessages(req.Messages),
		MaxTokens: int64(req.MaxTokens),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if tools := toAnthropicTools(req.Tools); len(tools) > 0 {
		params.Tools = tools
	}

	msg, err := s.client.Messages.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: Anthropic: %w", err)
	}

	out := &ports.ChatResponse{StopReason: string(msg.StopReason)}
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			out.Content += b.Text
		case anthropic.ToolUseBlock:
			args, _ := json.Marshal(b.Input)
			out.ToolCalls = append(out.ToolCalls, ports.ToolCall{ID: b.ID, Name: b.Name, ArgsJSON: string(args)})
		}
	}
	return out, nil
}

// toAnthropicMessages convierte el historial. Los resultados de herramientas consecutivos
// se agrupan en un único mensaje user, como exige la API.
func toAnthropicMessages(msgs []ports.ChatMessage) []anthropic.MessageParam {
	var out []anthropic.MessageParam
	var pendingResults []anthropic.ContentBlockParamUnion

	flush := func() {
		if len(pendingResults) > 0 {
			out = append(out, anthropic.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for _, m := range msgs {
		switch m.Role {
		case ports.RoleTool:
			pendingResults = append(pendingResults, anthropic.NewToolResultBlock(m.ToolCallID, m.Content, false))
		case ports.RoleAssistant:
			flush()
			var blocks []anthropic.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, toolInput(tc.ArgsJSON), tc.Name))
			}
			if len(blocks) > 0 {
				out = append(out, anthropic.NewAssistantMessage(blocks...))
			}
		default:
			flush()
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	flush()
	return out
}

// toolInput decodifica los argumentos JSON; la API exige un objeto.
func toolInput(argsJSON string) map[string]any {
	input := map[string]any{}
	if argsJSON != "" {
		_ = json.Unmarshal([]byte(argsJSON), &input)
	}
	return input
}

func toAnthropicTools(specs []ports.ToolSpec) []anthropic.ToolUnionParam {
	if len(specs) == 0 {
		return nil
	}
	out := make([]anthropic.ToolUnionParam, len(specs))
	for i, t := range specs {
		var schema anthropic.ToolInputSchemaParam
		if len(t.Schema) > 0 {
			_ = json.Unmarshal(t.Schema, &schema)
		}
		out[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        t.Name,
				Description: anthropic.String(t.Description),
				InputSchema: schema,
			},
		}
	}
	return out
}
