package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador de LLMService sobre Chat Completions. Con baseURL sirve
// también para APIs compatibles (Ollama, vLLM); en ese caso la API key puede ser cualquiera.
type OpenAIService struct {
	client openai.Client
	apiKey string
	model  string
}

// NewOpenAIService construye el adaptador; model por defecto gpt-4o-mini.
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIService{client: openai.NewClient(opts...), apiKey: apiKey, model: model}
}

// Name nombre del proveedor.
func (s *OpenAIService) Name() string { return "openai" }

// ChatWithTools envía la conversación con las herramientas como functions.
func (s *OpenAIService) ChatWithTools(ctx context.Context, req ports.ChatRequest) (*ports.ChatResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: OPENAI_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	params := openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: toOpenAIMessages(req.System, req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if tools := toOpenAITools(req.Tools); len(tools) > 0 {
		params.Tools = tools
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}

	choice := resp.Choices[0]
	out := &ports.ChatResponse{Content: choice.Message.Content, StopReason: string(choice.FinishReason)}
	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ports.ToolCall{ID: tc.ID, Name: tc.Function.Name, ArgsJSON: tc.Function.Arguments})
	}
	return out, nil
}

func toOpenAIMessages(system string, msgs []ports.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	var out []openai.ChatCompletionMessageParamUnion
	if system != "" {
		out = append(out, openai.SystemMessage(system))
	}
	for _, m := range msgs {
		switch m.Role {
		case ports.RoleAssistant:
			if len(m.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(m.Content))
				continue
			}
			calls := make([]openai.ChatCompletionMessageToolCallParam, len(m.ToolCalls))
			for i, tc := range m.ToolCalls {
				args := tc.ArgsJSON
				if args == "" {
					args = "{}"
				}
				calls[i] = openai.ChatCompletionMessageToolCallParam{
					ID:       tc.ID,
					Function: openai.ChatCompletionMessageToolCallFunctionParam{Name: tc.Name, Arguments: args},
				}
			}
			asst := openai.ChatCompletionAssistantMessageParam{ToolCalls: calls}
			if m.Content != "" {
				asst.Content.OfString = openai.String(m.Content)
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &asst})
		case ports.RoleTool:
			out = append(out, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

func toOpenAITools(specs []ports.ToolSpec) []openai.ChatCompletionToolParam {
	if len(specs) == 0 {
		return nil
	}
	out := make([]openai.ChatCompletionToolParam, len(specs))
	for i, t := range specs {
		var params map[string]any
		if len(t.Schema) > 0 {
			_ = json.Unmarshal(t.Schema, &params)
		}
		out[i] = openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  openai.FunctionParameters(params),
			},
		}
	}
	return out
}
