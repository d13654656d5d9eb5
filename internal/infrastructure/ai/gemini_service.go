package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini
// con function calling.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
// Si apiKey está vacío, las llamadas devuelven domain.ErrAIUnavailable.
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL cambia el endpoint (proxies, pruebas).
func (s *GeminiService) WithBaseURL(baseURL string) *GeminiService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// Name nombre del proveedor.
func (s *GeminiService) Name() string { return "gemini" }

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text             string                  `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResponse `json:"functionResponse,omitempty"`
}

type geminiFunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type geminiFunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFunctionDeclaration `json:"functionDeclarations"`
}

type geminiFunctionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ChatWithTools envía la conversación a Gemini. Gemini no asigna IDs a las llamadas,
// se generan aquí para que el agente pueda correlacionar los resultados.
func (s *GeminiService) ChatWithTools(ctx context.Context, req ports.ChatRequest) (*ports.ChatResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	payload := geminiRequest{
		Contents: toGeminiContents(req.Messages),
		GenerationConfig: genConfig{
			Temperature:     0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.System != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if decls := toGeminiDeclarations(req.Tools); len(decls) > 0 {
		payload.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, url.QueryEscape(s.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	cand := gemResp.Candidates[0]
	out := &ports.ChatResponse{StopReason: cand.FinishReason}
	var text strings.Builder
	for _, p := range cand.Content.Parts {
		if p.FunctionCall != nil {
			args := string(p.FunctionCall.Args)
			if args == "" {
				args = "{}"
			}
			out.ToolCalls = append(out.ToolCalls, ports.ToolCall{
				ID:       "call_" + uuid.NewString(),
				Name:     p.FunctionCall.Name,
				ArgsJSON: args,
			})
			continue
		}
		text.WriteString(p.Text)
	}
	out.Content = strings.TrimSpace(text.String())
	return out, nil
}

// toGeminiContents convierte el historial: assistant → model, resultados de
// herramientas → functionResponse (agrupados en un mismo turno user).
func toGeminiContents(msgs []ports.ChatMessage) []geminiContent {
	var out []geminiContent
	for _, m := range msgs {
		switch m.Role {
		case ports.RoleAssistant:
			c := geminiContent{Role: "model"}
			if m.Content != "" {
				c.Parts = append(c.Parts, geminiPart{Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				args := json.RawMessage(tc.ArgsJSON)
				if !json.Valid(args) {
					args = json.RawMessage("{}")
				}
				c.Parts = append(c.Parts, geminiPart{FunctionCall: &geminiFunctionCall{Name: tc.Name, Args: args}})
			}
			if len(c.Parts) > 0 {
				out = append(out, c)
			}
		case ports.RoleTool:
			part := geminiPart{FunctionResponse: &geminiFunctionResponse{
				Name:     m.ToolName,
				Response: map[string]any{"content": m.Content},
			}}
			if n := len(out); n > 0 && out[n-1].Role == "user" && out[n-1].Parts[0].FunctionResponse != nil {
				out[n-1].Parts = append(out[n-1].Parts, part)
				continue
			}
			out = append(out, geminiContent{Role: "user", Parts: []geminiPart{part}})
		default:
			out = append(out, geminiContent{Role: "user", Parts: []geminiPart{{Text: m.Content}}})
		}
	}
	return out
}

// toGeminiDeclarations omite parameters cuando la herramienta no tiene propiedades:
// Gemini rechaza objetos sin properties.
func toGeminiDeclarations(specs []ports.ToolSpec) []geminiFunctionDeclaration {
	out := make([]geminiFunctionDeclaration, 0, len(specs))
	for _, t := range specs {
		d := geminiFunctionDeclaration{Name: t.Name, Description: t.Description}
		var probe struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if len(t.Schema) > 0 && json.Unmarshal(t.Schema, &probe) == nil && len(probe.Properties) > 0 {
			d.Parameters = t.Schema
		}
		out = append(out, d)
	}
	return out
}
