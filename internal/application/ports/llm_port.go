package ports

import (
	"context"
	"encoding/json"
)

// Roles de los mensajes de la conversación.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage mensaje de la conversación, incluidos los resultados de herramientas.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // assistant que pide herramientas
	ToolCallID string     `json:"tool_call_id,omitempty"` // role=tool
	ToolName   string     `json:"tool_name,omitempty"`    // role=tool; Gemini responde por nombre
}

// ToolCall invocación de herramienta solicitada por el modelo.
type ToolCall struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ArgsJSON string `json:"args_json"`
}

// ToolSpec definición de herramienta tal como se envía al proveedor.
type ToolSpec struct {
	Name        string
	Description string
	Schema      json.RawMessage // JSON Schema del input
}

// ChatRequest entrada de una vuelta del modelo.
type ChatRequest struct {
	System    string
	Messages  []ChatMessage
	Tools     []ToolSpec
	MaxTokens int
}

// ChatResponse respuesta del modelo: texto final o herramientas a ejecutar.
type ChatResponse struct {
	Content    string
	ToolCalls  []ToolCall
	StopReason string
}

// LLMService define el puerto de salida hacia el proveedor de IA con function calling.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
type LLMService interface {
	// ChatWithTools envía la conversación y las herramientas disponibles.
	// Si la respuesta trae ToolCalls el agente debe ejecutarlas y volver a llamar.
	ChatWithTools(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// Name nombre del proveedor (anthropic, gemini).
	Name() string
}
