package dto

// ChatMessageDTO turno previo de la conversación (solo texto de user/assistant).
type ChatMessageDTO struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatRequest body para POST /api/agent/chat.
type ChatRequest struct {
	SessionID string           `json:"session_id,omitempty"`
	Message   string           `json:"message"`
	History   []ChatMessageDTO `json:"history,omitempty"`
}

// ToolUseDTO herramienta invocada durante la respuesta.
type ToolUseDTO struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	SessionID string       `json:"session_id"`
	Reply     string       `json:"reply"`
	ToolsUsed []ToolUseDTO `json:"tools_used"`
}
