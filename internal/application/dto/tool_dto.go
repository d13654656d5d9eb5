package dto

// ToolCallResponse resultado de POST /api/tools/:name. Output es el texto de la
// herramienta tal cual, incluidos los mensajes de error capturados.
type ToolCallResponse struct {
	Tool   string `json:"tool"`
	Output string `json:"output"`
}
