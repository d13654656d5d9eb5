// Package tools expone los casos de uso de inventario como herramientas invocables
// por el agente conversacional: definición (nombre, descripción, esquema JSON) y
// ejecución con argumentos JSON que siempre devuelve texto.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Tool es una función que el agente puede invocar.
type Tool interface {
	// Def devuelve la definición (nombre, descripción, esquema de parámetros).
	Def() ToolDef
	// Call ejecuta la herramienta con argumentos JSON y devuelve el texto resultado.
	// Nunca devuelve error: las fallas se reportan como texto.
	Call(ctx context.Context, argsJSON string) string
}

// ToolDef definición compatible con el formato function-calling de los LLM.
type ToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ToolParameters esquema JSON del input de la herramienta.
type ToolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required,omitempty"`
}

// ToolProperty describe un parámetro.
type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Schema devuelve el esquema de parámetros serializado.
func (d ToolDef) Schema() json.RawMessage {
	b, _ := json.Marshal(d.Parameters)
	return b
}

func noParams() ToolParameters {
	return ToolParameters{Type: "object", Properties: map[string]ToolProperty{}}
}

// jsonTool adapta una función tipada a Tool decodificando argsJSON en T.
type jsonTool[T any] struct {
	def ToolDef
	fn  func(ctx context.Context, in T) string
}

func newJSONTool[T any](def ToolDef, fn func(ctx context.Context, in T) string) Tool {
	return &jsonTool[T]{def: def, fn: fn}
}

func (t *jsonTool[T]) Def() ToolDef { return t.def }

func (t *jsonTool[T]) Call(ctx context.Context, argsJSON string) string {
	var in T
	if s := strings.TrimSpace(argsJSON); s != "" && s != "null" {
		if err := json.Unmarshal([]byte(s), &in); err != nil {
			return fmt.Sprintf("error: invalid arguments for %s: %v", t.def.Name, err)
		}
	}
	return t.fn(ctx, in)
}

// noArgTool herramienta sin parámetros; ignora los argumentos recibidos.
type noArgTool struct {
	def ToolDef
	fn  func(ctx context.Context) string
}

func newNoArgTool(def ToolDef, fn func(ctx context.Context) string) Tool {
	return &noArgTool{def: def, fn: fn}
}

func (t *noArgTool) Def() ToolDef { return t.def }

func (t *noArgTool) Call(ctx context.Context, _ string) string { return t.fn(ctx) }
