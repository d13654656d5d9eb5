package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/floor-assistant/internal/domain"
)

// Registry administra las herramientas disponibles para el agente.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry crea un registro con las herramientas dadas.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register agrega (o reemplaza) una herramienta por nombre.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Def().Name] = t
}

// Get devuelve una herramienta por nombre.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
	}
	return t, nil
}

// Defs definiciones ordenadas por nombre para las peticiones al LLM.
func (r *Registry) Defs() []ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ToolDef, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Def())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Dispatch ejecuta la herramienta nombrada. Una herramienta desconocida se reporta como texto.
func (r *Registry) Dispatch(ctx context.Context, name, argsJSON string) string {
	t, err := r.Get(name)
	if err != nil {
		return fmt.Sprintf("error: unknown tool %q", name)
	}
	return t.Call(ctx, argsJSON)
}
