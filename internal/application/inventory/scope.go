package inventory

import "github.com/jhoicas/floor-assistant/pkg/config"

// Scope identifica la tienda propia y el warehouse consultado. Se construye una vez
// al arrancar y se inyecta en los casos de uso; nada se lee del entorno por llamada.
type Scope struct {
	StoreID   string
	StoreName string // opcional, solo para los mensajes de disculpa
	Project   string
	Dataset   string
}

// NewScope construye el Scope a partir de la configuración cargada.
func NewScope(cfg *config.Config) Scope {
	return Scope{
		StoreID:   cfg.Store.ID,
		StoreName: cfg.Store.Name,
		Project:   cfg.Warehouse.Project,
		Dataset:   cfg.Warehouse.Dataset,
	}
}
