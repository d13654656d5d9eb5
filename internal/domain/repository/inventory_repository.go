package repository

import (
	"context"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
)

// InventoryFilter filtros opcionales de subcadena (insensibles a mayúsculas).
// Un campo vacío significa "sin filtro".
type InventoryFilter struct {
	ProductName string
	Color       string
	Material    string
}

// IsEmpty indica si no se suministró ningún filtro.
func (f InventoryFilter) IsEmpty() bool {
	return f.ProductName == "" && f.Color == "" && f.Material == ""
}

// InventoryRepository puerto de solo lectura sobre stock ⋈ stores ⋈ products.
type InventoryRepository interface {
	// FindStoreStock devuelve el stock disponible de una tienda, ordenado por categoría y nombre.
	FindStoreStock(ctx context.Context, storeID string, f InventoryFilter) ([]entity.InventoryItem, error)
	// FindOtherStores devuelve hasta limit tiendas distintas de excludeStoreID que tienen
	// stock que cumple los filtros. El filtro de color también se compara contra
	// products.colors_available.
	FindOtherStores(ctx context.Context, excludeStoreID string, f InventoryFilter, limit int) ([]entity.StoreLocation, error)
	// FindAvailability disponibilidad de un producto en todas las tiendas.
	FindAvailability(ctx context.Context, productName string) ([]entity.StoreProductMatch, error)
	// SearchProducts búsqueda de productos en todas las tiendas, limitada a limit filas.
	SearchProducts(ctx context.Context, productName string, limit int) ([]entity.StoreProductMatch, error)
}
