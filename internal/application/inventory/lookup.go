package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/floor-assistant/internal/domain/repository"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// FallbackStoreLimit máximo de tiendas alternativas que se sugieren.
const FallbackStoreLimit = 5

// LookupRequest filtros opcionales de check_our_store_inventory.
type LookupRequest struct {
	ProductName string `json:"product_name,omitempty"`
	Color       string `json:"color,omitempty"`
	Material    string `json:"material,omitempty"`
}

// filter normaliza los filtros: espacios alrededor no cuentan como filtro.
func (r LookupRequest) filter() repository.InventoryFilter {
	return repository.InventoryFilter{
		ProductName: strings.TrimSpace(r.ProductName),
		Color:       strings.TrimSpace(r.Color),
		Material:    strings.TrimSpace(r.Material),
	}
}

// LookupUseCase consulta el inventario de la tienda propia y, si no hay resultados
// para los filtros dados, busca el artículo en otras tiendas.
type LookupUseCase struct {
	repo  repository.InventoryRepository
	scope Scope
	log   *logger.Logger
}

// NewLookupUseCase construye el caso de uso con el Scope fijo del despliegue.
func NewLookupUseCase(repo repository.InventoryRepository, scope Scope, log *logger.Logger) *LookupUseCase {
	return &LookupUseCase{repo: repo, scope: scope, log: log.Named("inventory_lookup")}
}

// CheckOurStoreInventory devuelve el reporte en texto del inventario de la tienda propia.
// Los errores de consulta no se propagan: se convierten en "Error checking inventory: ...".
func (uc *LookupUseCase) CheckOurStoreInventory(ctx context.Context, req LookupRequest) string {
	f := req.filter()
	storeID := uc.scope.StoreID

	uc.log.Debug().
		Str("store_id", storeID).
		Str("product_name", f.ProductName).
		Str("color", f.Color).
		Str("material", f.Material).
		Msg("consultando inventario de la tienda")

	items, err := uc.repo.FindStoreStock(ctx, storeID, f)
	if err != nil {
		return uc.fail(err, storeID)
	}

	if len(items) > 0 {
		entries := make([]string, 0, len(items))
		for _, it := range items {
			entries = append(entries, formatInventoryItem(it))
		}
		return fmt.Sprintf("Inventory for %s (Store %s):\n", items[0].StoreName, storeID) +
			strings.Join(entries, "\n")
	}

	if f.IsEmpty() {
		return fmt.Sprintf("No inventory found for store %s", storeID)
	}

	// Sin stock propio con filtros: buscar en otras tiendas.
	others, err := uc.repo.FindOtherStores(ctx, storeID, f, FallbackStoreLimit)
	if err != nil {
		return uc.fail(err, storeID)
	}
	if len(others) > FallbackStoreLimit {
		others = others[:FallbackStoreLimit]
	}

	criteria := criteriaText(f)
	if len(others) == 0 {
		return fmt.Sprintf("Sorry, we don't have items%s in stock at our store, and they're not available at other locations either.", criteria)
	}

	suggestions := make([]string, 0, len(others))
	for _, loc := range others {
		suggestions = append(suggestions, formatStoreLocation(loc))
	}
	return fmt.Sprintf("Sorry, we don't have items%s in stock at our store%s.\n\nHowever, I found these options at other locations:\n\n",
		criteria, uc.storeLabel()) + strings.Join(suggestions, "\n\n")
}

func (uc *LookupUseCase) storeLabel() string {
	if uc.scope.StoreName == "" {
		return ""
	}
	return " (" + uc.scope.StoreName + ")"
}

func (uc *LookupUseCase) fail(err error, storeID string) string {
	uc.log.Error().Err(err).Str("store_id", storeID).Msg("consulta de inventario fallida")
	return "Error checking inventory: " + err.Error()
}
