package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/floor-assistant/internal/domain/repository"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// SearchResultLimit máximo de filas de search_products.
const SearchResultLimit = 50

// ProductQuery argumento de las herramientas que buscan un producto en todas las tiendas.
type ProductQuery struct {
	ProductName string `json:"product_name"`
}

// AvailabilityUseCase búsquedas de producto en toda la cadena (sin restringir a la tienda propia).
type AvailabilityUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(repo repository.InventoryRepository, log *logger.Logger) *AvailabilityUseCase {
	return &AvailabilityUseCase{repo: repo, log: log.Named("availability")}
}

// CheckProductAvailability lista las tiendas con stock disponible del producto.
func (uc *AvailabilityUseCase) CheckProductAvailability(ctx context.Context, q ProductQuery) string {
	const errPrefix = "Error checking product availability: "
	name := strings.TrimSpace(q.ProductName)
	if name == "" {
		return errPrefix + "product_name is required"
	}

	rows, err := uc.repo.FindAvailability(ctx, name)
	if err != nil {
		uc.log.Error().Err(err).Str("product_name", name).Msg("disponibilidad fallida")
		return errPrefix + err.Error()
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No available stock found for products matching '%s'", name)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		line := fmt.Sprintf("%s %s (Store %s): %s - %d available, %s",
			bullet, r.StoreName, r.StoreID, r.ProductName, r.AvailableQuantity, formatPrice(r.BasePrice))
		if r.Color != "" {
			line += " - " + r.Color
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("Product availability for '%s':\n", name) + strings.Join(lines, "\n")
}

// SearchProducts detalle de producto por tienda, acotado a SearchResultLimit filas.
func (uc *AvailabilityUseCase) SearchProducts(ctx context.Context, q ProductQuery) string {
	const errPrefix = "Error searching products: "
	name := strings.TrimSpace(q.ProductName)
	if name == "" {
		return errPrefix + "product_name is required"
	}

	rows, err := uc.repo.SearchProducts(ctx, name, SearchResultLimit)
	if err != nil {
		uc.log.Error().Err(err).Str("product_name", name).Msg("búsqueda de productos fallida")
		return errPrefix + err.Error()
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No products found matching '%s'", name)
	}

	entries := make([]string, 0, len(rows))
	for _, r := range rows {
		var b strings.Builder
		fmt.Fprintf(&b, "%s Store: %s (%s)\n", bullet, r.StoreName, r.StoreID)
		fmt.Fprintf(&b, "  Address: %s, %s, %s %s\n", r.Address, r.City, r.State, r.ZipCode)
		fmt.Fprintf(&b, "  Phone: %s\n", r.Phone)
		fmt.Fprintf(&b, "  Product: %s (%s, %s, %s)\n", r.ProductName, r.Category, r.Subcategory, r.Brand)
		fmt.Fprintf(&b, "  Price: %s\n", formatPrice(r.BasePrice))
		fmt.Fprintf(&b, "  Available Quantity: %d\n", r.AvailableQuantity)
		fmt.Fprintf(&b, "  Color: %s\n", r.Color)
		fmt.Fprintf(&b, "  Location in Store: %s\n", r.LocationInStore)
		entries = append(entries, b.String())
	}
	return fmt.Sprintf("Products matching '%s':\n", name) + strings.Join(entries, "\n\n")
}
