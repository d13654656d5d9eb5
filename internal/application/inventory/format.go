package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

const bullet = "•"

// formatPrice siempre con exactamente dos decimales (19.5 -> "$19.50").
func formatPrice(p decimal.Decimal) string {
	return "$" + p.StringFixed(2)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// formatInventoryItem entrada con viñeta para una fila de la tienda propia.
func formatInventoryItem(it entity.InventoryItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s - %s): %s\n", bullet, it.ProductName, it.Category, it.Subcategory, it.Description)
	fmt.Fprintf(&b, "  - Brand: %s\n", it.Brand)
	fmt.Fprintf(&b, "  - Materials: %s\n", it.Materials)
	fmt.Fprintf(&b, "  - Colors Available: %s\n", it.ColorsAvailable)
	fmt.Fprintf(&b, "  - Color: %s\n", it.Color)
	fmt.Fprintf(&b, "  - Available Quantity: %d\n", it.AvailableQuantity)
	fmt.Fprintf(&b, "  - Location in Store: %s\n", it.LocationInStore)
	fmt.Fprintf(&b, "  - Base Price: %s", formatPrice(it.BasePrice))
	return b.String()
}

// formatStoreLocation entrada con viñeta para una tienda alternativa.
func formatStoreLocation(loc entity.StoreLocation) string {
	return fmt.Sprintf("%s %s (Store %s): %s, %s, %s %s, Phone: %s",
		bullet, loc.StoreName, loc.StoreID, loc.Address, loc.City, loc.State, loc.ZipCode, loc.Phone)
}

// criteriaText describe los filtros suministrados: " with 'Sofa' and color 'Red'".
func criteriaText(f repository.InventoryFilter) string {
	var parts []string
	if f.ProductName != "" {
		parts = append(parts, fmt.Sprintf("'%s'", f.ProductName))
	}
	if f.Color != "" {
		parts = append(parts, fmt.Sprintf("color '%s'", f.Color))
	}
	if f.Material != "" {
		parts = append(parts, fmt.Sprintf("material '%s'", f.Material))
	}
	if len(parts) == 0 {
		return ""
	}
	return " with " + strings.Join(parts, " and ")
}
