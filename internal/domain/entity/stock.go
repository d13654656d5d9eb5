package entity

import "github.com/shopspring/decimal"

// InventoryItem fila del join stock ⋈ stores ⋈ products para la tienda propia.
// Solo se consideran filas con available_quantity > 0.
type InventoryItem struct {
	StoreID           string
	StoreName         string
	ProductName       string
	Category          string
	Subcategory       string
	Brand             string
	Description       string
	BasePrice         decimal.Decimal
	Materials         string
	ColorsAvailable   string
	WarrantyMonths    int
	Color             string
	AvailableQuantity int
	LocationInStore   string
}

// StoreProductMatch fila de disponibilidad de un producto en cualquier tienda
// (usada por check_product_availability y search_products).
type StoreProductMatch struct {
	StoreID           string
	StoreName         string
	Address           string
	City              string
	State             string
	ZipCode           string
	Phone             string
	ProductName       string
	Category          string
	Subcategory       string
	Brand             string
	BasePrice         decimal.Decimal
	Color             string
	AvailableQuantity int
	LocationInStore   string
}
