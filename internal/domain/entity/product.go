package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (tabla products del warehouse).
// ColorsAvailable y Materials son listas en texto libre tal como vienen de la fuente.
type Product struct {
	ProductID       string
	ProductName     string
	Category        string
	Subcategory     string
	Brand           string
	Description     string
	BasePrice       decimal.Decimal // se muestra siempre con 2 decimales
	Materials       string
	ColorsAvailable string
	WarrantyMonths  int
}

// CategoryCount conteo de productos por categoría/subcategoría.
type CategoryCount struct {
	Category     string
	Subcategory  string // vacío cuando el producto no tiene subcategoría
	ProductCount int
}
