package repository

import (
	"context"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
)

// CatalogRepository puerto de solo lectura sobre la tabla products.
type CatalogRepository interface {
	// CategorySummary conteo por categoría/subcategoría, ordenado por ambas.
	CategorySummary(ctx context.Context) ([]entity.CategoryCount, error)
	// BrandProducts productos con marca, ordenados por marca y nombre.
	BrandProducts(ctx context.Context) ([]entity.Product, error)
}
