package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo consultas de solo lectura sobre el catálogo de productos.
type CatalogRepo struct {
	q Querier
	t Tables
}

// NewCatalogRepository construye el adaptador del catálogo.
func NewCatalogRepository(q Querier, t Tables) *CatalogRepo {
	return &CatalogRepo{q: q, t: t}
}

// CategorySummary conteo de productos por categoría y subcategoría.
func (r *CatalogRepo) CategorySummary(ctx context.Context) ([]entity.CategoryCount, error) {
	query := `
	SELECT category, COALESCE(subcategory, '') AS subcategory, COUNT(*) AS product_count
	FROM ` + r.t.Products + `
	WHERE category IS NOT NULL
	GROUP BY category, subcategory
	ORDER BY category, subcategory`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog.CategorySummary: %w", err)
	}
	defer rows.Close()

	var list []entity.CategoryCount
	for rows.Next() {
		var c entity.CategoryCount
		if err := rows.Scan(&c.Category, &c.Subcategory, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("catalog.CategorySummary scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// BrandProducts productos con marca, ordenados por marca y nombre.
func (r *CatalogRepo) BrandProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
	SELECT brand, product_name, COALESCE(category, ''), COALESCE(subcategory, ''),
	       COALESCE(base_price, 0)::NUMERIC
	FROM ` + r.t.Products + `
	WHERE brand IS NOT NULL
	ORDER BY brand, product_name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog.BrandProducts: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Brand, &p.ProductName, &p.Category, &p.Subcategory, &p.BasePrice); err != nil {
			return nil, fmt.Errorf("catalog.BrandProducts scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
