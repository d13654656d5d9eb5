package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo consultas de solo lectura sobre stock ⋈ stores ⋈ products.
type InventoryRepo struct {
	q Querier
	t Tables
}

// NewInventoryRepository construye el adaptador. Pasar pool, conexión o tx (Querier).
func NewInventoryRepository(q Querier, t Tables) *InventoryRepo {
	return &InventoryRepo{q: q, t: t}
}

// FindStoreStock stock disponible de una tienda con los filtros suministrados.
func (r *InventoryRepo) FindStoreStock(ctx context.Context, storeID string, f repository.InventoryFilter) ([]entity.InventoryItem, error) {
	query, args := buildStoreStockQuery(r.t, storeID, f)
	rows, err := r.q.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("find store stock: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.StoreID,
			&it.StoreName,
			&it.ProductName,
			&it.Category,
			&it.Subcategory,
			&it.Brand,
			&it.Description,
			&it.BasePrice,
			&it.Materials,
			&it.ColorsAvailable,
			&it.WarrantyMonths,
			&it.Color,
			&it.AvailableQuantity,
			&it.LocationInStore,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find store stock: %w", err)
	}
	return list, nil
}

// FindOtherStores tiendas alternativas (máximo limit) que tienen el artículo.
func (r *InventoryRepo) FindOtherStores(ctx context.Context, excludeStoreID string, f repository.InventoryFilter, limit int) ([]entity.StoreLocation, error) {
	query, args := buildOtherStoresQuery(r.t, excludeStoreID, f, limit)
	rows, err := r.q.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("find other stores: %w", err)
	}
	defer rows.Close()

	var list []entity.StoreLocation
	for rows.Next() {
		var loc entity.StoreLocation
		if err := rows.Scan(
			&loc.StoreName, &loc.StoreID, &loc.Address, &loc.City, &loc.State, &loc.ZipCode, &loc.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan store location: %w", err)
		}
		list = append(list, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find other stores: %w", err)
	}
	return list, nil
}

// FindAvailability disponibilidad de un producto en todas las tiendas.
func (r *InventoryRepo) FindAvailability(ctx context.Context, productName string) ([]entity.StoreProductMatch, error) {
	query, args := buildAvailabilityQuery(r.t, productName)
	list, err := r.queryStoreProducts(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("find availability: %w", err)
	}
	return list, nil
}

// SearchProducts búsqueda de productos en todas las tiendas.
func (r *InventoryRepo) SearchProducts(ctx context.Context, productName string, limit int) ([]entity.StoreProductMatch, error) {
	query, args := buildSearchQuery(r.t, productName, limit)
	list, err := r.queryStoreProducts(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

func (r *InventoryRepo) queryStoreProducts(ctx context.Context, query string, args pgx.NamedArgs) ([]entity.StoreProductMatch, error) {
	rows, err := r.q.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entity.StoreProductMatch
	for rows.Next() {
		var m entity.StoreProductMatch
		if err := rows.Scan(
			&m.StoreID,
			&m.StoreName,
			&m.Address,
			&m.City,
			&m.State,
			&m.ZipCode,
			&m.Phone,
			&m.ProductName,
			&m.Category,
			&m.Subcategory,
			&m.Brand,
			&m.BasePrice,
			&m.Color,
			&m.AvailableQuantity,
			&m.LocationInStore,
		); err != nil {
			return nil, fmt.Errorf("scan store product: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
