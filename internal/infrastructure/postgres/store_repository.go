package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre la tabla stores del warehouse.
type StoreRepo struct {
	q Querier
	t Tables
}

// NewStoreRepository construye el adaptador de tiendas.
func NewStoreRepository(q Querier, t Tables) *StoreRepo {
	return &StoreRepo{q: q, t: t}
}

func (r *StoreRepo) storeColumns() string {
	return `
		SELECT store_id, store_name,
		       COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''),
		       COALESCE(phone, ''), COALESCE(manager, ''), COALESCE(store_type, '')
		FROM ` + r.t.Stores
}

func scanStore(row pgx.Row, s *entity.Store) error {
	return row.Scan(
		&s.StoreID, &s.StoreName, &s.Address, &s.City, &s.State, &s.ZipCode,
		&s.Phone, &s.Manager, &s.StoreType,
	)
}

// GetByID obtiene una tienda por ID. Devuelve nil, nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, storeID string) (*entity.Store, error) {
	query := r.storeColumns() + `
		WHERE store_id = @store_id`
	var s entity.Store
	err := scanStore(r.q.QueryRow(ctx, query, pgx.NamedArgs{"store_id": storeID}), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List todas las tiendas ordenadas por store_id.
func (r *StoreRepo) List(ctx context.Context) ([]entity.Store, error) {
	query := r.storeColumns() + `
		ORDER BY store_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []entity.Store
	for rows.Next() {
		var s entity.Store
		if err := scanStore(rows, &s); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count número total de tiendas.
func (r *StoreRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM `+r.t.Stores).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

// SampleIDs primeros limit store_id en el orden de la tabla.
func (r *StoreRepo) SampleIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT store_id FROM `+r.t.Stores+` LIMIT @limit`, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("sample store ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("sample store ids: %w", err)
	}
	return ids, nil
}
