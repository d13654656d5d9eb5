package repository

import (
	"context"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
)

// StoreRepository puerto de solo lectura para la tabla stores.
type StoreRepository interface {
	// GetByID devuelve nil, nil si la tienda no existe.
	GetByID(ctx context.Context, storeID string) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	Count(ctx context.Context) (int, error)
	SampleIDs(ctx context.Context, limit int) ([]string, error)
}
