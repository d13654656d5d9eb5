package inventory

import (
	"context"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

// fakeInventoryRepo registra las llamadas para verificar qué consultas se emitieron.
type fakeInventoryRepo struct {
	storeStock  []entity.InventoryItem
	otherStores []entity.StoreLocation
	matches     []entity.StoreProductMatch
	err         error
	fallbackErr error

	storeStockCalls []string
	fallbackCalls   []fallbackCall
	searchLimit     int
}

type fallbackCall struct {
	excludeStoreID string
	filter         repository.InventoryFilter
	limit          int
}

func (f *fakeInventoryRepo) FindStoreStock(_ context.Context, storeID string, _ repository.InventoryFilter) ([]entity.InventoryItem, error) {
	f.storeStockCalls = append(f.storeStockCalls, storeID)
	if f.err != nil {
		return nil, f.err
	}
	return f.storeStock, nil
}

func (f *fakeInventoryRepo) FindOtherStores(_ context.Context, excludeStoreID string, filter repository.InventoryFilter, limit int) ([]entity.StoreLocation, error) {
	f.fallbackCalls = append(f.fallbackCalls, fallbackCall{excludeStoreID, filter, limit})
	if f.fallbackErr != nil {
		return nil, f.fallbackErr
	}
	return f.otherStores, nil
}

func (f *fakeInventoryRepo) FindAvailability(_ context.Context, _ string) ([]entity.StoreProductMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

func (f *fakeInventoryRepo) SearchProducts(_ context.Context, _ string, limit int) ([]entity.StoreProductMatch, error) {
	f.searchLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

type fakeStoreRepo struct {
	stores []entity.Store
	err    error
}

func (f *fakeStoreRepo) GetByID(_ context.Context, storeID string) (*entity.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.stores {
		if f.stores[i].StoreID == storeID {
			return &f.stores[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) List(_ context.Context) ([]entity.Store, error) {
	return f.stores, f.err
}

func (f *fakeStoreRepo) Count(_ context.Context) (int, error) {
	return len(f.stores), f.err
}

func (f *fakeStoreRepo) SampleIDs(_ context.Context, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var ids []string
	for i := 0; i < len(f.stores) && i < limit; i++ {
		ids = append(ids, f.stores[i].StoreID)
	}
	return ids, nil
}

type fakeCatalogRepo struct {
	categories []entity.CategoryCount
	products   []entity.Product
	err        error
}

func (f *fakeCatalogRepo) CategorySummary(_ context.Context) ([]entity.CategoryCount, error) {
	return f.categories, f.err
}

func (f *fakeCatalogRepo) BrandProducts(_ context.Context) ([]entity.Product, error) {
	return f.products, f.err
}
