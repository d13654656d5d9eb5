package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/floor-assistant/internal/domain/entity"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

func lampMatch(store, color string) entity.StoreProductMatch {
	return entity.StoreProductMatch{
		StoreID: store, StoreName: "Store " + store, Address: "1 Main St", City: "Austin", State: "TX", ZipCode: "78701",
		Phone: "555-0101", ProductName: "Floor Lamp", Category: "Lighting", Subcategory: "Floor", Brand: "Lumo",
		BasePrice: decimal.NewFromFloat(59.9), Color: color, AvailableQuantity: 2, LocationInStore: "Aisle 9",
	}
}

func TestCheckProductAvailability(t *testing.T) {
	repo := &fakeInventoryRepo{matches: []entity.StoreProductMatch{lampMatch("STORE_001", "Black"), lampMatch("STORE_002", "")}}
	uc := NewAvailabilityUseCase(repo, logger.Nop())

	out := uc.CheckProductAvailability(context.Background(), ProductQuery{ProductName: "lamp"})

	assert.Equal(t, "Product availability for 'lamp':\n"+
		"• Store STORE_001 (Store STORE_001): Floor Lamp - 2 available, $59.90 - Black\n"+
		"• Store STORE_002 (Store STORE_002): Floor Lamp - 2 available, $59.90", out)
}

func TestCheckProductAvailability_VacioYError(t *testing.T) {
	uc := NewAvailabilityUseCase(&fakeInventoryRepo{}, logger.Nop())
	assert.Equal(t, "No available stock found for products matching 'lamp'",
		uc.CheckProductAvailability(context.Background(), ProductQuery{ProductName: "lamp"}))

	uc = NewAvailabilityUseCase(&fakeInventoryRepo{err: errors.New("boom")}, logger.Nop())
	assert.Equal(t, "Error checking product availability: boom",
		uc.CheckProductAvailability(context.Background(), ProductQuery{ProductName: "lamp"}))
}

func TestCheckProductAvailability_NombreObligatorio(t *testing.T) {
	uc := NewAvailabilityUseCase(&fakeInventoryRepo{}, logger.Nop())
	assert.Equal(t, "Error checking product availability: product_name is required",
		uc.CheckProductAvailability(context.Background(), ProductQuery{ProductName: " "}))
}

func TestSearchProducts_LimiteYFormato(t *testing.T) {
	repo := &fakeInventoryRepo{matches: []entity.StoreProductMatch{lampMatch("STORE_001", "Black")}}
	uc := NewAvailabilityUseCase(repo, logger.Nop())

	out := uc.SearchProducts(context.Background(), ProductQuery{ProductName: "Lamp"})

	assert.Equal(t, SearchResultLimit, repo.searchLimit)
	assert.True(t, strings.HasPrefix(out, "Products matching 'Lamp':\n• Store: Store STORE_001 (STORE_001)\n"), out)
	assert.Contains(t, out, "  Product: Floor Lamp (Lighting, Floor, Lumo)\n")
	assert.Contains(t, out, "  Price: $59.90\n")
}

func TestSearchProducts_VacioYError(t *testing.T) {
	uc := NewAvailabilityUseCase(&fakeInventoryRepo{}, logger.Nop())
	assert.Equal(t, "No products found matching 'Lamp'", uc.SearchProducts(context.Background(), ProductQuery{ProductName: "Lamp"}))

	uc = NewAvailabilityUseCase(&fakeInventoryRepo{err: errors.New("boom")}, logger.Nop())
	assert.Equal(t, "Error searching products: boom", uc.SearchProducts(context.Background(), ProductQuery{ProductName: "Lamp"}))
}
