package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/floor-assistant/internal/domain/repository"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

// storeSampleSize número de store_id de muestra en el diagnóstico.
const storeSampleSize = 5

// DirectoryUseCase consultas de directorio: tiendas y catálogo.
type DirectoryUseCase struct {
	stores  repository.StoreRepository
	catalog repository.CatalogRepository
	scope   Scope
	log     *logger.Logger
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(
	stores repository.StoreRepository,
	catalog repository.CatalogRepository,
	scope Scope,
	log *logger.Logger,
) *DirectoryUseCase {
	return &DirectoryUseCase{stores: stores, catalog: catalog, scope: scope, log: log.Named("directory")}
}

func (uc *DirectoryUseCase) fail(prefix string, err error) string {
	uc.log.Error().Err(err).Str("store_id", uc.scope.StoreID).Msg(prefix)
	return prefix + ": " + err.Error()
}

// ListStoreIDs lista todas las tiendas con su contacto.
func (uc *DirectoryUseCase) ListStoreIDs(ctx context.Context) string {
	stores, err := uc.stores.List(ctx)
	if err != nil {
		return uc.fail("Error listing store IDs", err)
	}
	if len(stores) == 0 {
		return "No stores found in the database"
	}

	entries := make([]string, 0, len(stores))
	for _, s := range stores {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s: %s - %s\n", bullet, s.StoreID, s.StoreName, s.City)
		fmt.Fprintf(&b, "  Address: %s\n", s.Address)
		fmt.Fprintf(&b, "  State: %s\n", s.State)
		fmt.Fprintf(&b, "  Zip Code: %s\n", s.ZipCode)
		fmt.Fprintf(&b, "  Phone: %s\n", s.Phone)
		fmt.Fprintf(&b, "  Manager: %s\n", s.Manager)
		fmt.Fprintf(&b, "  Store Type: %s\n", s.StoreType)
		entries = append(entries, b.String())
	}
	return "Available stores:\n" + strings.Join(entries, "\n")
}

// GetOurStoreInfo ficha de la tienda propia.
func (uc *DirectoryUseCase) GetOurStoreInfo(ctx context.Context) string {
	s, err := uc.stores.GetByID(ctx, uc.scope.StoreID)
	if err != nil {
		return uc.fail("Error getting store info", err)
	}
	if s == nil {
		return fmt.Sprintf("No store found with ID %s", uc.scope.StoreID)
	}
	return fmt.Sprintf(`Store %s Information:
%s Store Name: %s
%s Address: %s
%s City: %s
%s State: %s
%s Zip Code: %s
%s Phone: %s
%s Manager: %s
%s Store Type: %s`,
		s.StoreID,
		bullet, s.StoreName,
		bullet, s.Address,
		bullet, s.City,
		bullet, s.State,
		bullet, s.ZipCode,
		bullet, orNA(s.Phone),
		bullet, orNA(s.Manager),
		bullet, orNA(s.StoreType),
	)
}

// TestStoreExists diagnóstico: verifica que el STORE_ID configurado existe en el warehouse.
func (uc *DirectoryUseCase) TestStoreExists(ctx context.Context) string {
	const prefix = "Error testing store"
	total, err := uc.stores.Count(ctx)
	if err != nil {
		return uc.fail(prefix, err)
	}
	sample, err := uc.stores.SampleIDs(ctx, storeSampleSize)
	if err != nil {
		return uc.fail(prefix, err)
	}
	s, err := uc.stores.GetByID(ctx, uc.scope.StoreID)
	if err != nil {
		return uc.fail(prefix, err)
	}

	quoted := make([]string, len(sample))
	for i, id := range sample {
		quoted[i] = "'" + id + "'"
	}
	found := "NO"
	if s != nil {
		found = "YES"
	}
	return fmt.Sprintf(`Store Test Results:
%s Total stores in database: %d
%s Sample store IDs: [%s]
%s Looking for store: %s
%s Store found: %s`,
		bullet, total,
		bullet, strings.Join(quoted, ", "),
		bullet, uc.scope.StoreID,
		bullet, found,
	)
}

// GetProductCategories categorías y subcategorías con su conteo de productos.
func (uc *DirectoryUseCase) GetProductCategories(ctx context.Context) string {
	rows, err := uc.catalog.CategorySummary(ctx)
	if err != nil {
		return uc.fail("Error retrieving product categories", err)
	}
	if len(rows) == 0 {
		return "No product categories found in the database."
	}

	type group struct {
		name  string
		total int
		lines []string
	}
	var groups []*group
	for _, r := range rows {
		if len(groups) == 0 || groups[len(groups)-1].name != r.Category {
			groups = append(groups, &group{name: r.Category})
		}
		g := groups[len(groups)-1]
		sub := r.Subcategory
		if sub == "" {
			sub = "General"
		}
		g.total += r.ProductCount
		g.lines = append(g.lines, fmt.Sprintf("  %s %s (%d products)", bullet, sub, r.ProductCount))
	}

	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		blocks = append(blocks,
			fmt.Sprintf("**%s** (%d total products)\n", g.name, g.total)+strings.Join(g.lines, "\n"))
	}
	return "Available Product Categories:\n\n" + strings.Join(blocks, "\n\n")
}

// GetBrandsAndProducts productos agrupados por marca.
func (uc *DirectoryUseCase) GetBrandsAndProducts(ctx context.Context) string {
	products, err := uc.catalog.BrandProducts(ctx)
	if err != nil {
		return uc.fail("Error retrieving brands and products", err)
	}
	if len(products) == 0 {
		return "No brands found in the database."
	}

	type group struct {
		brand string
		lines []string
	}
	var groups []*group
	for _, p := range products {
		if len(groups) == 0 || groups[len(groups)-1].brand != p.Brand {
			groups = append(groups, &group{brand: p.Brand})
		}
		g := groups[len(groups)-1]
		line := fmt.Sprintf("  %s %s (%s", bullet, p.ProductName, p.Category)
		if p.Subcategory != "" {
			line += " - " + p.Subcategory
		}
		line += ") - " + formatPrice(p.BasePrice)
		g.lines = append(g.lines, line)
	}

	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		blocks = append(blocks,
			fmt.Sprintf("**%s** (%d products)\n", g.brand, len(g.lines))+strings.Join(g.lines, "\n"))
	}
	return "Available Brands and Their Products:\n\n" + strings.Join(blocks, "\n\n")
}
