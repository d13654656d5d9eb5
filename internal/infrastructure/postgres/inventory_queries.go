package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/floor-assistant/internal/domain/repository"
)

// stockJoin FROM común a todas las consultas de inventario.
func (t Tables) stockJoin() string {
	return fmt.Sprintf(`
	FROM %s s
	JOIN %s st ON s.store_id = st.store_id
	JOIN %s p  ON s.product_id = p.product_id`, t.Stock, t.Stores, t.Products)
}

// filterConditions agrega las condiciones de subcadena de los filtros suministrados.
// Con widenColor el color también se busca en products.colors_available.
func filterConditions(f repository.InventoryFilter, widenColor bool, conds []string, args pgx.NamedArgs) []string {
	if f.ProductName != "" {
		args["product_name"] = likePattern(f.ProductName)
		conds = append(conds, "LOWER(p.product_name) LIKE LOWER(@product_name)")
	}
	if f.Color != "" {
		args["color"] = likePattern(f.Color)
		if widenColor {
			conds = append(conds, "(LOWER(s.color) LIKE LOWER(@color) OR LOWER(p.colors_available) LIKE LOWER(@color))")
		} else {
			conds = append(conds, "LOWER(s.color) LIKE LOWER(@color)")
		}
	}
	if f.Material != "" {
		args["material"] = likePattern(f.Material)
		conds = append(conds, "LOWER(p.materials) LIKE LOWER(@material)")
	}
	return conds
}

// buildStoreStockQuery stock disponible de la tienda propia, ordenado por categoría y nombre.
func buildStoreStockQuery(t Tables, storeID string, f repository.InventoryFilter) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{"store_id": storeID}
	conds := filterConditions(f, false, []string{
		"s.store_id = @store_id",
		"s.available_quantity > 0",
	}, args)

	query := `
	SELECT
	    st.store_id,
	    st.store_name,
	    p.product_name,
	    COALESCE(p.category, '')            AS category,
	    COALESCE(p.subcategory, '')         AS subcategory,
	    COALESCE(p.brand, '')               AS brand,
	    COALESCE(p.description, '')         AS description,
	    COALESCE(p.base_price, 0)::NUMERIC  AS base_price,
	    COALESCE(p.materials, '')           AS materials,
	    COALESCE(p.colors_available, '')    AS colors_available,
	    COALESCE(p.warranty_months, 0)      AS warranty_months,
	    COALESCE(s.color, '')               AS color,
	    s.available_quantity,
	    COALESCE(s.location_in_store, '')   AS location_in_store` +
		t.stockJoin() + `
	WHERE ` + strings.Join(conds, "\n	  AND ") + `
	ORDER BY p.category, p.product_name`
	return query, args
}

// buildOtherStoresQuery tiendas distintas de la propia con stock que cumple los filtros.
// Solo proyecta identidad y contacto de la tienda.
func buildOtherStoresQuery(t Tables, excludeStoreID string, f repository.InventoryFilter, limit int) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{"store_id": excludeStoreID, "limit": limit}
	conds := filterConditions(f, true, []string{
		"s.store_id != @store_id",
		"s.available_quantity > 0",
	}, args)

	query := `
	SELECT DISTINCT
	    st.store_name,
	    st.store_id,
	    COALESCE(st.address, '')   AS address,
	    COALESCE(st.city, '')      AS city,
	    COALESCE(st.state, '')     AS state,
	    COALESCE(st.zip_code, '')  AS zip_code,
	    COALESCE(st.phone, '')     AS phone` +
		t.stockJoin() + `
	WHERE ` + strings.Join(conds, "\n	  AND ") + `
	ORDER BY st.store_name
	LIMIT @limit`
	return query, args
}

const storeProductColumns = `
	SELECT
	    st.store_id,
	    st.store_name,
	    COALESCE(st.address, '')            AS address,
	    COALESCE(st.city, '')               AS city,
	    COALESCE(st.state, '')              AS state,
	    COALESCE(st.zip_code, '')           AS zip_code,
	    COALESCE(st.phone, '')              AS phone,
	    p.product_name,
	    COALESCE(p.category, '')            AS category,
	    COALESCE(p.subcategory, '')         AS subcategory,
	    COALESCE(p.brand, '')               AS brand,
	    COALESCE(p.base_price, 0)::NUMERIC  AS base_price,
	    COALESCE(s.color, '')               AS color,
	    s.available_quantity,
	    COALESCE(s.location_in_store, '')   AS location_in_store`

// buildAvailabilityQuery disponibilidad de un producto en todas las tiendas.
func buildAvailabilityQuery(t Tables, productName string) (string, pgx.NamedArgs) {
	query := storeProductColumns + t.stockJoin() + `
	WHERE LOWER(p.product_name) LIKE LOWER(@product_name)
	  AND s.available_quantity > 0
	ORDER BY st.store_name, p.product_name`
	return query, pgx.NamedArgs{"product_name": likePattern(productName)}
}

// buildSearchQuery búsqueda de productos en todas las tiendas, acotada a limit filas.
func buildSearchQuery(t Tables, productName string, limit int) (string, pgx.NamedArgs) {
	query := storeProductColumns + t.stockJoin() + `
	WHERE LOWER(p.product_name) LIKE LOWER(@product_name)
	  AND s.available_quantity > 0
	ORDER BY p.product_name, st.store_name
	LIMIT @limit`
	return query, pgx.NamedArgs{"product_name": likePattern(productName), "limit": limit}
}
