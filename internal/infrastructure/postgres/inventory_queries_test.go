package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/floor-assistant/internal/domain/repository"
	"github.com/jhoicas/floor-assistant/pkg/config"
)

var testTables = NewTables(config.WarehouseConfig{Project: "adk-demo", Dataset: "mobilis"})

// selectList devuelve la parte SELECT ... antes del primer FROM.
func selectList(t *testing.T, query string) string {
	t.Helper()
	idx := strings.Index(query, "FROM")
	require.Positive(t, idx, "la consulta debe tener FROM")
	return query[:idx]
}

func TestNewTables_CalificaConProyectoYDataset(t *testing.T) {
	assert.Equal(t, `"adk-demo"."mobilis"."stock"`, testTables.Stock)
	assert.Equal(t, `"adk-demo"."mobilis"."stores"`, testTables.Stores)
	assert.Equal(t, `"adk-demo"."mobilis"."products"`, testTables.Products)

	soloDataset := NewTables(config.WarehouseConfig{Dataset: "mobilis"})
	assert.Equal(t, `"mobilis"."stock"`, soloDataset.Stock)

	noDataset := NewTables(config.WarehouseConfig{})
	assert.Equal(t, `"stock"`, noDataset.Stock)
}

func TestNewTables_ElProyectoCambiaLaConsulta(t *testing.T) {
	a := NewTables(config.WarehouseConfig{Project: "proj-a", Dataset: "mobilis"})
	b := NewTables(config.WarehouseConfig{Project: "proj-b", Dataset: "mobilis"})

	qa, _ := buildStoreStockQuery(a, "STORE_001", repository.InventoryFilter{})
	qb, _ := buildStoreStockQuery(b, "STORE_001", repository.InventoryFilter{})

	assert.NotEqual(t, qa, qb)
	assert.Contains(t, qa, `FROM "proj-a"."mobilis"."stock" s`)
	assert.Contains(t, qb, `FROM "proj-b"."mobilis"."stock" s`)
}

func TestNewTables_EscapaIdentificadores(t *testing.T) {
	tables := NewTables(config.WarehouseConfig{Dataset: `mo"bilis`})
	assert.Equal(t, `"mo""bilis"."stores"`, tables.Stores)
}

func TestBuildStoreStockQuery_SinFiltros(t *testing.T) {
	query, args := buildStoreStockQuery(testTables, "STORE_001", repository.InventoryFilter{})

	assert.Contains(t, query, "s.store_id = @store_id")
	assert.Contains(t, query, "s.available_quantity > 0")
	assert.Contains(t, query, "ORDER BY p.category, p.product_name")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "LIKE")
	assert.Equal(t, "STORE_001", args["store_id"])
	assert.Len(t, args, 1)
}

func TestBuildStoreStockQuery_FiltrosComoParametros(t *testing.T) {
	f := repository.InventoryFilter{ProductName: "Chair'; DROP TABLE stock; --", Color: "Red", Material: "Oak"}
	query, args := buildStoreStockQuery(testTables, "STORE_001", f)

	assert.NotContains(t, query, "DROP TABLE", "los valores del usuario nunca se interpolan")
	assert.Contains(t, query, "LOWER(p.product_name) LIKE LOWER(@product_name)")
	assert.Contains(t, query, "LOWER(s.color) LIKE LOWER(@color)")
	assert.NotContains(t, query, "colors_available) LIKE", "el color primario solo compara stock.color")
	assert.Contains(t, query, "LOWER(p.materials) LIKE LOWER(@material)")

	assert.Equal(t, "%Chair'; DROP TABLE stock; --%", args["product_name"])
	assert.Equal(t, "%Red%", args["color"])
	assert.Equal(t, "%Oak%", args["material"])
}

func TestBuildOtherStoresQuery_ExcluyeTiendaPropiaYLimita(t *testing.T) {
	f := repository.InventoryFilter{ProductName: "Sofa", Color: "Red"}
	query, args := buildOtherStoresQuery(testTables, "STORE_001", f, 5)

	assert.Contains(t, query, "s.store_id != @store_id")
	assert.Contains(t, query, "s.available_quantity > 0")
	assert.Contains(t, query, "ORDER BY st.store_name")
	assert.Contains(t, query, "LIMIT @limit")
	assert.Equal(t, 5, args["limit"])
	assert.Equal(t, "STORE_001", args["store_id"])
	assert.Equal(t, "%Sofa%", args["product_name"])
}

func TestBuildOtherStoresQuery_ColorAmpliado(t *testing.T) {
	f := repository.InventoryFilter{Color: "Red"}
	query, _ := buildOtherStoresQuery(testTables, "STORE_001", f, 5)

	assert.Contains(t, query,
		"(LOWER(s.color) LIKE LOWER(@color) OR LOWER(p.colors_available) LIKE LOWER(@color))")
}

func TestBuildOtherStoresQuery_SoloColumnasDeTienda(t *testing.T) {
	query, _ := buildOtherStoresQuery(testTables, "STORE_001", repository.InventoryFilter{Material: "Oak"}, 5)

	sel := selectList(t, query)
	assert.NotContains(t, sel, "p.")
	assert.NotContains(t, sel, "s.")
	for _, col := range []string{"st.store_name", "st.store_id", "st.address", "st.city", "st.state", "st.zip_code", "st.phone"} {
		assert.Contains(t, sel, col)
	}
}

func TestBuildSearchQuery_Limite50(t *testing.T) {
	query, args := buildSearchQuery(testTables, "Lamp", 50)

	assert.Contains(t, query, "ORDER BY p.product_name, st.store_name")
	assert.Equal(t, 50, args["limit"])
	assert.Equal(t, "%Lamp%", args["product_name"])
}

func TestBuildAvailabilityQuery_OrdenPorTienda(t *testing.T) {
	query, args := buildAvailabilityQuery(testTables, "Lamp")

	assert.Contains(t, query, "ORDER BY st.store_name, p.product_name")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, "%Lamp%", args["product_name"])
	assert.Contains(t, query, `FROM "adk-demo"."mobilis"."stock" s`)
}
