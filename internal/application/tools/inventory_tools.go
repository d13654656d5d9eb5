package tools

import "github.com/jhoicas/floor-assistant/internal/application/inventory"

// Nombres de las herramientas expuestas al agente.
const (
	CheckOurStoreInventory   = "check_our_store_inventory"
	CheckProductAvailability = "check_product_availability"
	SearchProducts           = "search_products"
	ListStoreIDs             = "list_store_ids"
	GetOurStoreInfo          = "get_our_store_info"
	TestStoreExists          = "test_store_exists"
	GetProductCategories     = "get_product_categories"
	GetBrandsAndProducts     = "get_brands_and_products"
)

// InventoryTools construye las herramientas de inventario sobre los casos de uso.
func InventoryTools(
	lookup *inventory.LookupUseCase,
	availability *inventory.AvailabilityUseCase,
	directory *inventory.DirectoryUseCase,
) []Tool {
	productNameParam := map[string]ToolProperty{
		"product_name": {Type: "string", Description: "Product name or part of it (case-insensitive)"},
	}

	return []Tool{
		newJSONTool(ToolDef{
			Name: CheckOurStoreInventory,
			Description: "Check inventory for our specific store. All filters are optional partial matches. " +
				"If nothing matches at our store, nearby alternatives at other locations are suggested.",
			Parameters: ToolParameters{
				Type: "object",
				Properties: map[string]ToolProperty{
					"product_name": {Type: "string", Description: "Optional product name to filter by"},
					"color":        {Type: "string", Description: "Optional color to filter by"},
					"material":     {Type: "string", Description: "Optional material to filter by"},
				},
			},
		}, lookup.CheckOurStoreInventory),

		newJSONTool(ToolDef{
			Name:        CheckProductAvailability,
			Description: "Check product availability across all stores.",
			Parameters:  ToolParameters{Type: "object", Properties: productNameParam, Required: []string{"product_name"}},
		}, availability.CheckProductAvailability),

		newJSONTool(ToolDef{
			Name:        SearchProducts,
			Description: "Search for products across all stores, with store address, price, color and location in store.",
			Parameters:  ToolParameters{Type: "object", Properties: productNameParam, Required: []string{"product_name"}},
		}, availability.SearchProducts),

		newNoArgTool(ToolDef{
			Name:        ListStoreIDs,
			Description: "List all available store IDs with their contact information.",
			Parameters:  noParams(),
		}, directory.ListStoreIDs),

		newNoArgTool(ToolDef{
			Name:        GetOurStoreInfo,
			Description: "Get information about our specific store.",
			Parameters:  noParams(),
		}, directory.GetOurStoreInfo),

		newNoArgTool(ToolDef{
			Name:        TestStoreExists,
			Description: "Diagnostic: test whether our configured store ID exists in the database.",
			Parameters:  noParams(),
		}, directory.TestStoreExists),

		newNoArgTool(ToolDef{
			Name:        GetProductCategories,
			Description: "Get all product categories and subcategories available in the database.",
			Parameters:  noParams(),
		}, directory.GetProductCategories),

		newNoArgTool(ToolDef{
			Name:        GetBrandsAndProducts,
			Description: "Get all brands and their associated products, grouped by brand.",
			Parameters:  noParams(),
		}, directory.GetBrandsAndProducts),
	}
}
