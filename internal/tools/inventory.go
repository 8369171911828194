package tools

import (
	"context"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/format"
	"brewfather-mcp/internal/inventory"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// inventoryQuery is sent by every inventory list tool: only items in stock,
// first page of 50.
func inventoryQuery() *brewfather.ListQuery {
	return &brewfather.ListQuery{InventoryExists: true, Limit: 50}
}

type noInput struct{}

type identifierInput struct {
	Identifier string `json:"identifier" jsonschema:"Identifier of the inventory item, as returned by the list tool"`
}

type itemInput struct {
	ItemID string `json:"item_id" jsonschema:"Identifier of the inventory item, as returned by the list tool"`
}

type inventoryUpdateInput struct {
	ItemID          string  `json:"item_id" jsonschema:"Identifier of the inventory item"`
	InventoryAmount float64 `json:"inventory_amount" jsonschema:"New absolute amount in stock"`
}

// listTool registers a tool rendering the first inventory page of a category.
func listTool[S any](srv *mcp.Server, h *Handler, tool *mcp.Tool, list func(context.Context, *brewfather.ListQuery) ([]S, error), render func([]S) string) {
	tool.Annotations = readOnly()
	addTool(srv, h, tool, func(ctx context.Context, _ noInput) (string, error) {
		items, err := list(ctx, inventoryQuery())
		if err != nil {
			return "", err
		}
		return render(items), nil
	})
}

// detailTool registers a tool rendering one record fetched by id. id picks
// the identifier out of the tool input.
func detailTool[In, D any](srv *mcp.Server, h *Handler, tool *mcp.Tool, id func(In) string, fetch func(context.Context, string) (D, error), render func(D) string) {
	tool.Annotations = readOnly()
	addTool(srv, h, tool, func(ctx context.Context, in In) (string, error) {
		d, err := fetch(ctx, id(in))
		if err != nil {
			return "", err
		}
		return render(d), nil
	})
}

func byIdentifier(in identifierInput) string { return in.Identifier }
func byItemID(in itemInput) string           { return in.ItemID }

func (h *Handler) registerInventoryTools(srv *mcp.Server) {
	addTool(srv, h, &mcp.Tool{
		Name:        "list_inventory_categories",
		Description: "Lists the available inventory categories.",
		Annotations: readOnly(),
	}, func(context.Context, noInput) (string, error) {
		return format.Categories(), nil
	})

	listTool(srv, h, &mcp.Tool{
		Name:        "list_fermentables",
		Description: "List all the fermentables (malts, adjuncts, grains, etc) inventory.",
	}, h.client.ListFermentables, format.FermentableList)

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_fermentable_detail",
		Description: "Detailed information of the fermentable item.",
	}, byIdentifier, h.client.Fermentable, format.FermentableDetail)

	listTool(srv, h, &mcp.Tool{
		Name:        "list_hops",
		Description: "Lists all hops in inventory with their basic properties like alpha acids, quantity, and usage type.",
	}, h.client.ListHops, format.HopList)

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_hop_detail",
		Description: "Detailed information about a specific hop including origin, characteristics, oil composition, and storage details.",
	}, byIdentifier, h.client.Hop, format.HopDetail)

	listTool(srv, h, &mcp.Tool{
		Name:        "list_yeasts",
		Description: "Lists all yeasts in inventory with their basic properties like attenuation, quantity, and type.",
	}, h.client.ListYeasts, format.YeastList)

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_yeast_detail",
		Description: "Detailed information about a specific yeast including manufacturer, specifications, temperature range, and storage details.",
	}, byIdentifier, h.client.Yeast, format.YeastDetail)

	listTool(srv, h, &mcp.Tool{
		Name:        "list_misc_items",
		Description: "Lists all miscellaneous inventory items.",
	}, h.client.ListMiscs, format.MiscList)

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_misc_detail",
		Description: "Get detailed information for a specific miscellaneous inventory item.",
	}, byItemID, h.client.Misc, format.MiscDetail)

	addTool(srv, h, &mcp.Tool{
		Name:        "inventory_summary",
		Description: "Creates a comprehensive overview of all inventory items including fermentables, hops, yeasts and miscellaneous items.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ noInput) (string, error) {
		return h.inventorySummary(ctx)
	})

	updates := []struct {
		name  string
		noun  string
		label string
		cat   brewfather.Category
	}{
		{"update_fermentable_inventory", "fermentable", "Fermentable", brewfather.Fermentables},
		{"update_hop_inventory", "hop", "Hop", brewfather.Hops},
		{"update_yeast_inventory", "yeast", "Yeast", brewfather.Yeasts},
		{"update_misc_inventory", "miscellaneous item", "Miscellaneous", brewfather.Miscs},
	}
	for _, u := range updates {
		addTool(srv, h, &mcp.Tool{
			Name:        u.name,
			Description: "Sets the inventory amount for a specific " + u.noun + ", in " + u.cat.Unit() + ".",
			Annotations: write(),
		}, func(ctx context.Context, in inventoryUpdateInput) (string, error) {
			if err := h.client.UpdateInventory(ctx, u.cat, in.ItemID, in.InventoryAmount); err != nil {
				return "", err
			}
			h.log.Info().Str("category", string(u.cat)).Str("id", in.ItemID).Float64("amount", in.InventoryAmount).Msg("Inventory updated")
			return format.InventoryUpdated(u.label, in.ItemID, in.InventoryAmount, u.cat.Unit()), nil
		})
	}
}

// inventorySummary renders the cross-category overview. Failed categories
// are logged by the service and marked in the text.
func (h *Handler) inventorySummary(ctx context.Context) (string, error) {
	sections, err := h.summary.Summary(ctx)
	if err != nil {
		return "", err
	}
	return inventory.Render(sections), nil
}
