package tools

import (
	"context"

	"brewfather-mcp/internal/format"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type recipeInput struct {
	RecipeID string `json:"recipe_id" jsonschema:"Identifier of the recipe, as returned by list_recipes"`
}

func (h *Handler) registerRecipeTools(srv *mcp.Server) {
	addTool(srv, h, &mcp.Tool{
		Name:        "list_recipes",
		Description: "Lists all recipes.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ noInput) (string, error) {
		recipes, err := h.client.ListRecipes(ctx, nil)
		if err != nil {
			return "", err
		}
		return format.RecipeList(recipes), nil
	})

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_recipe_detail",
		Description: "Get detailed information for a specific recipe including ingredients, process details and specifications.",
	}, func(in recipeInput) string { return in.RecipeID }, h.client.Recipe, format.Recipe)
}
