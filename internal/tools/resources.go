package tools

import (
	"context"

	"brewfather-mcp/internal/format"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	categoriesURI = "brewfather://inventory/categories"
	summaryURI    = "brewfather://inventory/summary"
)

const stylesSystem = `You are an experienced homebrewer with deep knowledge of the brewing process at homebrewer level, ingredients and styles.
You are not focused on giving a full recipe, just an overview of what styles are possible based on the ingredients already in the inventory and by acquiring extra ingredients.
Try to optimize the usage of the ingredients in the inventory but don't go out of the style; suggest acquiring new ingredients to stay inside the style guidelines.`

const stylesRequest = `What are the styles I can brew with my Brewfather inventory?
Don't be limited to the items in the inventory, but try to use as much as possible from the inventory.
Use styles from the latest BJCP.`

func (h *Handler) registerResources(srv *mcp.Server) {
	srv.AddResource(&mcp.Resource{
		URI:         categoriesURI,
		Name:        "inventory-categories",
		Description: "The Brewfather inventory categories and their units",
		MIMEType:    "text/plain",
	}, func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return textResource(categoriesURI, format.Categories()), nil
	})

	srv.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "inventory-summary",
		Description: "Overview of every item in stock, with lot numbers and best-before dates",
		MIMEType:    "text/plain",
	}, func(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		text, err := h.inventorySummary(ctx)
		if err != nil {
			h.log.Error().Err(err).Str("uri", summaryURI).Msg("Failed to read resource")
			return nil, err
		}
		return textResource(summaryURI, text), nil
	})
}

func textResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}
}

func (h *Handler) registerPrompts(srv *mcp.Server) {
	srv.AddPrompt(&mcp.Prompt{
		Name:        "suggest_beer_styles",
		Description: "Ask to list all the possible BJCP styles based on the inventory.",
	}, func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "BJCP styles brewable from the current inventory",
			Messages: []*mcp.PromptMessage{
				{Role: "assistant", Content: &mcp.TextContent{Text: stylesSystem}},
				{Role: "user", Content: &mcp.TextContent{Text: stylesRequest}},
			},
		}, nil
	})
}
