// Package tools exposes the Brewfather facade to MCP clients as tools,
// resources and prompts. Every tool returns plain text rendered by the
// format package; failures come back as tool results with IsError set so the
// calling agent can see and report them.
package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/inventory"
	"brewfather-mcp/internal/models"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// ServerName is reported to clients during initialization.
const ServerName = "brewfather-mcp"

const instructions = `Tools for a Brewfather account: inventory (fermentables, hops, yeasts, miscellaneous items), recipes and batches.
List tools return identifiers; pass them to the matching get_*_detail tool.
Inventory update tools set an absolute amount, in kg for fermentables, grams for hops, packets for yeasts and units for miscellaneous items.
Batch statuses are Planning, Brewing, Fermenting, Conditioning, Completed and Archived.`

// Client is the Brewfather facade used by the tools. *brewfather.Client
// implements it.
type Client interface {
	inventory.Source
	UpdateInventory(ctx context.Context, cat brewfather.Category, id string, amount float64) error
	ListBatches(ctx context.Context, q *brewfather.ListQuery) ([]models.BatchSummary, error)
	Batch(ctx context.Context, id string) (*models.BatchDetail, error)
	UpdateBatch(ctx context.Context, id string, fields brewfather.BatchUpdate) error
	BatchBrewTracker(ctx context.Context, id string) (*models.BrewTrackerStatus, error)
	BatchLastReading(ctx context.Context, id string) (*models.Reading, error)
	BatchReadings(ctx context.Context, id string) ([]models.Reading, error)
	ListRecipes(ctx context.Context, q *brewfather.ListQuery) ([]models.RecipeSummary, error)
	Recipe(ctx context.Context, id string) (*models.RecipeDetail, error)
}

var _ Client = (*brewfather.Client)(nil)

type Handler struct {
	client  Client
	summary *inventory.Service
	log     zerolog.Logger
}

func NewHandler(client Client, logger zerolog.Logger) *Handler {
	return &Handler{
		client:  client,
		summary: inventory.NewService(client, logger),
		log:     logger,
	}
}

// NewServer builds an MCP server with every tool, resource and prompt
// registered against h.
func NewServer(h *Handler, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})
	h.registerInventoryTools(srv)
	h.registerBatchTools(srv)
	h.registerRecipeTools(srv)
	h.registerResources(srv)
	h.registerPrompts(srv)
	return srv
}

func boolPtr(b bool) *bool {
	return &b
}

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// write marks tools that overwrite upstream values. Repeating a call with
// the same arguments leaves the same state.
func write() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(true),
	}
}

// toolFunc is the body of a tool: it returns the text shown to the agent.
type toolFunc[In any] func(ctx context.Context, in In) (string, error)

// addTool registers fn under tool, converting its error into an IsError
// result and logging it.
func addTool[In any](srv *mcp.Server, h *Handler, tool *mcp.Tool, fn toolFunc[In]) {
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		text, err := fn(ctx, in)
		if err != nil {
			h.log.Error().Err(err).Str("tool", tool.Name).Dur("duration", time.Since(start)).Msg("Tool call failed")
			return errorResult(err), nil, nil
		}
		h.log.Debug().Str("tool", tool.Name).Dur("duration", time.Since(start)).Msg("Tool call completed")
		return textResult(text), nil, nil
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: errorMessage(err)}},
		IsError: true,
	}
}

// errorMessage turns a facade error into a short message for the agent.
func errorMessage(err error) string {
	var verr *models.ValidationError
	var herr *brewfather.HTTPError
	var cerr *brewfather.ConfigError
	switch {
	case errors.As(err, &verr):
		return "Invalid data: " + verr.Error()
	case errors.As(err, &cerr):
		return cerr.Error()
	case errors.As(err, &herr):
		switch herr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Sprintf("Brewfather rejected the credentials (status %d). Check the API user id, the API key and its scopes.", herr.StatusCode)
		case http.StatusNotFound:
			return "Brewfather has no record with that identifier."
		case http.StatusTooManyRequests:
			return "Brewfather rate limit reached. Try again later."
		}
		return fmt.Sprintf("Brewfather request failed: %v", herr)
	case errors.Is(err, context.DeadlineExceeded):
		return "The Brewfather request timed out."
	}
	return "Error: " + err.Error()
}
