package brewfather

import (
	"context"
	"fmt"

	"brewfather-mcp/internal/models"
)

func fetchOne[T any](ctx context.Context, c *Client, segments ...string) (*T, error) {
	body, err := c.get(ctx, c.buildURL(nil, segments...))
	if err != nil {
		return nil, err
	}
	return models.Parse[T](body)
}

func fetchList[T any](ctx context.Context, c *Client, q *ListQuery, segments ...string) ([]T, error) {
	body, err := c.get(ctx, c.buildURL(q, segments...))
	if err != nil {
		return nil, err
	}
	return models.ParseList[T](body)
}

func fetchInventory[T any](ctx context.Context, c *Client, cat Category, id string) (*T, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchOne[T](ctx, c, inventoryPath(cat, id)...)
}

// ListFermentables returns the fermentable inventory in response order.
func (c *Client) ListFermentables(ctx context.Context, q *ListQuery) ([]models.FermentableSummary, error) {
	return fetchList[models.FermentableSummary](ctx, c, q, inventoryPath(Fermentables)...)
}

func (c *Client) Fermentable(ctx context.Context, id string) (*models.FermentableDetail, error) {
	return fetchInventory[models.FermentableDetail](ctx, c, Fermentables, id)
}

func (c *Client) ListHops(ctx context.Context, q *ListQuery) ([]models.HopSummary, error) {
	return fetchList[models.HopSummary](ctx, c, q, inventoryPath(Hops)...)
}

func (c *Client) Hop(ctx context.Context, id string) (*models.HopDetail, error) {
	return fetchInventory[models.HopDetail](ctx, c, Hops, id)
}

func (c *Client) ListYeasts(ctx context.Context, q *ListQuery) ([]models.YeastSummary, error) {
	return fetchList[models.YeastSummary](ctx, c, q, inventoryPath(Yeasts)...)
}

func (c *Client) Yeast(ctx context.Context, id string) (*models.YeastDetail, error) {
	return fetchInventory[models.YeastDetail](ctx, c, Yeasts, id)
}

func (c *Client) ListMiscs(ctx context.Context, q *ListQuery) ([]models.MiscSummary, error) {
	return fetchList[models.MiscSummary](ctx, c, q, inventoryPath(Miscs)...)
}

func (c *Client) Misc(ctx context.Context, id string) (*models.MiscDetail, error) {
	return fetchInventory[models.MiscDetail](ctx, c, Miscs, id)
}

type inventoryUpdate struct {
	Inventory float64 `json:"inventory"`
}

// UpdateInventory sets the absolute stock level of an inventory item.
func (c *Client) UpdateInventory(ctx context.Context, cat Category, id string, amount float64) error {
	if !cat.Valid() {
		return &models.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown inventory category %q", cat)}
	}
	if err := ValidateID(id); err != nil {
		return err
	}
	return c.patch(ctx, c.buildURL(nil, inventoryPath(cat, id)...), inventoryUpdate{Inventory: amount})
}

func (c *Client) UpdateFermentableInventory(ctx context.Context, id string, amount float64) error {
	return c.UpdateInventory(ctx, Fermentables, id, amount)
}

func (c *Client) UpdateHopInventory(ctx context.Context, id string, amount float64) error {
	return c.UpdateInventory(ctx, Hops, id, amount)
}

func (c *Client) UpdateYeastInventory(ctx context.Context, id string, amount float64) error {
	return c.UpdateInventory(ctx, Yeasts, id, amount)
}

func (c *Client) UpdateMiscInventory(ctx context.Context, id string, amount float64) error {
	return c.UpdateInventory(ctx, Miscs, id, amount)
}

// ListBatches returns batch summaries in response order.
func (c *Client) ListBatches(ctx context.Context, q *ListQuery) ([]models.BatchSummary, error) {
	return fetchList[models.BatchSummary](ctx, c, q, pathBatches)
}

func (c *Client) Batch(ctx context.Context, id string) (*models.BatchDetail, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchOne[models.BatchDetail](ctx, c, pathBatches, id)
}

// BatchUpdate is a partial set of batch fields keyed by upstream name.
// Absent fields are left untouched.
type BatchUpdate map[string]any

// UpdateBatch patches the given fields of a batch. A status, if present,
// must be one of the documented lifecycle values.
func (c *Client) UpdateBatch(ctx context.Context, id string, fields BatchUpdate) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if len(fields) == 0 {
		return &models.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	if raw, ok := fields["status"]; ok {
		status, _ := raw.(models.BatchStatus)
		if s, isString := raw.(string); isString {
			status = models.BatchStatus(s)
		}
		if !status.Valid() {
			return &models.ValidationError{Field: "status", Reason: fmt.Sprintf("unrecognized value %v", raw)}
		}
	}
	return c.patch(ctx, c.buildURL(nil, pathBatches, id), fields)
}

// BatchBrewTracker returns the brew-day tracker of a batch.
func (c *Client) BatchBrewTracker(ctx context.Context, id string) (*models.BrewTrackerStatus, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchOne[models.BrewTrackerStatus](ctx, c, pathBatches, id, "brewtracker")
}

// BatchLastReading returns the most recent device reading of a batch.
func (c *Client) BatchLastReading(ctx context.Context, id string) (*models.Reading, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchOne[models.Reading](ctx, c, pathBatches, id, "readings", "last")
}

// BatchReadings returns every device reading recorded for a batch.
func (c *Client) BatchReadings(ctx context.Context, id string) ([]models.Reading, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchList[models.Reading](ctx, c, nil, pathBatches, id, "readings")
}

func (c *Client) ListRecipes(ctx context.Context, q *ListQuery) ([]models.RecipeSummary, error) {
	return fetchList[models.RecipeSummary](ctx, c, q, pathRecipes)
}

func (c *Client) Recipe(ctx context.Context, id string) (*models.RecipeDetail, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return fetchOne[models.RecipeDetail](ctx, c, pathRecipes, id)
}
