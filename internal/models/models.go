// Package models holds the validated record types for Brewfather inventory,
// recipes and batches. Every record is decoded through Parse or ParseList,
// which enforce required keys, enumerated values and declared defaults.
package models

// Tier identifies which shape of an entity a record holds.
type Tier int

const (
	TierSummary Tier = iota + 1
	TierDetail
	TierRecipe
	TierBatch
)

func (t Tier) String() string {
	switch t {
	case TierSummary:
		return "summary"
	case TierDetail:
		return "detail"
	case TierRecipe:
		return "recipe"
	case TierBatch:
		return "batch"
	}
	return "unknown"
}

// Stock is the identity and stock level carried by every inventory item
// fetched from an inventory endpoint.
type Stock struct {
	ID        string   `json:"_id"`
	Inventory *float64 `json:"inventory,omitempty"`
}

func (s Stock) Identity() string { return s.ID }

// InventoryLink is the optional link from a recipe ingredient back to an
// inventory item. A nil ID marks a custom recipe-only ingredient.
type InventoryLink struct {
	ID        *string  `json:"_id,omitempty"`
	Inventory *float64 `json:"inventory,omitempty"`
}

func (l InventoryLink) Custom() bool { return l.ID == nil }

// BatchTracking holds the per-batch bookkeeping added to recipe ingredients
// once they are copied into a batch.
type BatchTracking struct {
	DisplayAmount        *float64 `json:"displayAmount,omitempty"`
	TotalCost            *float64 `json:"totalCost,omitempty"`
	NotInRecipe          bool     `json:"notInRecipe,omitempty"`
	RemovedFromInventory bool     `json:"removedFromInventory,omitempty"`
	RemovedAmount        *float64 `json:"removedAmount,omitempty"`
	Checked              bool     `json:"checked,omitempty"`
	InventoryUnit        *string  `json:"inventoryUnit,omitempty"`
}

// VersionEnvelope is the revision metadata attached to every detail record.
type VersionEnvelope struct {
	Version    string    `json:"_version"`
	Created    Timestamp `json:"_created"`
	Modified   Timestamp `json:"_timestamp"`
	ModifiedMs int64     `json:"_timestamp_ms"`
	Revision   string    `json:"_rev"`
}

// Ingredient is implemented by every fermentable, hop, yeast and misc record
// regardless of tier.
type Ingredient interface {
	Tier() Tier
	DisplayName() string
}
