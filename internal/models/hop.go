package models

type HopCore struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Alpha float64 `json:"alpha"`
}

// HopProperties are the oil analysis and provenance attributes shared by
// detail, recipe and batch hops.
type HopProperties struct {
	Beta          *float64 `json:"beta,omitempty"`
	Oil           *float64 `json:"oil,omitempty"`
	Myrcene       *float64 `json:"myrcene,omitempty"`
	Caryophyllene *float64 `json:"caryophyllene,omitempty"`
	Humulene      *float64 `json:"humulene,omitempty"`
	Farnesene     *float64 `json:"farnesene,omitempty"`
	Cohumulone    *float64 `json:"cohumulone,omitempty"`
	Hsi           *float64 `json:"hsi,omitempty"`

	Origin *string `json:"origin,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Usage  *string `json:"usage,omitempty"`

	Notes       string `json:"notes,omitempty"`
	Substitutes string `json:"substitutes,omitempty"`
	UsedIn      string `json:"usedIn,omitempty"`
	UserNotes   string `json:"userNotes,omitempty"`

	BestBeforeDate    *Date    `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *Date    `json:"manufacturingDate,omitempty"`
	LotNumber         *string  `json:"lotNumber,omitempty"`
	Hidden            bool     `json:"hidden,omitempty"`
	CostPerAmount     *float64 `json:"costPerAmount,omitempty"`
}

type HopSummary struct {
	Stock
	HopCore
	Use *HopUse `json:"use,omitempty"`
}

func (HopSummary) Tier() Tier             { return TierSummary }
func (h HopSummary) DisplayName() string { return h.Name }

type HopDetail struct {
	HopSummary
	VersionEnvelope
	HopProperties
	Amount *float64 `json:"amount,omitempty"`
	Time   *int     `json:"time,omitempty"`
	Temp   *float64 `json:"temp,omitempty"`
	IBU    float64  `json:"ibu,omitempty"`
}

func (HopDetail) Tier() Tier { return TierDetail }

// RecipeHop is a hop addition in a recipe.
type RecipeHop struct {
	InventoryLink
	HopCore
	HopProperties
	Amount     float64  `json:"amount"`
	Time       int      `json:"time"`
	Use        HopUse   `json:"use"`
	IBU        float64  `json:"ibu,omitempty"`
	Temp       *float64 `json:"temp,omitempty"`
	ActualTime *int64   `json:"actualTime,omitempty"`
	TimeUnit   *string  `json:"timeUnit,omitempty"`
	Day        *int     `json:"day,omitempty"`
}

func (RecipeHop) Tier() Tier             { return TierRecipe }
func (h RecipeHop) DisplayName() string { return h.Name }

type BatchHop struct {
	RecipeHop
	BatchTracking
}

func (BatchHop) Tier() Tier { return TierBatch }
