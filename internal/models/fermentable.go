package models

// FermentableCore holds the fields every fermentable shape requires.
type FermentableCore struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Supplier    string   `json:"supplier"`
	Attenuation *float64 `json:"attenuation,omitempty"`
}

// FermentableProperties are the chemistry and provenance attributes present
// on detail, recipe and batch fermentables.
type FermentableProperties struct {
	Color               *float64 `json:"color,omitempty"`
	Potential           *float64 `json:"potential,omitempty"`
	PotentialPercentage *float64 `json:"potentialPercentage,omitempty"`
	Lovibond            *float64 `json:"lovibond,omitempty"`

	GrainCategory  *string  `json:"grainCategory,omitempty"`
	Origin         *string  `json:"origin,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	IbuPerAmount   *float64 `json:"ibuPerAmount,omitempty"`
	MaxInBatch     *float64 `json:"maxInBatch,omitempty"`
	NotFermentable *bool    `json:"notFermentable,omitempty"`

	Acid           *float64 `json:"acid,omitempty"`
	Cgdb           *float64 `json:"cgdb,omitempty"`
	CoarseFineDiff *float64 `json:"coarseFineDiff,omitempty"`
	Fan            *float64 `json:"fan,omitempty"`
	Fgdb           *float64 `json:"fgdb,omitempty"`
	Friability     *float64 `json:"friability,omitempty"`
	Moisture       *float64 `json:"moisture,omitempty"`
	Protein        *float64 `json:"protein,omitempty"`
	DiastaticPower *float64 `json:"diastaticPower,omitempty"`

	Substitutes       string   `json:"substitutes,omitempty"`
	UsedIn            string   `json:"usedIn,omitempty"`
	UserNotes         string   `json:"userNotes,omitempty"`
	LotNumber         *string  `json:"lotNumber,omitempty"`
	BestBeforeDate    *Date    `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *Date    `json:"manufacturingDate,omitempty"`
	Hidden            bool     `json:"hidden,omitempty"`
	CostPerAmount     *float64 `json:"costPerAmount,omitempty"`
}

// FermentableSummary is a fermentable as returned by the inventory list.
type FermentableSummary struct {
	Stock
	FermentableCore
}

func (FermentableSummary) Tier() Tier             { return TierSummary }
func (f FermentableSummary) DisplayName() string { return f.Name }

type FermentableDetail struct {
	FermentableSummary
	VersionEnvelope
	FermentableProperties
}

func (FermentableDetail) Tier() Tier { return TierDetail }

// RecipeFermentable is a fermentable as used in a recipe.
type RecipeFermentable struct {
	InventoryLink
	FermentableCore
	FermentableProperties
	Amount       float64  `json:"amount"`
	Percentage   *float64 `json:"percentage,omitempty"`
	AddAfterBoil bool     `json:"addAfterBoil,omitempty"`
}

func (RecipeFermentable) Tier() Tier             { return TierRecipe }
func (f RecipeFermentable) DisplayName() string { return f.Name }

type BatchFermentable struct {
	RecipeFermentable
	BatchTracking
}

func (BatchFermentable) Tier() Tier { return TierBatch }
