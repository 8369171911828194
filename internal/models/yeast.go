package models

type YeastCore struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Attenuation *float64 `json:"attenuation,omitempty"`
}

// YeastProperties are the strain attributes shared by detail, recipe and
// batch yeasts.
type YeastProperties struct {
	Laboratory     string   `json:"laboratory,omitempty"`
	ProductID      *string  `json:"productId,omitempty"`
	LotNumber      *string  `json:"lotNumber,omitempty"`
	MinAttenuation *float64 `json:"minAttenuation,omitempty"`
	MaxAttenuation *float64 `json:"maxAttenuation,omitempty"`
	MinTemp        *float64 `json:"minTemp,omitempty"`
	MaxTemp        *float64 `json:"maxTemp,omitempty"`
	MaxAbv         *float64 `json:"maxAbv,omitempty"`
	AgeRate        *float64 `json:"ageRate,omitempty"`
	Flocculation   *string  `json:"flocculation,omitempty"`
	CellsPerPkg    *float64 `json:"cellsPerPkg,omitempty"`
	FermentsAll    bool     `json:"fermentsAll,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Unit           *string  `json:"unit,omitempty"`
	CostPerAmount  *float64 `json:"costPerAmount,omitempty"`

	BestBeforeDate    *Date  `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *Date  `json:"manufacturingDate,omitempty"`
	UserNotes         string `json:"userNotes,omitempty"`
	Hidden            bool   `json:"hidden,omitempty"`
}

type YeastSummary struct {
	Stock
	YeastCore
	Form *YeastForm `json:"form,omitempty"`
}

func (YeastSummary) Tier() Tier             { return TierSummary }
func (y YeastSummary) DisplayName() string { return y.Name }

type YeastDetail struct {
	YeastSummary
	VersionEnvelope
	YeastProperties
	Amount *float64 `json:"amount,omitempty"`
}

func (YeastDetail) Tier() Tier { return TierDetail }

type RecipeYeast struct {
	InventoryLink
	YeastCore
	YeastProperties
	Form   *YeastForm `json:"form,omitempty"`
	Amount float64    `json:"amount"`

	Starter            *bool    `json:"starter,omitempty"`
	StarterSize        *float64 `json:"starterSize,omitempty"`
	StarterGramExtract *float64 `json:"starterGramExtract,omitempty"`
	Parent             *string  `json:"_parent,omitempty"`
}

func (RecipeYeast) Tier() Tier             { return TierRecipe }
func (y RecipeYeast) DisplayName() string { return y.Name }

type BatchYeast struct {
	RecipeYeast
	BatchTracking
}

func (BatchYeast) Tier() Tier { return TierBatch }
