package models

type MiscCore struct {
	Name string    `json:"name"`
	Type *MiscType `json:"type,omitempty"`
}

type MiscProperties struct {
	Time            *int     `json:"time,omitempty"`
	TimeIsDays      bool     `json:"timeIsDays,omitempty"`
	AmountPerL      *float64 `json:"amountPerL,omitempty"`
	Concentration   *float64 `json:"concentration,omitempty"`
	WaterAdjustment bool     `json:"waterAdjustment,omitempty"`
	UseFor          *string  `json:"useFor,omitempty"`
	Substitutes     *string  `json:"substitutes,omitempty"`
	UserNotes       *string  `json:"userNotes,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	CostPerAmount   *float64 `json:"costPerAmount,omitempty"`
	LotNumber       *string  `json:"lotNumber,omitempty"`

	BestBeforeDate    *Date `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *Date `json:"manufacturingDate,omitempty"`
	Hidden            bool  `json:"hidden,omitempty"`
}

type MiscSummary struct {
	Stock
	MiscCore
	Use   *MiscUse `json:"use,omitempty"`
	Notes *string  `json:"notes,omitempty"`
}

func (MiscSummary) Tier() Tier             { return TierSummary }
func (m MiscSummary) DisplayName() string { return m.Name }

type MiscDetail struct {
	MiscSummary
	VersionEnvelope
	MiscProperties
}

func (MiscDetail) Tier() Tier { return TierDetail }

type RecipeMisc struct {
	InventoryLink
	MiscCore
	MiscProperties
	Amount float64 `json:"amount"`
	Use    MiscUse `json:"use"`
	Notes  *string `json:"notes,omitempty"`
}

func (RecipeMisc) Tier() Tier             { return TierRecipe }
func (m RecipeMisc) DisplayName() string { return m.Name }

type BatchMisc struct {
	RecipeMisc
	BatchTracking
}

func (BatchMisc) Tier() Tier { return TierBatch }
