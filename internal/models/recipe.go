package models

import "encoding/json"

type StyleDetail struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	IbuMin   float64 `json:"ibuMin"`
	IbuMax   float64 `json:"ibuMax"`
	AbvMin   float64 `json:"abvMin"`
	AbvMax   float64 `json:"abvMax"`
	OgMin    float64 `json:"ogMin"`
	OgMax    float64 `json:"ogMax"`
	FgMin    float64 `json:"fgMin"`
	FgMax    float64 `json:"fgMax"`
	ColorMin float64 `json:"colorMin"`
	ColorMax float64 `json:"colorMax"`

	CategoryNumber *string `json:"categoryNumber,omitempty"`
	StyleLetter    *string `json:"styleLetter,omitempty"`
	StyleGuide     *string `json:"styleGuide,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Profile        *string `json:"profile,omitempty"`
	Ingredients    *string `json:"ingredients,omitempty"`
	Examples       *string `json:"examples,omitempty"`
}

// StyleRef is a recipe's style: name-only in list payloads, the full style
// guideline when the payload carries one.
type StyleRef struct {
	Name   string
	Detail *StyleDetail
}

func (s *StyleRef) UnmarshalJSON(b []byte) error {
	var head struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	s.Name = head.Name
	s.Detail = richest[StyleDetail](b)
	return nil
}

func (s StyleRef) MarshalJSON() ([]byte, error) {
	if s.Detail != nil {
		return json.Marshal(s.Detail)
	}
	return json.Marshal(map[string]string{"name": s.Name})
}

type RecipeSummary struct {
	Name      string        `json:"name"`
	ID        string        `json:"_id"`
	Author    *string       `json:"author,omitempty"`
	Type      *RecipeType   `json:"type,omitempty"`
	Equipment *EquipmentRef `json:"equipment,omitempty"`
	Style     *StyleRef     `json:"style,omitempty"`
}

func (r RecipeSummary) Identity() string { return r.ID }
func (RecipeSummary) Tier() Tier          { return TierSummary }

// RecipeRevision is the revision metadata of a recipe. Recipe snapshots
// embedded in batches omit some or all of it, so every field is optional.
type RecipeRevision struct {
	Version    *string    `json:"_version,omitempty"`
	Created    *Timestamp `json:"_created,omitempty"`
	Modified   *Timestamp `json:"_timestamp,omitempty"`
	ModifiedMs *int64     `json:"_timestamp_ms,omitempty"`
	Revision   *string    `json:"_rev,omitempty"`
	UID        *string    `json:"_uid,omitempty"`
}

// Envelope returns the version envelope when all of its fields are present.
func (r RecipeRevision) Envelope() (VersionEnvelope, bool) {
	if r.Version == nil || r.Created == nil || r.Modified == nil || r.ModifiedMs == nil || r.Revision == nil {
		return VersionEnvelope{}, false
	}
	return VersionEnvelope{
		Version:    *r.Version,
		Created:    *r.Created,
		Modified:   *r.Modified,
		ModifiedMs: *r.ModifiedMs,
		Revision:   *r.Revision,
	}, true
}

// RecipeSpecs are the computed specifications of a recipe.
type RecipeSpecs struct {
	OG              *float64 `json:"og,omitempty"`
	FG              *float64 `json:"fg,omitempty"`
	IBU             *float64 `json:"ibu,omitempty"`
	Color           *float64 `json:"color,omitempty"`
	ABV             *float64 `json:"abv,omitempty"`
	OgPlato         *float64 `json:"ogPlato,omitempty"`
	PostBoilGravity *float64 `json:"postBoilGravity,omitempty"`
	PreBoilGravity  *float64 `json:"preBoilGravity,omitempty"`
	Attenuation     *float64 `json:"attenuation,omitempty"`
	TotalGravity    *float64 `json:"totalGravity,omitempty"`

	FirstWortGravity        *float64 `json:"firstWortGravity,omitempty"`
	BuGuRatio               *float64 `json:"buGuRatio,omitempty"`
	RbRatio                 *float64 `json:"rbRatio,omitempty"`
	Carbonation             *float64 `json:"carbonation,omitempty"`
	SumDryHopPerLiter       *float64 `json:"sumDryHopPerLiter,omitempty"`
	AvgWeightedHopstandTemp *float64 `json:"avgWeightedHopstandTemp,omitempty"`
	DiastaticPower          *float64 `json:"diastaticPower,omitempty"`
	PrimaryTemp             *float64 `json:"primaryTemp,omitempty"`
	FermentableIbu          *float64 `json:"fermentableIbu,omitempty"`
	ExtraGravity            *float64 `json:"extraGravity,omitempty"`
	FermentablesTotalAmount *float64 `json:"fermentablesTotalAmount,omitempty"`
	HopsTotalAmount         *float64 `json:"hopsTotalAmount,omitempty"`
	YeastToleranceExceeded  *float64 `json:"yeastToleranceExceededBy,omitempty"`

	IbuFormula      *IbuFormula `json:"ibuFormula,omitempty"`
	FgFormula       *FgFormula  `json:"fgFormula,omitempty"`
	StyleConformity *bool       `json:"styleConformity,omitempty"`
	ManualFg        *bool       `json:"manualFg,omitempty"`
}

type RecipeDetail struct {
	RecipeSummary
	RecipeRevision
	RecipeSpecs

	BatchSize      *float64 `json:"batchSize,omitempty"`
	BoilSize       *float64 `json:"boilSize,omitempty"`
	BoilTime       *int     `json:"boilTime,omitempty"`
	Efficiency     *float64 `json:"efficiency,omitempty"`
	MashEfficiency *float64 `json:"mashEfficiency,omitempty"`

	Fermentables []RecipeFermentable `json:"fermentables,omitempty"`
	Hops         []RecipeHop         `json:"hops,omitempty"`
	Yeasts       []RecipeYeast       `json:"yeasts,omitempty"`
	Miscs        []RecipeMisc        `json:"miscs,omitempty"`

	Mash           *MashSchedule         `json:"mash,omitempty"`
	Water          *WaterSettings        `json:"water,omitempty"`
	Fermentation   *FermentationSchedule `json:"fermentation,omitempty"`
	BoilSteps      []BoilStep            `json:"boilSteps,omitempty"`
	MashStepsCount *int                  `json:"mashStepsCount,omitempty"`
	BoilStepsCount *int                  `json:"boilStepsCount,omitempty"`
	HopStandMins   *int                  `json:"hopStandMinutes,omitempty"`

	Notes      *string  `json:"notes,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	SearchTags []string `json:"searchTags,omitempty"`
	Public     *bool    `json:"public,omitempty"`
	Hidden     bool     `json:"hidden,omitempty"`
	Path       *string  `json:"path,omitempty"`

	RecordType string   `json:"_type,omitempty"`
	Init       bool     `json:"_init,omitempty"`
	Share      *string  `json:"_share,omitempty"`
	PublicFlag *bool    `json:"_public,omitempty"`
	Ev         *float64 `json:"_ev,omitempty"`

	Defaults         map[string]any `json:"defaults,omitempty"`
	Nutrition        map[string]any `json:"nutrition,omitempty"`
	Data             map[string]any `json:"data,omitempty"`
	CarbonationStyle map[string]any `json:"carbonationStyle,omitempty"`
}

func (RecipeDetail) Tier() Tier { return TierDetail }

func (r *RecipeDetail) applyDefaults() {
	if r.RecordType == "" {
		r.RecordType = "recipe"
	}
}
