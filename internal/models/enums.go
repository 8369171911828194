package models

import (
	"encoding/json"
	"slices"
)

type BatchStatus string

const (
	BatchPlanning     BatchStatus = "Planning"
	BatchBrewing      BatchStatus = "Brewing"
	BatchFermenting   BatchStatus = "Fermenting"
	BatchConditioning BatchStatus = "Conditioning"
	BatchCompleted    BatchStatus = "Completed"
	BatchArchived     BatchStatus = "Archived"
)

// BatchStatuses lists the lifecycle in order.
var BatchStatuses = []BatchStatus{
	BatchPlanning, BatchBrewing, BatchFermenting, BatchConditioning, BatchCompleted, BatchArchived,
}

func (s BatchStatus) Valid() bool { return slices.Contains(BatchStatuses, s) }

type HopUse string

const (
	HopBoil      HopUse = "Boil"
	HopDryHop    HopUse = "Dry Hop"
	HopAroma     HopUse = "Aroma"
	HopFirstWort HopUse = "First Wort"
	HopHopstand  HopUse = "Hopstand"
)

var hopUses = []HopUse{HopBoil, HopDryHop, HopAroma, HopFirstWort, HopHopstand}

func (u HopUse) Valid() bool { return slices.Contains(hopUses, u) }

type YeastForm string

const (
	YeastDry     YeastForm = "Dry"
	YeastLiquid  YeastForm = "Liquid"
	YeastSlant   YeastForm = "Slant"
	YeastCulture YeastForm = "Culture"
)

var yeastForms = []YeastForm{YeastDry, YeastLiquid, YeastSlant, YeastCulture}

func (f YeastForm) Valid() bool { return slices.Contains(yeastForms, f) }

type MiscUse string

const (
	MiscMash      MiscUse = "Mash"
	MiscBoil      MiscUse = "Boil"
	MiscPrimary   MiscUse = "Primary"
	MiscSecondary MiscUse = "Secondary"
	MiscBottling  MiscUse = "Bottling"
)

var miscUses = []MiscUse{MiscMash, MiscBoil, MiscPrimary, MiscSecondary, MiscBottling}

func (u MiscUse) Valid() bool { return slices.Contains(miscUses, u) }

// MiscKind is a misc category the upstream documents.
type MiscKind string

const (
	MiscWaterAgent MiscKind = "Water Agent"
	MiscFining     MiscKind = "Fining"
	MiscOther      MiscKind = "Other"
	MiscSpice      MiscKind = "Spice"
	MiscHerb       MiscKind = "Herb"
)

var miscKinds = []MiscKind{MiscWaterAgent, MiscFining, MiscOther, MiscSpice, MiscHerb}

func (k MiscKind) Valid() bool { return slices.Contains(miscKinds, k) }

// MiscType is a permissive misc category: either a documented MiscKind or
// any other string the upstream sends, preserved as-is.
type MiscType struct {
	value string
}

func NewMiscType(s string) MiscType { return MiscType{value: s} }

// Known reports the documented kind, if the value is one.
func (t MiscType) Known() (MiscKind, bool) {
	k := MiscKind(t.value)
	return k, k.Valid()
}

func (t MiscType) String() string { return t.value }

func (t MiscType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

func (t *MiscType) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &t.value)
}

type RecipeType string

const (
	RecipeAllGrain    RecipeType = "All Grain"
	RecipeExtract     RecipeType = "Extract"
	RecipePartialMash RecipeType = "Partial Mash"
)

var recipeTypes = []RecipeType{RecipeAllGrain, RecipeExtract, RecipePartialMash}

func (t RecipeType) Valid() bool { return slices.Contains(recipeTypes, t) }

type MashStepType string

const (
	MashInfusion    MashStepType = "Infusion"
	MashTemperature MashStepType = "Temperature"
	MashDecoction   MashStepType = "Decoction"
)

var mashStepTypes = []MashStepType{MashInfusion, MashTemperature, MashDecoction}

func (t MashStepType) Valid() bool { return slices.Contains(mashStepTypes, t) }

type FermentationStepType string

const (
	FermentPrimary      FermentationStepType = "Primary"
	FermentSecondary    FermentationStepType = "Secondary"
	FermentConditioning FermentationStepType = "Conditioning"
)

var fermentationStepTypes = []FermentationStepType{FermentPrimary, FermentSecondary, FermentConditioning}

func (t FermentationStepType) Valid() bool { return slices.Contains(fermentationStepTypes, t) }

type CarbonationType string

const (
	CarbonationSugar  CarbonationType = "Sugar"
	CarbonationKeg    CarbonationType = "Keg (Force)"
	CarbonationCO2Tab CarbonationType = "CO2 Tabs"
)

var carbonationTypes = []CarbonationType{CarbonationSugar, CarbonationKeg, CarbonationCO2Tab}

func (t CarbonationType) Valid() bool { return slices.Contains(carbonationTypes, t) }

// FgFormula selects how final gravity is estimated.
type FgFormula string

const (
	FgNormal   FgFormula = "normal"
	FgAdvanced FgFormula = "adv"
)

var fgFormulas = []FgFormula{FgNormal, FgAdvanced}

func (f FgFormula) Valid() bool { return slices.Contains(fgFormulas, f) }

type IbuFormula string

const (
	IbuTinseth IbuFormula = "tinseth"
	IbuRager   IbuFormula = "rager"
)

var ibuFormulas = []IbuFormula{IbuTinseth, IbuRager}

func (f IbuFormula) Valid() bool { return slices.Contains(ibuFormulas, f) }
