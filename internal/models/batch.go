package models

import (
	"encoding/json"
	"errors"
	"slices"
)

// RecipeLink is a batch's recipe. List payloads carry only the name and
// id; detail payloads embed a full recipe snapshot, kept in Detail. A
// snapshot that does not satisfy the recipe schema is an error.
type RecipeLink struct {
	Name   string
	ID     *string
	Detail *RecipeDetail
}

func (l *RecipeLink) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var head struct {
		Name string  `json:"name"`
		ID   *string `json:"_id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	l.Name = head.Name
	l.ID = head.ID
	l.Detail = nil

	for key := range fields {
		if !slices.Contains(linkKeys, key) {
			detail, err := Parse[RecipeDetail](b)
			if err != nil {
				return prefixField("recipe", err)
			}
			l.Detail = detail
			break
		}
	}
	return nil
}

func (l RecipeLink) MarshalJSON() ([]byte, error) {
	if l.Detail != nil {
		return json.Marshal(l.Detail)
	}
	head := map[string]string{"name": l.Name}
	if l.ID != nil {
		head["_id"] = *l.ID
	}
	return json.Marshal(head)
}

func prefixField(prefix string, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return &ValidationError{Field: join(prefix, vErr.Field), Reason: vErr.Reason}
	}
	return err
}

type BatchSummary struct {
	Name     string      `json:"name"`
	ID       string      `json:"_id"`
	BatchNo  int         `json:"batchNo"`
	BrewDate *int64      `json:"brewDate,omitempty"`
	Status   BatchStatus `json:"status,omitempty"`
	Brewer   *string     `json:"brewer,omitempty"`
	Recipe   RecipeLink  `json:"recipe"`
}

func (b BatchSummary) Identity() string { return b.ID }
func (BatchSummary) Tier() Tier          { return TierSummary }

func (b *BatchSummary) applyDefaults() {
	if b.Status == "" {
		b.Status = BatchPlanning
	}
}

type Measurement struct {
	Type    string  `json:"type"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Time    Date    `json:"time"`
	Comment *string `json:"comment,omitempty"`
}

type BatchNote struct {
	Note      string  `json:"note"`
	Type      *string `json:"type,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// BatchMeasured are the values recorded while brewing a batch.
type BatchMeasured struct {
	MeasuredOg                   *float64 `json:"measuredOg,omitempty"`
	MeasuredFg                   *float64 `json:"measuredFg,omitempty"`
	MeasuredAbv                  *float64 `json:"measuredAbv,omitempty"`
	MeasuredAttenuation          *float64 `json:"measuredAttenuation,omitempty"`
	MeasuredEfficiency           *float64 `json:"measuredEfficiency,omitempty"`
	MeasuredMashEfficiency       *float64 `json:"measuredMashEfficiency,omitempty"`
	MeasuredKettleEfficiency     *float64 `json:"measuredKettleEfficiency,omitempty"`
	MeasuredConversionEfficiency *float64 `json:"measuredConversionEfficiency,omitempty"`
	MeasuredPreBoilGravity       *float64 `json:"measuredPreBoilGravity,omitempty"`
	MeasuredPostBoilGravity      *float64 `json:"measuredPostBoilGravity,omitempty"`
	MeasuredFirstWortGravity     *float64 `json:"measuredFirstWortGravity,omitempty"`
	MeasuredBatchSize            *float64 `json:"measuredBatchSize,omitempty"`
	MeasuredBoilSize             *float64 `json:"measuredBoilSize,omitempty"`
	MeasuredBottlingSize         *float64 `json:"measuredBottlingSize,omitempty"`
	MeasuredFermenterTopUp       *float64 `json:"measuredFermenterTopUp,omitempty"`
	MeasuredKettleSize           *float64 `json:"measuredKettleSize,omitempty"`
	MeasuredMashPh               *float64 `json:"measuredMashPh,omitempty"`
}

// BatchEstimated are the values the recipe predicts for a batch.
type BatchEstimated struct {
	EstimatedOg           *float64 `json:"estimatedOg,omitempty"`
	EstimatedFg           *float64 `json:"estimatedFg,omitempty"`
	EstimatedIbu          *float64 `json:"estimatedIbu,omitempty"`
	EstimatedColor        *float64 `json:"estimatedColor,omitempty"`
	EstimatedAbv          *float64 `json:"estimatedAbv,omitempty"`
	EstimatedTotalGravity *float64 `json:"estimatedTotalGravity,omitempty"`
	EstimatedBuGuRatio    *float64 `json:"estimatedBuGuRatio,omitempty"`
	EstimatedRbRatio      *float64 `json:"estimatedRbRatio,omitempty"`
}

type BatchDetail struct {
	BatchSummary
	VersionEnvelope
	BatchMeasured
	BatchEstimated

	RecipeID           *string          `json:"recipeId,omitempty"`
	Measurements       []Measurement    `json:"measurements,omitempty"`
	Notes              []BatchNote      `json:"notes,omitempty"`
	MeasurementDevices []map[string]any `json:"measurementDevices,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Events             []map[string]any `json:"events,omitempty"`
	Devices            map[string]any   `json:"devices,omitempty"`
	Cost               map[string]any   `json:"cost,omitempty"`

	Brewed bool     `json:"brewed,omitempty"`
	OG     *float64 `json:"og,omitempty"`
	FG     *float64 `json:"fg,omitempty"`
	ABV    *float64 `json:"abv,omitempty"`

	BottlingDate          *Date            `json:"bottlingDate,omitempty"`
	CarbonationType       *CarbonationType `json:"carbonationType,omitempty"`
	CarbonationLevel      *float64         `json:"carbonationLevel,omitempty"`
	CarbonationTemp       *float64         `json:"carbonationTemp,omitempty"`
	CarbonationForce      *float64         `json:"carbonationForce,omitempty"`
	PrimingSugarEquiv     *float64         `json:"primingSugarEquiv,omitempty"`
	FermentationStartDate *Date            `json:"fermentationStartDate,omitempty"`
	FermentationEndDate   *Date            `json:"fermentationEndDate,omitempty"`

	BatchFermentables      []BatchFermentable `json:"batchFermentables,omitempty"`
	BatchHops              []BatchHop         `json:"batchHops,omitempty"`
	BatchYeasts            []BatchYeast       `json:"batchYeasts,omitempty"`
	BatchMiscs             []BatchMisc        `json:"batchMiscs,omitempty"`
	BatchFermentablesLocal []BatchFermentable `json:"batchFermentablesLocal,omitempty"`
	BatchHopsLocal         []BatchHop         `json:"batchHopsLocal,omitempty"`
	BatchYeastsLocal       []BatchYeast       `json:"batchYeastsLocal,omitempty"`
	BatchMiscsLocal        []BatchMisc        `json:"batchMiscsLocal,omitempty"`

	BrewControllerEnabled         bool       `json:"brewControllerEnabled,omitempty"`
	FermentationControllerEnabled bool       `json:"fermentationControllerEnabled,omitempty"`
	MashStepsCount                *int       `json:"mashStepsCount,omitempty"`
	BoilStepsCount                *int       `json:"boilStepsCount,omitempty"`
	BoilSteps                     []BoilStep `json:"boilSteps,omitempty"`

	Hidden                   bool    `json:"hidden,omitempty"`
	Archived                 bool    `json:"_archived,omitempty"`
	Init                     bool    `json:"_init,omitempty"`
	HideBatchEvents          bool    `json:"hideBatchEvents,omitempty"`
	BottlingDateSet          bool    `json:"bottlingDateSet,omitempty"`
	FermentationStartDateSet bool    `json:"fermentationStartDateSet,omitempty"`
	Shared                   bool    `json:"_shared,omitempty"`
	Share                    *string `json:"_share,omitempty"`
	RecordType               string  `json:"_type,omitempty"`
}

func (BatchDetail) Tier() Tier { return TierDetail }

func (b *BatchDetail) applyDefaults() {
	b.BatchSummary.applyDefaults()
	if b.RecordType == "" {
		b.RecordType = "batch"
	}
}

// RecipeRef resolves the batch's recipe id and name, preferring the embedded
// snapshot, then the link's own id, then the top-level recipeId.
func (b *BatchDetail) RecipeRef() (id, name string) {
	name = b.Recipe.Name
	switch {
	case b.Recipe.Detail != nil:
		return b.Recipe.Detail.ID, name
	case b.Recipe.ID != nil:
		return *b.Recipe.ID, name
	case b.RecipeID != nil:
		return *b.RecipeID, name
	}
	return "", name
}

// OriginalGravity returns the measured OG, falling back to the batch OG and
// then the estimate.
func (b *BatchDetail) OriginalGravity() *float64 {
	switch {
	case b.MeasuredOg != nil:
		return b.MeasuredOg
	case b.OG != nil:
		return b.OG
	}
	return b.EstimatedOg
}

// FinalGravity returns the measured FG, falling back to the batch FG and
// then the estimate.
func (b *BatchDetail) FinalGravity() *float64 {
	switch {
	case b.MeasuredFg != nil:
		return b.MeasuredFg
	case b.FG != nil:
		return b.FG
	}
	return b.EstimatedFg
}
