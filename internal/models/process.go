package models

import "encoding/json"

type MashStep struct {
	Name            *string      `json:"name,omitempty"`
	Type            MashStepType `json:"type"`
	StepTemp        float64      `json:"stepTemp"`
	StepTime        int          `json:"stepTime"`
	RampTime        *int         `json:"rampTime,omitempty"`
	InfuseTemp      *float64     `json:"infuseTemp,omitempty"`
	InfuseAmount    *float64     `json:"infuseAmount,omitempty"`
	DisplayStepTemp *float64     `json:"displayStepTemp,omitempty"`
}

type MashSchedule struct {
	Name  string     `json:"name"`
	Steps []MashStep `json:"steps"`
}

type BoilStep struct {
	Name string `json:"name"`
	Time int    `json:"time"`
}

type FermentationStep struct {
	Type            FermentationStepType `json:"type"`
	StepTemp        float64              `json:"stepTemp"`
	StepTime        int                  `json:"stepTime"`
	ActualTime      *int64               `json:"actualTime,omitempty"`
	DisplayStepTemp *float64             `json:"displayStepTemp,omitempty"`
	DisplayPressure *float64             `json:"displayPressure,omitempty"`
	Pressure        *float64             `json:"pressure,omitempty"`
	Ramp            *float64             `json:"ramp,omitempty"`
}

type FermentationSchedule struct {
	Name  string             `json:"name"`
	Steps []FermentationStep `json:"steps"`
}

// EquipmentProfile is the full equipment record embedded in recipe details.
type EquipmentProfile struct {
	Name           string  `json:"name"`
	BatchSize      float64 `json:"batchSize"`
	Efficiency     float64 `json:"efficiency"`
	MashEfficiency float64 `json:"mashEfficiency"`
	BoilSize       float64 `json:"boilSize"`
	BoilTime       int     `json:"boilTime"`

	BottlingVolume    *float64 `json:"bottlingVolume,omitempty"`
	FermenterVolume   *float64 `json:"fermenterVolume,omitempty"`
	TrubChillerLoss   *float64 `json:"trubChillerLoss,omitempty"`
	PostBoilKettleVol *float64 `json:"postBoilKettleVol,omitempty"`
	BoilOffPerHr      *float64 `json:"boilOffPerHr,omitempty"`

	MashTunDeadSpace            *float64 `json:"mashTunDeadSpace,omitempty"`
	MashWaterMax                *float64 `json:"mashWaterMax,omitempty"`
	MashWaterVolumeLimitEnabled bool     `json:"mashWaterVolumeLimitEnabled,omitempty"`
	SpargeTemperature           *float64 `json:"spargeTemperature,omitempty"`
	GrainTemperature            *float64 `json:"grainTemperature,omitempty"`
	AmbientTemperature          *float64 `json:"ambientTemperature,omitempty"`

	EfficiencyType     *string  `json:"efficiencyType,omitempty"`
	CalcMashEfficiency bool     `json:"calcMashEfficiency,omitempty"`
	EvaporationRate    *float64 `json:"evaporationRate,omitempty"`

	HopUtilization          *float64 `json:"hopUtilization,omitempty"`
	CalcAromaHopUtilization bool     `json:"calcAromaHopUtilization,omitempty"`
	AromaHopUtilization     *float64 `json:"aromaHopUtilization,omitempty"`
	HopstandTemperature     *float64 `json:"hopstandTemperature,omitempty"`

	FermenterLoss         *float64 `json:"fermenterLoss,omitempty"`
	FermenterLossEstimate *float64 `json:"fermenterLossEstimate,omitempty"`

	CalcBoilVolume     bool    `json:"calcBoilVolume,omitempty"`
	MashWaterFormula   *string `json:"mashWaterFormula,omitempty"`
	SpargeWaterFormula *string `json:"spargeWaterFormula,omitempty"`
}

// EquipmentRef is a recipe's equipment: a name-only reference in list
// payloads, the full profile in detail payloads.
type EquipmentRef struct {
	Name   string
	Detail *EquipmentProfile
}

func (e *EquipmentRef) UnmarshalJSON(b []byte) error {
	var head struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	e.Name = head.Name
	e.Detail = richest[EquipmentProfile](b)
	return nil
}

func (e EquipmentRef) MarshalJSON() ([]byte, error) {
	if e.Detail != nil {
		return json.Marshal(e.Detail)
	}
	return json.Marshal(map[string]string{"name": e.Name})
}

type WaterProfile struct {
	Name               string   `json:"name"`
	Type               string   `json:"type,omitempty"`
	Calcium            float64  `json:"calcium"`
	Magnesium          float64  `json:"magnesium"`
	Sodium             float64  `json:"sodium"`
	Chloride           float64  `json:"chloride"`
	Sulfate            float64  `json:"sulfate"`
	Bicarbonate        float64  `json:"bicarbonate"`
	Ph                 *float64 `json:"ph,omitempty"`
	Hardness           *float64 `json:"hardness,omitempty"`
	Alkalinity         *float64 `json:"alkalinity,omitempty"`
	ResidualAlkalinity *float64 `json:"residualAlkalinity,omitempty"`
}

func (w *WaterProfile) applyDefaults() {
	if w.Type == "" {
		w.Type = "source"
	}
}

// WaterAdjustment is the mineral contribution and salt additions for one
// water volume. Minerals default to zero.
type WaterAdjustment struct {
	Calcium     float64 `json:"calcium,omitempty"`
	Magnesium   float64 `json:"magnesium,omitempty"`
	Sodium      float64 `json:"sodium,omitempty"`
	Chloride    float64 `json:"chloride,omitempty"`
	Sulfate     float64 `json:"sulfate,omitempty"`
	Bicarbonate float64 `json:"bicarbonate,omitempty"`
	Volume      float64 `json:"volume"`

	CalciumChloride   *float64 `json:"calciumChloride,omitempty"`
	CalciumSulfate    *float64 `json:"calciumSulfate,omitempty"`
	MagnesiumSulfate  *float64 `json:"magnesiumSulfate,omitempty"`
	SodiumChloride    *float64 `json:"sodiumChloride,omitempty"`
	SodiumBicarbonate *float64 `json:"sodiumBicarbonate,omitempty"`
}

type WaterSettings struct {
	Source *WaterProfile `json:"source,omitempty"`
	Mash   *WaterProfile `json:"mash,omitempty"`
	Sparge *WaterProfile `json:"sparge,omitempty"`
	Total  *WaterProfile `json:"total,omitempty"`

	MashAdjustments   *WaterAdjustment `json:"mashAdjustments,omitempty"`
	SpargeAdjustments *WaterAdjustment `json:"spargeAdjustments,omitempty"`
	TotalAdjustments  *WaterAdjustment `json:"totalAdjustments,omitempty"`

	EnableSpargeAdjustments bool     `json:"enableSpargeAdjustments,omitempty"`
	MashPh                  *float64 `json:"mashPh,omitempty"`
	AcidPhAdjustment        *float64 `json:"acidPhAdjustment,omitempty"`
	SpargeAcidPhAdjustment  *float64 `json:"spargeAcidPhAdjustment,omitempty"`
}

// richest decodes b as T when it satisfies T's schema, else returns nil.
func richest[T any](b []byte) *T {
	v, err := Parse[T](b)
	if err != nil {
		return nil
	}
	return v
}
