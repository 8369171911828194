package models

import "encoding/json"

type BrewTrackerStep struct {
	Name        *string  `json:"name,omitempty"`
	Type        string   `json:"type"`
	Time        int      `json:"time"`
	Duration    *int     `json:"duration,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tooltip     *string  `json:"tooltip,omitempty"`
	PauseBefore bool     `json:"pauseBefore,omitempty"`
	Final       *bool    `json:"final,omitempty"`
}

type BrewTrackerStage struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Duration int               `json:"duration"`
	Step     int               `json:"step"`
	Position int               `json:"position"`
	Paused   bool              `json:"paused"`
	Steps    []BrewTrackerStep `json:"steps"`
}

// BrewTrackerStatus is the brew-day tracker attached to a batch.
type BrewTrackerStatus struct {
	ID        *string            `json:"_id,omitempty"`
	Name      *string            `json:"name,omitempty"`
	Stage     int                `json:"stage,omitempty"`
	Hidden    bool               `json:"hidden,omitempty"`
	Alarm     bool               `json:"alarm,omitempty"`
	Active    bool               `json:"active,omitempty"`
	Completed bool               `json:"completed,omitempty"`
	Enabled   bool               `json:"enabled,omitempty"`
	Notify    bool               `json:"notify,omitempty"`
	Stages    []BrewTrackerStage `json:"stages,omitempty"`
	Revision  *string            `json:"_rev,omitempty"`
}

func (s *BrewTrackerStatus) UnmarshalJSON(b []byte) error {
	type plain BrewTrackerStatus
	p := plain{Enabled: true, Notify: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = BrewTrackerStatus(p)
	return nil
}

// CurrentStage returns the active stage, if the stage index is in range.
func (s *BrewTrackerStatus) CurrentStage() (*BrewTrackerStage, bool) {
	if s.Stage < 0 || s.Stage >= len(s.Stages) {
		return nil, false
	}
	return &s.Stages[s.Stage], true
}

// Reading is one sensor sample reported by a device attached to a batch.
type Reading struct {
	Time       int64    `json:"time"`
	Type       string   `json:"type"`
	ID         *string  `json:"id,omitempty"`
	Name       *string  `json:"name,omitempty"`
	DeviceType *string  `json:"deviceType,omitempty"`
	DeviceID   *string  `json:"deviceId,omitempty"`
	Temp       *float64 `json:"temp,omitempty"`
	SG         *float64 `json:"sg,omitempty"`
	Battery    *float64 `json:"battery,omitempty"`
	RSSI       *float64 `json:"rssi,omitempty"`
	TargetTemp *float64 `json:"target_temp,omitempty"`
	Ph         *float64 `json:"ph,omitempty"`
	Pressure   *float64 `json:"pressure,omitempty"`
	Angle      *float64 `json:"angle,omitempty"`
	Interval   *int     `json:"interval,omitempty"`
	RoomTemp   *float64 `json:"roomTemp,omitempty"`
	FridgeTemp *float64 `json:"fridgeTemp,omitempty"`
	Beer       *float64 `json:"beer,omitempty"`
	BPM        *float64 `json:"bpm,omitempty"`
	Comment    *string  `json:"comment,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

// Taken returns the reading time as a Date.
func (r Reading) Taken() Date { return DateFromMillis(r.Time) }
