package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"brewfather-mcp/internal/models"
)

// DefaultReadingsLimit is the number of readings shown by ReadingsSummary
// when no limit is given.
const DefaultReadingsLimit = 10

const (
	tempStableBand = 0.5
	sgStableBand   = 0.002
)

// BrewTracker renders the brew-day tracker of batch id.
func BrewTracker(id string, t *models.BrewTrackerStatus) string {
	if t.Name == nil || *t.Name == "" || len(t.Stages) == 0 {
		return fmt.Sprintf("No brewtracker data available for batch %s. This batch may not have brewing process tracking enabled.", id)
	}

	var b strings.Builder
	banner(&b, "BREWING PROCESS TRACKER: "+*t.Name, "=", 60)

	active := "INACTIVE"
	if t.Active {
		active = "ACTIVE"
	}
	notify := "Off"
	if t.Notify {
		notify = "On"
	}
	fmt.Fprintf(&b, "\nStatus: %s | Stage %d of %d\n", active, t.Stage+1, len(t.Stages))
	fmt.Fprintf(&b, "Completed: %s | Notifications: %s\n\n", YesNo(t.Completed), notify)

	for i, stage := range t.Stages {
		marker := "[pending]"
		switch {
		case i == t.Stage && t.Active:
			marker = "[current]"
		case i < t.Stage:
			marker = "[done]"
		}
		fmt.Fprintf(&b, "%s STAGE %d: %s\n", marker, i+1, strings.ToUpper(stage.Name))
		fmt.Fprintf(&b, "Duration: %d min | Current Step: %d/%d\n", stage.Duration/60, stage.Step+1, len(stage.Steps))
		paused := ""
		if stage.Paused {
			paused = " (PAUSED)"
		}
		fmt.Fprintf(&b, "Position: %d min%s\n\n", stage.Position/60, paused)

		for j, step := range stage.Steps {
			stepMarker := "[ ]"
			switch {
			case i == t.Stage && j == stage.Step && t.Active:
				stepMarker = "[>]"
			case j < stage.Step || i < t.Stage:
				stepMarker = "[x]"
			}
			name := "Step"
			if step.Name != nil && *step.Name != "" {
				name = *step.Name
			} else if step.Type != "" {
				name = capitalize(step.Type) + " Step"
			}
			fmt.Fprintf(&b, "  %s %s", stepMarker, name)
			if step.Time > 0 {
				fmt.Fprintf(&b, " @ %d min", step.Time/60)
			}
			if step.Value != nil && *step.Value != 0 {
				fmt.Fprintf(&b, " (%s°C)", Float(*step.Value))
			}
			b.WriteString("\n")

			if step.Description != nil && *step.Description != "" {
				fmt.Fprintf(&b, "     Note: %s\n", *step.Description)
			}
			if step.Tooltip != nil && *step.Tooltip != "" && (step.Description == nil || *step.Tooltip != *step.Description) {
				fmt.Fprintf(&b, "     Tip: %s\n", *step.Tooltip)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// LastReading renders the most recent device reading.
func LastReading(r *models.Reading) string {
	var b strings.Builder
	banner(&b, "LATEST SENSOR READING", "=", 40)

	fmt.Fprintf(&b, "\nDevice: %s (%s)\n", Text(r.Name), Text(r.DeviceType))
	fmt.Fprintf(&b, "Reading Time: %s\n", Millis(r.Time))
	fmt.Fprintf(&b, "Device ID: %s\n", Text(r.ID))
	b.WriteString("\n")
	heading(&b, "MEASUREMENTS:")

	if r.Temp != nil {
		fmt.Fprintf(&b, "Temperature: %s°C\n", Float(*r.Temp))
	}
	if r.SG != nil {
		fmt.Fprintf(&b, "Specific Gravity: %.4f\n", *r.SG)
	}
	if r.Battery != nil {
		level := "ok"
		switch {
		case *r.Battery <= 20:
			level = "critical"
		case *r.Battery <= 50:
			level = "low"
		}
		fmt.Fprintf(&b, "Battery: %.1f%% (%s)\n", *r.Battery, level)
	}
	if r.RSSI != nil {
		fmt.Fprintf(&b, "Signal: %.1f dBm\n", *r.RSSI)
	}
	if r.TargetTemp != nil {
		fmt.Fprintf(&b, "Target Temp: %s°C\n", Float(*r.TargetTemp))
	}
	if r.Ph != nil {
		fmt.Fprintf(&b, "pH: %s\n", Float(*r.Ph))
	}
	if r.Pressure != nil {
		fmt.Fprintf(&b, "Pressure: %s\n", Float(*r.Pressure))
	}

	return b.String()
}

// ReadingsSummary renders the latest limit readings and, when at least
// three are shown, the temperature and gravity trend between the first and
// last of them. A limit below 1 uses DefaultReadingsLimit.
func ReadingsSummary(readings []models.Reading, limit int) string {
	if len(readings) == 0 {
		return "No sensor readings found for this batch."
	}
	if limit < 1 {
		limit = DefaultReadingsLimit
	}

	recent := readings
	if len(recent) > limit {
		recent = recent[len(recent)-limit:]
	}

	var b strings.Builder
	banner(&b, "RECENT SENSOR READINGS SUMMARY", "=", 50)
	fmt.Fprintf(&b, "\nTotal readings available: %d\n", len(readings))
	fmt.Fprintf(&b, "Showing latest %d readings:\n\n", len(recent))

	for _, r := range recent {
		device := r.Type
		switch {
		case r.Name != nil && *r.Name != "":
			device = *r.Name
		case r.ID != nil && *r.ID != "":
			device = *r.ID
		case device == "":
			device = "Unknown Device"
		}
		fmt.Fprintf(&b, "%s | %s", time.UnixMilli(r.Time).UTC().Format("01-02 15:04"), device)
		if r.Temp != nil {
			fmt.Fprintf(&b, " | %.1f°C", *r.Temp)
		}
		if r.SG != nil {
			fmt.Fprintf(&b, " | SG %.4f", *r.SG)
		}
		if r.Battery != nil {
			fmt.Fprintf(&b, " | %.0f%%", *r.Battery)
		}
		b.WriteString("\n")
	}

	if len(recent) >= 3 {
		first, last := recent[0], recent[len(recent)-1]
		b.WriteString("\nTREND ANALYSIS:\n")
		if first.Temp != nil && last.Temp != nil {
			change := *last.Temp - *first.Temp
			fmt.Fprintf(&b, "Temperature: %s (%+.1f°C)\n", Trend(change, tempStableBand), change)
		}
		if first.SG != nil && last.SG != nil {
			change := *last.SG - *first.SG
			fmt.Fprintf(&b, "Specific Gravity: %s (%+.4f)\n", Trend(change, sgStableBand), change)
		}
	}

	return b.String()
}

// Trend classifies a change against a symmetric stability band.
func Trend(change, band float64) string {
	switch {
	case change > band:
		return "Rising"
	case change < -band:
		return "Falling"
	}
	return "Stable"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
