package format

import (
	"fmt"
	"strings"

	"brewfather-mcp/internal/models"
)

func BatchList(items []models.BatchSummary) string {
	blocks := make([]string, 0, len(items))
	for _, bt := range items {
		blocks = append(blocks, fmt.Sprintf(`ID: %s
Name: %s
Batch Number: %d
Status: %s
Brewer: %s
Brew Date: %s
Recipe Name: %s
`, bt.ID, bt.Name, bt.BatchNo, bt.Status, Text(bt.Brewer), MillisPtr(bt.BrewDate), OrNA(bt.Recipe.Name)))
	}
	return Blocks(blocks, "No batches found.")
}

// Batch renders a batch detail record, followed by its recipe snapshot when
// the batch embeds one.
func Batch(bt *models.BatchDetail) string {
	var b strings.Builder

	recipeID, recipeName := bt.RecipeRef()
	carbType := NA
	if bt.CarbonationType != nil {
		carbType = string(*bt.CarbonationType)
	}
	carbLevel := bt.CarbonationLevel
	if carbLevel == nil && bt.Recipe.Detail != nil {
		carbLevel = bt.Recipe.Detail.Carbonation
	}
	abv := bt.MeasuredAbv
	if abv == nil {
		abv = bt.ABV
	}

	banner(&b, "Batch Details:", "=", 14)
	fmt.Fprintf(&b, "ID: %s\n", bt.ID)
	fmt.Fprintf(&b, "Name: %s\n", bt.Name)
	fmt.Fprintf(&b, "Batch Number: %d\n", bt.BatchNo)
	fmt.Fprintf(&b, "Status: %s\n", bt.Status)
	fmt.Fprintf(&b, "Brewer: %s\n", Text(bt.Brewer))
	fmt.Fprintf(&b, "Brewed: %s\n", YesNo(bt.Brewed))

	b.WriteString("\n")
	heading(&b, "Recipe Information:")
	fmt.Fprintf(&b, "Recipe Name: %s\n", OrNA(recipeName))
	fmt.Fprintf(&b, "Recipe ID: %s\n", OrNA(recipeID))

	b.WriteString("\n")
	heading(&b, "Schedule:")
	fmt.Fprintf(&b, "Brew Date: %s\n", MillisPtr(bt.BrewDate))
	fmt.Fprintf(&b, "Fermentation Start: %s\n", Date(bt.FermentationStartDate))
	fmt.Fprintf(&b, "Fermentation End: %s\n", Date(bt.FermentationEndDate))
	fmt.Fprintf(&b, "Bottling Date: %s\n", Date(bt.BottlingDate))

	b.WriteString("\n")
	heading(&b, "Gravity & Alcohol:")
	fmt.Fprintf(&b, "Original Gravity (OG): %s\n", Number(bt.OriginalGravity()))
	fmt.Fprintf(&b, "Final Gravity (FG): %s\n", Number(bt.FinalGravity()))
	fmt.Fprintf(&b, "ABV: %s\n", WithUnit(abv, "%"))

	b.WriteString("\n")
	heading(&b, "Carbonation:")
	fmt.Fprintf(&b, "Type: %s\n", carbType)
	fmt.Fprintf(&b, "Level: %s\n", WithUnit(carbLevel, " volumes"))

	fmt.Fprintf(&b, "\nTags: %s\n", List(bt.Tags, "None"))

	if len(bt.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, n := range bt.Notes {
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", Text(n.Type), n.Note, Millis(n.Timestamp))
		}
	}

	if len(bt.Measurements) > 0 {
		b.WriteString("\n")
		heading(&b, "Measurements:")
		for _, m := range bt.Measurements {
			comment := ""
			if m.Comment != nil && *m.Comment != "" {
				comment = " (" + *m.Comment + ")"
			}
			fmt.Fprintf(&b, "- %s: %s %s [%s]%s\n", m.Type, Float(m.Value), m.Unit, Date(&m.Time), comment)
		}
	}

	if len(bt.MeasurementDevices) > 0 {
		b.WriteString("\n")
		heading(&b, "Measurement Devices:")
		for _, d := range bt.MeasurementDevices {
			name, _ := d["name"].(string)
			kind, _ := d["type"].(string)
			if name == "" {
				name = "Unknown Device"
			}
			fmt.Fprintf(&b, "- %s (%s)\n", name, OrNA(kind))
		}
	}

	ingredients(&b, "Batch Fermentables:", bt.BatchFermentables)
	ingredients(&b, "Batch Hops:", bt.BatchHops)
	ingredients(&b, "Batch Yeasts:", bt.BatchYeasts)
	ingredients(&b, "Batch Miscellaneous:", bt.BatchMiscs)

	if bt.Recipe.Detail != nil {
		rule := strings.Repeat("=", 50)
		fmt.Fprintf(&b, "\n\n%s\nRECIPE DETAILS\n%s\n\n", rule, rule)
		b.WriteString(Recipe(bt.Recipe.Detail))
	}

	b.WriteString("\n\n")
	heading(&b, "Batch Metadata:")
	fmt.Fprintf(&b, "Batch ID: %s\n", bt.ID)
	fmt.Fprintf(&b, "Version: %s\n", bt.Version)
	fmt.Fprintf(&b, "Last Modified: %s\n", Millis(bt.ModifiedMs))

	return b.String()
}

// batchFields are the measured values accepted by a batch update, in the
// order they are reported.
var batchFields = []string{
	"status",
	"measuredMashPh",
	"measuredBoilSize",
	"measuredFirstWortGravity",
	"measuredPreBoilGravity",
	"measuredPostBoilGravity",
	"measuredKettleSize",
	"measuredOg",
	"measuredFermenterTopUp",
	"measuredBatchSize",
	"measuredFg",
	"measuredBottlingSize",
	"carbonationTemp",
}

// BatchUpdated confirms a batch update and lists the fields that were sent.
func BatchUpdated(id string, fields map[string]any) string {
	var sent []string
	for _, key := range batchFields {
		v, ok := fields[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			sent = append(sent, key+"="+Float(n))
		default:
			sent = append(sent, fmt.Sprintf("%s=%v", key, n))
		}
	}
	if len(sent) == 0 {
		return fmt.Sprintf("Batch %s updated successfully.", id)
	}
	return fmt.Sprintf("Batch %s updated successfully (%s).", id, strings.Join(sent, ", "))
}
