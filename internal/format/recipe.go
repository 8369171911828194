package format

import (
	"fmt"
	"strings"

	"brewfather-mcp/internal/models"
)

func RecipeList(items []models.RecipeSummary) string {
	blocks := make([]string, 0, len(items))
	for _, r := range items {
		style := NA
		if r.Style != nil {
			style = OrNA(r.Style.Name)
		}
		kind := NA
		if r.Type != nil {
			kind = string(*r.Type)
		}
		blocks = append(blocks, fmt.Sprintf(`ID: %s
Name: %s
Author: %s
Style: %s
Type: %s
`, r.ID, r.Name, Text(r.Author), style, kind))
	}
	return Blocks(blocks, "No recipes found.")
}

// IngredientLine renders one recipe or batch ingredient on a single line.
// Batch ingredients add their cost and the not-in-recipe marker.
func IngredientLine(ing models.Ingredient) string {
	switch v := ing.(type) {
	case models.RecipeFermentable:
		return fmt.Sprintf("%s: %skg (%s%%) - %s", v.Name, Float(v.Amount), Number(v.Percentage), v.Type)
	case models.RecipeHop:
		temp := "100"
		if v.Temp != nil {
			temp = Float(*v.Temp)
		}
		return fmt.Sprintf("%s: %sg (%s%% AA) - %s for %d min @ %s°C", v.Name, Float(v.Amount), Float(v.Alpha), v.Use, v.Time, temp)
	case models.RecipeYeast:
		unit := "pkg"
		if v.Unit != nil && *v.Unit != "" {
			unit = *v.Unit
		}
		form := NA
		if v.Form != nil {
			form = string(*v.Form)
		}
		return fmt.Sprintf("%s (%s) - %s %s\nForm: %s, Attenuation: %s", v.Name, OrNA(v.Laboratory), Float(v.Amount), unit, form, WithUnit(v.Attenuation, "%"))
	case models.RecipeMisc:
		unit := "g"
		if v.Unit != nil && *v.Unit != "" {
			unit = *v.Unit
		}
		line := fmt.Sprintf("%s: %s %s - %s", v.Name, Float(v.Amount), unit, v.Use)
		if v.Time != nil {
			span := "min"
			if v.TimeIsDays {
				span = "days"
			}
			line += fmt.Sprintf(" @ %d %s", *v.Time, span)
		}
		return line
	case models.BatchFermentable:
		return IngredientLine(v.RecipeFermentable) + batchSuffix(v.BatchTracking)
	case models.BatchHop:
		return IngredientLine(v.RecipeHop) + batchSuffix(v.BatchTracking)
	case models.BatchYeast:
		return IngredientLine(v.RecipeYeast) + batchSuffix(v.BatchTracking)
	case models.BatchMisc:
		return IngredientLine(v.RecipeMisc) + batchSuffix(v.BatchTracking)
	}
	return ing.DisplayName()
}

func batchSuffix(t models.BatchTracking) string {
	var parts []string
	if t.TotalCost != nil {
		parts = append(parts, "cost "+Float(*t.TotalCost))
	}
	if t.NotInRecipe {
		parts = append(parts, "not in recipe")
	}
	if t.RemovedFromInventory {
		parts = append(parts, "removed from inventory")
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

func ingredients[T models.Ingredient](b *strings.Builder, title string, items []T) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	heading(b, title)
	for _, item := range items {
		b.WriteString(IngredientLine(item))
		b.WriteString("\n")
	}
}

// Recipe renders a recipe detail record.
func Recipe(r *models.RecipeDetail) string {
	var b strings.Builder

	kind := NA
	if r.Type != nil {
		kind = string(*r.Type)
	}
	created, modified := NA, NA
	if r.Created != nil {
		created = Timestamp(r.Created)
	}
	if r.Modified != nil {
		modified = Timestamp(r.Modified)
	}

	fmt.Fprintf(&b, "Recipe: %s\n", r.Name)
	fmt.Fprintf(&b, "Author: %s\n", Text(r.Author))
	fmt.Fprintf(&b, "Type: %s\n", kind)
	fmt.Fprintf(&b, "Created: %s\n", created)
	fmt.Fprintf(&b, "Last Modified: %s\n", modified)
	fmt.Fprintf(&b, "Public: %s\n", Flag(r.Public))
	fmt.Fprintf(&b, "Tags: %s\n", List(r.Tags, "None"))

	b.WriteString("\n")
	heading(&b, "Style Information:")
	writeStyle(&b, r.Style)
	conformity := false
	if r.StyleConformity != nil {
		conformity = *r.StyleConformity
	}
	fmt.Fprintf(&b, "Conformity: %s\n", YesNo(conformity))

	ibuFormula, fgFormula := NA, NA
	if r.IbuFormula != nil {
		ibuFormula = string(*r.IbuFormula)
	}
	if r.FgFormula != nil {
		fgFormula = string(*r.FgFormula)
	}

	b.WriteString("\n")
	heading(&b, "Specifications:")
	fmt.Fprintf(&b, "Batch Size: %s\n", WithUnit(r.BatchSize, "L"))
	fmt.Fprintf(&b, "Boil Size: %s\n", WithUnit(r.BoilSize, "L"))
	fmt.Fprintf(&b, "Boil Time: %s minutes\n", Int(r.BoilTime))
	fmt.Fprintf(&b, "Brewhouse Efficiency: %s\n", WithUnit(r.Efficiency, "%"))
	fmt.Fprintf(&b, "Mash Efficiency: %s\n", WithUnit(r.MashEfficiency, "%"))
	fmt.Fprintf(&b, "Original Gravity: %s (%s)\n", Number(r.OG), WithUnit(r.OgPlato, "°P"))
	fmt.Fprintf(&b, "Final Gravity: %s\n", Number(r.FG))
	fmt.Fprintf(&b, "IBU: %s (Formula: %s)\n", Number(r.IBU), ibuFormula)
	fmt.Fprintf(&b, "Color: %s\n", WithUnit(r.Color, " SRM"))
	fmt.Fprintf(&b, "ABV: %s\n", WithUnit(r.ABV, "%"))
	fmt.Fprintf(&b, "Attenuation: %s\n", WithUnit(r.Attenuation, "%"))
	fmt.Fprintf(&b, "BU:GU Ratio: %s\n", Number(r.BuGuRatio))
	fmt.Fprintf(&b, "Carbonation: %s\n", WithUnit(r.Carbonation, " volumes"))
	fmt.Fprintf(&b, "Pre-Boil Gravity: %s\n", Number(r.PreBoilGravity))
	fmt.Fprintf(&b, "Post-Boil Gravity: %s\n", Number(r.PostBoilGravity))

	b.WriteString("\n")
	heading(&b, "Process Details:")
	fmt.Fprintf(&b, "FG Formula: %s\n", fgFormula)
	fmt.Fprintf(&b, "Primary Temp: %s\n", WithUnit(r.PrimaryTemp, "°C"))
	fmt.Fprintf(&b, "First Wort Gravity: %s\n", Number(r.FirstWortGravity))
	fmt.Fprintf(&b, "Diastatic Power: %s\n", Number(r.DiastaticPower))
	fmt.Fprintf(&b, "Hopstand Temp: %s\n", WithUnit(r.AvgWeightedHopstandTemp, "°C"))
	fmt.Fprintf(&b, "Dry Hop Rate: %s\n", WithUnit(r.SumDryHopPerLiter, "g/L"))

	b.WriteString("\n")
	heading(&b, "Ingredient Totals:")
	fmt.Fprintf(&b, "Total Fermentables: %s\n", WithUnit(r.FermentablesTotalAmount, "kg"))
	fmt.Fprintf(&b, "Total Hops: %s\n", WithUnit(r.HopsTotalAmount, "g"))

	b.WriteString("\n")
	heading(&b, "Equipment Profile:")
	writeEquipment(&b, r.Equipment)

	ingredients(&b, "Fermentables:", r.Fermentables)
	ingredients(&b, "Hops Schedule:", r.Hops)
	ingredients(&b, "Yeast:", r.Yeasts)
	ingredients(&b, "Miscellaneous:", r.Miscs)

	if len(r.BoilSteps) > 0 {
		b.WriteString("\n")
		heading(&b, "Boil Schedule:")
		for _, step := range r.BoilSteps {
			fmt.Fprintf(&b, "@ %d min: %s\n", step.Time, step.Name)
		}
	}

	if r.Mash != nil {
		b.WriteString("\n")
		heading(&b, "Mash Profile:")
		fmt.Fprintf(&b, "Name: %s\n", OrNA(r.Mash.Name))
		for i, step := range r.Mash.Steps {
			fmt.Fprintf(&b, "Step %d: %s - %s°C for %d min", i+1, step.Type, Float(step.StepTemp), step.StepTime)
			if step.RampTime != nil && *step.RampTime > 0 {
				fmt.Fprintf(&b, " (ramp: %d min)", *step.RampTime)
			}
			b.WriteString("\n")
		}
	}

	if r.Water != nil {
		writeWater(&b, r.Water)
	}

	if r.Fermentation != nil {
		b.WriteString("\n")
		heading(&b, "Fermentation Schedule:")
		fmt.Fprintf(&b, "Profile: %s\n", OrNA(r.Fermentation.Name))
		for i, step := range r.Fermentation.Steps {
			fmt.Fprintf(&b, "Step %d: %s - %s°C for %d days", i+1, step.Type, Float(step.StepTemp), step.StepTime)
			if step.ActualTime != nil && *step.ActualTime > 0 {
				fmt.Fprintf(&b, " (started: %s)", Millis(*step.ActualTime)[:10])
			}
			b.WriteString("\n")
		}
	}

	if r.Notes != nil && *r.Notes != "" {
		b.WriteString("\n")
		heading(&b, "Notes:")
		fmt.Fprintf(&b, "%s\n", *r.Notes)
	}

	if r.RbRatio != nil {
		b.WriteString("\n")
		heading(&b, "Advanced Calculations:")
		fmt.Fprintf(&b, "RB Ratio: %s\n", Float(*r.RbRatio))
		if r.TotalGravity != nil {
			fmt.Fprintf(&b, "Total Gravity: %s\n", Float(*r.TotalGravity))
		}
		if r.ExtraGravity != nil {
			fmt.Fprintf(&b, "Extra Gravity: %s\n", Float(*r.ExtraGravity))
		}
	}

	b.WriteString("\n")
	heading(&b, "Metadata:")
	fmt.Fprintf(&b, "Recipe ID: %s\n", OrNA(r.ID))
	fmt.Fprintf(&b, "Version: %s\n", Text(r.Version))
	fmt.Fprintf(&b, "Revision: %s\n", Text(r.Revision))
	if len(r.SearchTags) > 0 {
		fmt.Fprintf(&b, "Search Tags: %s\n", List(r.SearchTags, ""))
	}

	return b.String()
}

func writeStyle(b *strings.Builder, s *models.StyleRef) {
	if s == nil {
		fmt.Fprintf(b, "Name: %s\nCategory: %s\nType: %s\nStyle Guide: %s\n", NA, NA, NA, NA)
		return
	}
	fmt.Fprintf(b, "Name: %s\n", OrNA(s.Name))
	if s.Detail == nil {
		fmt.Fprintf(b, "Category: %s\nType: %s\nStyle Guide: %s\n", NA, NA, NA)
		return
	}
	d := s.Detail
	fmt.Fprintf(b, "Category: %s\n", OrNA(d.Category))
	fmt.Fprintf(b, "Type: %s\n", OrNA(d.Type))
	fmt.Fprintf(b, "Style Guide: %s\n", Text(d.StyleGuide))
	fmt.Fprintf(b, "OG Range: %s - %s\n", Float(d.OgMin), Float(d.OgMax))
	fmt.Fprintf(b, "FG Range: %s - %s\n", Float(d.FgMin), Float(d.FgMax))
	fmt.Fprintf(b, "IBU Range: %s - %s\n", Float(d.IbuMin), Float(d.IbuMax))
	fmt.Fprintf(b, "ABV Range: %s - %s%%\n", Float(d.AbvMin), Float(d.AbvMax))
	fmt.Fprintf(b, "Color Range: %s - %s SRM\n", Float(d.ColorMin), Float(d.ColorMax))
}

func writeEquipment(b *strings.Builder, e *models.EquipmentRef) {
	if e == nil {
		fmt.Fprintf(b, "Name: %s\n", NA)
		return
	}
	fmt.Fprintf(b, "Name: %s\n", OrNA(e.Name))
	if e.Detail == nil {
		return
	}
	d := e.Detail
	fmt.Fprintf(b, "Batch Size: %sL\n", Float(d.BatchSize))
	fmt.Fprintf(b, "Boil Size: %sL\n", Float(d.BoilSize))
	fmt.Fprintf(b, "Boil Time: %d minutes\n", d.BoilTime)
	fmt.Fprintf(b, "Efficiency: %s%%\n", Float(d.Efficiency))
	fmt.Fprintf(b, "Mash Efficiency: %s%%\n", Float(d.MashEfficiency))
}

func minerals(p *models.WaterProfile) string {
	if p == nil {
		return NA
	}
	return fmt.Sprintf("Ca: %s Mg: %s Na: %s Cl: %s SO4: %s HCO3: %s",
		Float(p.Calcium), Float(p.Magnesium), Float(p.Sodium),
		Float(p.Chloride), Float(p.Sulfate), Float(p.Bicarbonate))
}

func writeWater(b *strings.Builder, w *models.WaterSettings) {
	b.WriteString("\n")
	heading(b, "Water Profile:")
	source := NA
	if w.Source != nil {
		source = OrNA(w.Source.Name)
	}
	fmt.Fprintf(b, "Source Water: %s\n", source)
	fmt.Fprintf(b, "Mash pH: %s\n", Number(w.MashPh))
	if w.AcidPhAdjustment != nil && *w.AcidPhAdjustment != 0 {
		fmt.Fprintf(b, "Acid pH Adjustment: %s\n", Float(*w.AcidPhAdjustment))
	}

	fmt.Fprintf(b, "\nSource Profile (mg/L):\n%s\n", minerals(w.Source))
	fmt.Fprintf(b, "\nTarget Profile (mg/L):\n%s\n", minerals(w.Total))

	adj := w.MashAdjustments
	if adj == nil {
		return
	}
	salts := []struct {
		label string
		value *float64
	}{
		{"CaCl2", adj.CalciumChloride},
		{"CaSO4", adj.CalciumSulfate},
		{"MgSO4", adj.MagnesiumSulfate},
		{"NaCl", adj.SodiumChloride},
		{"NaHCO3", adj.SodiumBicarbonate},
	}
	var lines []string
	for _, s := range salts {
		if s.value != nil && *s.value != 0 {
			lines = append(lines, fmt.Sprintf("%s: %sg", s.label, Float(*s.value)))
		}
	}
	if len(lines) > 0 {
		fmt.Fprintf(b, "\nMash Adjustments (g):\n%s\n", strings.Join(lines, "\n"))
	}
}
