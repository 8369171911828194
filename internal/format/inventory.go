package format

import (
	"fmt"
	"strings"

	"brewfather-mcp/internal/models"
)

// Categories describes the inventory collections.
func Categories() string {
	return `Fermentables (grains, malts, adjuncts, sugars)
Hops
Yeasts
Miscellaneous (water agents, finings, spices, herbs, other)
`
}

func amount(inv *float64, unit string) string {
	if inv == nil {
		return NA
	}
	return Float(*inv) + " " + unit
}

func FermentableList(items []models.FermentableSummary) string {
	blocks := make([]string, 0, len(items))
	for _, f := range items {
		blocks = append(blocks, fmt.Sprintf(`Name: %s
Type: %s
Supplier: %s
Quantity: %s
Identifier: %s
`, f.Name, f.Type, f.Supplier, amount(f.Inventory, "kg"), f.ID))
	}
	return Blocks(blocks, "No fermentables found.")
}

func FermentableDetail(f *models.FermentableDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", f.Name)
	fmt.Fprintf(&b, "Type: %s\n", f.Type)
	fmt.Fprintf(&b, "Supplier: %s\n", f.Supplier)
	fmt.Fprintf(&b, "Inventory: %s\n", amount(f.Inventory, "kg"))
	fmt.Fprintf(&b, "Origin: %s\n", Text(f.Origin))
	fmt.Fprintf(&b, "Grain Category: %s\n", Text(f.GrainCategory))
	fmt.Fprintf(&b, "Attenuation: %s\n", Number(f.Attenuation))
	fmt.Fprintf(&b, "Potential: %s\n", Number(f.Potential))
	fmt.Fprintf(&b, "Potential Percentage: %s\n", Number(f.PotentialPercentage))
	fmt.Fprintf(&b, "Color: %s\n", Number(f.Color))
	fmt.Fprintf(&b, "Moisture: %s\n", Number(f.Moisture))
	fmt.Fprintf(&b, "Protein: %s\n", Number(f.Protein))
	fmt.Fprintf(&b, "Diastatic Power: %s\n", Number(f.DiastaticPower))
	fmt.Fprintf(&b, "Friability: %s\n", Number(f.Friability))
	fmt.Fprintf(&b, "Not Fermentable: %s\n", Flag(f.NotFermentable))
	fmt.Fprintf(&b, "Max In Batch: %s\n", Number(f.MaxInBatch))
	fmt.Fprintf(&b, "Coarse Fine Diff: %s\n", Number(f.CoarseFineDiff))
	fmt.Fprintf(&b, "Percent Extract Fine-Ground Dry Basis (FGDB): %s\n", Number(f.Fgdb))
	fmt.Fprintf(&b, "Percent Extract Coarse-Ground Dry Basis (CGDB): %s\n", Number(f.Cgdb))
	fmt.Fprintf(&b, "Free Amino Nitrogen (FAN): %s\n", Number(f.Fan))
	fmt.Fprintf(&b, "Acid: %s\n", Number(f.Acid))
	fmt.Fprintf(&b, "Hidden: %s\n", YesNo(f.Hidden))
	fmt.Fprintf(&b, "Notes: %s\n", Text(f.Notes))
	fmt.Fprintf(&b, "User Notes: %s\n", OrNA(f.UserNotes))
	fmt.Fprintf(&b, "Used In: %s\n", OrNA(f.UsedIn))
	fmt.Fprintf(&b, "Substitutes: %s\n", OrNA(f.Substitutes))
	fmt.Fprintf(&b, "Lot #: %s\n", Text(f.LotNumber))
	fmt.Fprintf(&b, "Cost Per Amount: %s\n", Number(f.CostPerAmount))
	fmt.Fprintf(&b, "Best Before Date: %s\n", Date(f.BestBeforeDate))
	fmt.Fprintf(&b, "Manufacturing Date: %s\n", Date(f.ManufacturingDate))
	writeEnvelope(&b, f.VersionEnvelope)
	fmt.Fprintf(&b, "ID: %s\n", f.ID)
	return b.String()
}

func HopList(items []models.HopSummary) string {
	blocks := make([]string, 0, len(items))
	for _, h := range items {
		use := NA
		if h.Use != nil {
			use = string(*h.Use)
		}
		blocks = append(blocks, fmt.Sprintf(`Identifier: %s
Alpha Acids (A.A): %s
Quantity: %s
Name: %s
Type: %s
Use: %s
`, h.ID, Float(h.Alpha), amount(h.Inventory, "grams"), h.Name, h.Type, use))
	}
	return Blocks(blocks, "No hops found.")
}

func HopDetail(h *models.HopDetail) string {
	use := NA
	if h.Use != nil {
		use = string(*h.Use)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", h.Name)
	fmt.Fprintf(&b, "Type: %s\n", h.Type)
	fmt.Fprintf(&b, "Origin: %s\n", Text(h.Origin))
	fmt.Fprintf(&b, "Year: %s\n", Int(h.Year))
	fmt.Fprintf(&b, "Use: %s\n", use)
	fmt.Fprintf(&b, "Usage: %s\n", Text(h.Usage))
	fmt.Fprintf(&b, "Alpha Acid (%% A.A): %s\n", Float(h.Alpha))
	fmt.Fprintf(&b, "Beta: %s\n", Number(h.Beta))
	fmt.Fprintf(&b, "Inventory: %s\n", amount(h.Inventory, "grams"))
	fmt.Fprintf(&b, "Amount: %s\n", Number(h.Amount))
	fmt.Fprintf(&b, "Time: %s\n", Int(h.Time))
	fmt.Fprintf(&b, "Temp: %s\n", WithUnit(h.Temp, "°C"))
	fmt.Fprintf(&b, "IBU: %s\n", Float(h.IBU))
	fmt.Fprintf(&b, "Oil: %s\n", Number(h.Oil))
	fmt.Fprintf(&b, "Myrcene: %s\n", Number(h.Myrcene))
	fmt.Fprintf(&b, "Caryophyllene: %s\n", Number(h.Caryophyllene))
	fmt.Fprintf(&b, "Humulene: %s\n", Number(h.Humulene))
	fmt.Fprintf(&b, "Cohumulone: %s\n", Number(h.Cohumulone))
	fmt.Fprintf(&b, "Farnesene: %s\n", Number(h.Farnesene))
	fmt.Fprintf(&b, "HSI: %s\n", Number(h.Hsi))
	fmt.Fprintf(&b, "Substitutes: %s\n", OrNA(h.Substitutes))
	fmt.Fprintf(&b, "Used In: %s\n", OrNA(h.UsedIn))
	fmt.Fprintf(&b, "Notes: %s\n", OrNA(h.Notes))
	fmt.Fprintf(&b, "User Notes: %s\n", OrNA(h.UserNotes))
	fmt.Fprintf(&b, "Hidden: %s\n", YesNo(h.Hidden))
	fmt.Fprintf(&b, "Lot #: %s\n", Text(h.LotNumber))
	fmt.Fprintf(&b, "Best Before Date: %s\n", Date(h.BestBeforeDate))
	fmt.Fprintf(&b, "Manufacturing Date: %s\n", Date(h.ManufacturingDate))
	writeEnvelope(&b, h.VersionEnvelope)
	fmt.Fprintf(&b, "ID: %s\n", h.ID)
	return b.String()
}

func YeastList(items []models.YeastSummary) string {
	blocks := make([]string, 0, len(items))
	for _, y := range items {
		blocks = append(blocks, fmt.Sprintf(`Identifier: %s
Attenuation (%%): %s
Quantity: %s
Name: %s
Type: %s
`, y.ID, Number(y.Attenuation), amount(y.Inventory, "packets"), y.Name, y.Type))
	}
	return Blocks(blocks, "No yeasts found.")
}

func YeastDetail(y *models.YeastDetail) string {
	form := NA
	if y.Form != nil {
		form = string(*y.Form)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", y.Name)
	fmt.Fprintf(&b, "Type: %s\n", y.Type)
	fmt.Fprintf(&b, "Form: %s\n", form)
	fmt.Fprintf(&b, "Laboratory: %s\n", OrNA(y.Laboratory))
	fmt.Fprintf(&b, "Product ID: %s\n", Text(y.ProductID))
	fmt.Fprintf(&b, "Inventory: %s\n", amount(y.Inventory, "packets"))
	fmt.Fprintf(&b, "Amount: %s\n", Number(y.Amount))
	fmt.Fprintf(&b, "Unit: %s\n", Text(y.Unit))
	fmt.Fprintf(&b, "Attenuation: %s\n", WithUnit(y.Attenuation, "%"))
	fmt.Fprintf(&b, "Min Attenuation: %s\n", WithUnit(y.MinAttenuation, "%"))
	fmt.Fprintf(&b, "Max Attenuation: %s\n", WithUnit(y.MaxAttenuation, "%"))
	fmt.Fprintf(&b, "Flocculation: %s\n", Text(y.Flocculation))
	fmt.Fprintf(&b, "Min Temp: %s\n", WithUnit(y.MinTemp, "°C"))
	fmt.Fprintf(&b, "Max Temp: %s\n", WithUnit(y.MaxTemp, "°C"))
	fmt.Fprintf(&b, "Max ABV: %s\n", WithUnit(y.MaxAbv, "%"))
	fmt.Fprintf(&b, "Cells Per Package: %s\n", Number(y.CellsPerPkg))
	fmt.Fprintf(&b, "Age Rate: %s\n", Number(y.AgeRate))
	fmt.Fprintf(&b, "Ferments All: %s\n", YesNo(y.FermentsAll))
	fmt.Fprintf(&b, "Description: %s\n", Text(y.Description))
	fmt.Fprintf(&b, "User Notes: %s\n", OrNA(y.UserNotes))
	fmt.Fprintf(&b, "Hidden: %s\n", YesNo(y.Hidden))
	fmt.Fprintf(&b, "Lot #: %s\n", Text(y.LotNumber))
	fmt.Fprintf(&b, "Best Before Date: %s\n", Date(y.BestBeforeDate))
	fmt.Fprintf(&b, "Manufacturing Date: %s\n", Date(y.ManufacturingDate))
	writeEnvelope(&b, y.VersionEnvelope)
	fmt.Fprintf(&b, "ID: %s\n", y.ID)
	return b.String()
}

func miscType(t *models.MiscType) string {
	if t == nil {
		return NA
	}
	return OrNA(t.String())
}

func MiscList(items []models.MiscSummary) string {
	blocks := make([]string, 0, len(items))
	for _, m := range items {
		blocks = append(blocks, fmt.Sprintf(`ID: %s
Name: %s
Type: %s
Inventory: %s (actual unit depends on item)
Notes: %s
`, m.ID, m.Name, miscType(m.Type), amount(m.Inventory, "units"), Text(m.Notes)))
	}
	return Blocks(blocks, "No miscellaneous items found.")
}

func MiscDetail(m *models.MiscDetail) string {
	use := NA
	if m.Use != nil {
		use = string(*m.Use)
	}
	timing := NA
	if m.Time != nil {
		unit := "min"
		if m.TimeIsDays {
			unit = "days"
		}
		timing = fmt.Sprintf("%d %s", *m.Time, unit)
	}
	unit := "units"
	if m.Unit != nil && *m.Unit != "" {
		unit = *m.Unit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", m.ID)
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Type: %s\n", miscType(m.Type))
	fmt.Fprintf(&b, "Use: %s\n", use)
	fmt.Fprintf(&b, "Inventory: %s\n", amount(m.Inventory, unit))
	fmt.Fprintf(&b, "Time: %s\n", timing)
	fmt.Fprintf(&b, "Amount Per Liter: %s\n", Number(m.AmountPerL))
	fmt.Fprintf(&b, "Concentration: %s\n", Number(m.Concentration))
	fmt.Fprintf(&b, "Water Adjustment: %s\n", YesNo(m.WaterAdjustment))
	fmt.Fprintf(&b, "Use For: %s\n", Text(m.UseFor))
	fmt.Fprintf(&b, "Substitutes: %s\n", Text(m.Substitutes))
	fmt.Fprintf(&b, "Notes: %s\n", Text(m.Notes))
	fmt.Fprintf(&b, "User Notes: %s\n", Text(m.UserNotes))
	fmt.Fprintf(&b, "Lot #: %s\n", Text(m.LotNumber))
	fmt.Fprintf(&b, "Cost Per Amount: %s\n", Number(m.CostPerAmount))
	fmt.Fprintf(&b, "Best Before Date: %s\n", Date(m.BestBeforeDate))
	fmt.Fprintf(&b, "Manufacturing Date: %s\n", Date(m.ManufacturingDate))
	fmt.Fprintf(&b, "Hidden: %s\n", YesNo(m.Hidden))
	writeEnvelope(&b, m.VersionEnvelope)
	return b.String()
}

func writeEnvelope(b *strings.Builder, env models.VersionEnvelope) {
	fmt.Fprintf(b, "Created: %s\n", Timestamp(&env.Created))
	fmt.Fprintf(b, "Last Modified: %s\n", Millis(env.ModifiedMs))
	fmt.Fprintf(b, "Version: %s\n", env.Version)
	fmt.Fprintf(b, "Revision: %s\n", env.Revision)
}

// InventoryUpdated confirms an inventory update.
func InventoryUpdated(kind, id string, amount float64, unit string) string {
	return fmt.Sprintf("%s inventory for item %s updated to %s %s.", kind, id, Float(amount), unit)
}
