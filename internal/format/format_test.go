package format

import (
	"strings"
	"testing"

	"brewfather-mcp/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestValueHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"float trims zeros", Float(20), "20"},
		{"float keeps fraction", Float(12.5), "12.5"},
		{"nil number", Number(nil), NA},
		{"number", Number(ptr(1.052)), "1.052"},
		{"nil int", Int(nil), NA},
		{"empty text", Text(ptr("")), NA},
		{"text", Text(ptr("Weyermann")), "Weyermann"},
		{"with unit", WithUnit(ptr(23.0), "L"), "23L"},
		{"nil with unit", WithUnit(nil, "L"), NA},
		{"flag", Flag(ptr(true)), "Yes"},
		{"nil flag", Flag(nil), NA},
		{"millis", Millis(1621674499901), "2021-05-22 09:08:19"},
		{"zero millis", MillisPtr(ptr(int64(0))), NA},
		{"iso date", Date(ptr(models.Date("2024-03-01T12:00:00.000Z"))), "2024-03-01 12:00:00"},
		{"unparsable date", Date(ptr(models.Date("next spring"))), "next spring"},
		{"nil date", Date(nil), NA},
		{"timestamp", Timestamp(&models.Timestamp{Seconds: 1621674499, Nanoseconds: 901000000}), "2021-05-22 09:08:19"},
		{"empty list", List(nil, "None"), "None"},
		{"list", List([]string{"ipa", "hazy"}, "None"), "ipa, hazy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFermentableList(t *testing.T) {
	items := []models.FermentableSummary{
		{Stock: models.Stock{ID: "f1", Inventory: ptr(12.5)}, FermentableCore: models.FermentableCore{Name: "Pilsner", Type: "Grain", Supplier: "Weyermann"}},
		{Stock: models.Stock{ID: "f2"}, FermentableCore: models.FermentableCore{Name: "Munich", Type: "Grain", Supplier: "Best"}},
	}

	got := FermentableList(items)
	want := "Name: Pilsner\nType: Grain\nSupplier: Weyermann\nQuantity: 12.5 kg\nIdentifier: f1\n" +
		"---\n" +
		"Name: Munich\nType: Grain\nSupplier: Best\nQuantity: N/A\nIdentifier: f2\n"
	if got != want {
		t.Errorf("FermentableList() =\n%s\nwant\n%s", got, want)
	}
}

func TestEmptyLists(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FermentableList(nil), "No fermentables found."},
		{HopList(nil), "No hops found."},
		{YeastList(nil), "No yeasts found."},
		{MiscList(nil), "No miscellaneous items found."},
		{BatchList(nil), "No batches found."},
		{RecipeList(nil), "No recipes found."},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestHopDetail_AbsentValues(t *testing.T) {
	h := &models.HopDetail{
		HopSummary: models.HopSummary{
			Stock: models.Stock{ID: "h1", Inventory: ptr(100.0)},
			HopCore:   models.HopCore{Name: "Citra", Type: "Pellet", Alpha: 12.5},
		},
		VersionEnvelope: models.VersionEnvelope{Version: "2.1.0", Revision: "rev-1", ModifiedMs: 1700000000000},
	}

	got := HopDetail(h)
	for _, want := range []string{
		"Name: Citra\n",
		"Alpha Acid (% A.A): 12.5\n",
		"Inventory: 100 grams\n",
		"Use: N/A\n",
		"Year: N/A\n",
		"Myrcene: N/A\n",
		"Last Modified: 2023-11-14 22:13:20\n",
		"ID: h1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HopDetail() missing %q in\n%s", want, got)
		}
	}
}

func TestIngredientLine(t *testing.T) {
	link := models.InventoryLink{ID: ptr("x")}
	tests := []struct {
		name string
		ing  models.Ingredient
		want string
	}{
		{
			name: "recipe fermentable",
			ing: models.RecipeFermentable{
				InventoryLink:   link,
				FermentableCore: models.FermentableCore{Name: "Pilsner", Type: "Grain"},
				Amount:          4.5,
				Percentage:      ptr(90.0),
			},
			want: "Pilsner: 4.5kg (90%) - Grain",
		},
		{
			name: "recipe hop defaults to boil temperature",
			ing: models.RecipeHop{
				HopCore: models.HopCore{Name: "Citra", Alpha: 12},
				Amount:  30, Time: 60, Use: models.HopUse("Boil"),
			},
			want: "Citra: 30g (12% AA) - Boil for 60 min @ 100°C",
		},
		{
			name: "recipe misc in days",
			ing: models.RecipeMisc{
				MiscCore:       models.MiscCore{Name: "Gelatin"},
				MiscProperties: models.MiscProperties{Time: ptr(3), TimeIsDays: true, Unit: ptr("tsp")},
				Amount:         1,
				Use:            models.MiscUse("Secondary"),
			},
			want: "Gelatin: 1 tsp - Secondary @ 3 days",
		},
		{
			name: "batch hop adds tracking",
			ing: models.BatchHop{
				RecipeHop: models.RecipeHop{
					HopCore: models.HopCore{Name: "Mosaic", Alpha: 11.5},
					Amount:  50, Time: 0, Use: models.HopUse("Dry Hop"), Temp: ptr(18.0),
				},
				BatchTracking: models.BatchTracking{TotalCost: ptr(4.2), NotInRecipe: true},
			},
			want: "Mosaic: 50g (11.5% AA) - Dry Hop for 0 min @ 18°C [cost 4.2, not in recipe]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IngredientLine(tt.ing); got != tt.want {
				t.Errorf("IngredientLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecipe_Sections(t *testing.T) {
	data := []byte(`{
		"_id": "r1", "name": "West Coast IPA", "author": "sam",
		"style": {"name": "American IPA"},
		"equipment": {"name": "Grainfather G30"},
		"batchSize": 23, "og": 1.062, "ibuFormula": "tinseth",
		"fermentables": [{"_id": "f1", "name": "Pale", "type": "Grain", "supplier": "Best", "amount": 5.5}],
		"hops": [{"_id": null, "name": "Simcoe", "type": "Pellet", "alpha": 13, "amount": 25, "time": 15, "use": "Boil"}],
		"mash": {"name": "Single infusion", "steps": [{"type": "Temperature", "stepTemp": 66, "stepTime": 60}]},
		"_version": "2.1.0", "_rev": "rev-7"
	}`)
	r, err := models.Parse[models.RecipeDetail](data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := Recipe(r)
	for _, want := range []string{
		"Recipe: West Coast IPA\n",
		"Author: sam\n",
		"Name: American IPA\nCategory: N/A\n",
		"Batch Size: 23L\n",
		"IBU: N/A (Formula: tinseth)\n",
		"Fermentables:\n-------------\nPale: 5.5kg (N/A%) - Grain\n",
		"Simcoe: 25g (13% AA) - Boil for 15 min @ 100°C\n",
		"Step 1: Temperature - 66°C for 60 min\n",
		"Recipe ID: r1\nVersion: 2.1.0\nRevision: rev-7\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Recipe() missing %q in\n%s", want, got)
		}
	}
	if strings.Contains(got, "Miscellaneous:") {
		t.Errorf("Recipe() rendered an empty misc section:\n%s", got)
	}
}

func TestBatch_RecipeLinkage(t *testing.T) {
	bt := &models.BatchDetail{
		BatchSummary: models.BatchSummary{
			ID: "b1", Name: "IPA #12", BatchNo: 12, Status: models.BatchFermenting,
			Recipe: models.RecipeLink{Name: "West Coast IPA"},
		},
		RecipeID: ptr("r3"),
		OG:       ptr(1.06),
		Notes: []models.BatchNote{{Note: "pitched", Type: ptr("statusChanged"), Timestamp: 1621674499901}},
	}

	got := Batch(bt)
	for _, want := range []string{
		"Batch Details:\n==============\n",
		"Batch Number: 12\n",
		"Status: Fermenting\n",
		"Recipe Name: West Coast IPA\nRecipe ID: r3\n",
		"Original Gravity (OG): 1.06\n",
		"Final Gravity (FG): N/A\n",
		"- [statusChanged] pitched (2021-05-22 09:08:19)\n",
		"Batch ID: b1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Batch() missing %q in\n%s", want, got)
		}
	}
	if strings.Contains(got, "RECIPE DETAILS") {
		t.Error("Batch() rendered recipe details without a snapshot")
	}
}

func TestBatchUpdated(t *testing.T) {
	got := BatchUpdated("b1", map[string]any{"measuredOg": 1.05, "status": models.BatchConditioning})
	want := "Batch b1 updated successfully (status=Conditioning, measuredOg=1.05)."
	if got != want {
		t.Errorf("BatchUpdated() = %q, want %q", got, want)
	}
}

func TestInventoryUpdated(t *testing.T) {
	got := InventoryUpdated("Hop", "h1", 100, "grams")
	if want := "Hop inventory for item h1 updated to 100 grams."; got != want {
		t.Errorf("InventoryUpdated() = %q, want %q", got, want)
	}
}
