// Package inventory builds the cross-category stock overview: every
// inventory list is fetched and hydrated into details so lot numbers and
// best-before dates can be reported alongside the stock level.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/format"
	"brewfather-mcp/internal/models"

	"github.com/rs/zerolog"
)

// HydrateLimit caps the detail requests in flight for one category.
const HydrateLimit = 3

// Source is the part of the Brewfather client the summary reads from.
type Source interface {
	ListFermentables(ctx context.Context, q *brewfather.ListQuery) ([]models.FermentableSummary, error)
	Fermentable(ctx context.Context, id string) (*models.FermentableDetail, error)
	ListHops(ctx context.Context, q *brewfather.ListQuery) ([]models.HopSummary, error)
	Hop(ctx context.Context, id string) (*models.HopDetail, error)
	ListYeasts(ctx context.Context, q *brewfather.ListQuery) ([]models.YeastSummary, error)
	Yeast(ctx context.Context, id string) (*models.YeastDetail, error)
	ListMiscs(ctx context.Context, q *brewfather.ListQuery) ([]models.MiscSummary, error)
	Misc(ctx context.Context, id string) (*models.MiscDetail, error)
}

// Field is one labelled value of a summary row.
type Field struct {
	Label string
	Value string
}

// Row is one inventory item, fields in display order.
type Row []Field

// Section is the summary of one category. Err is set when the category
// could not be fetched; Rows is then empty.
type Section struct {
	Category brewfather.Category
	Title    string
	Rows     []Row
	Err      error
}

// Service builds inventory summaries.
type Service struct {
	source Source
	log    zerolog.Logger
}

func NewService(source Source, logger zerolog.Logger) *Service {
	return &Service{source: source, log: logger}
}

// Summary fetches every category in display order. A failing category is
// logged and reported in its section; the others are still summarized.
// The returned error is only set when ctx ends.
func (s *Service) Summary(ctx context.Context) ([]Section, error) {
	builders := []struct {
		category brewfather.Category
		title    string
		build    func(context.Context) ([]Row, error)
	}{
		{brewfather.Fermentables, "Fermentables", s.fermentables},
		{brewfather.Hops, "Hops", s.hops},
		{brewfather.Yeasts, "Yeasts", s.yeasts},
		{brewfather.Miscs, "Miscellaneous Items", s.miscs},
	}

	sections := make([]Section, 0, len(builders))
	for _, b := range builders {
		rows, err := b.build(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			s.log.Warn().Err(err).Str("category", string(b.category)).Msg("Failed to summarize inventory category")
		} else {
			s.log.Debug().Str("category", string(b.category)).Int("items", len(rows)).Msg("inventory: category summarized")
		}
		sections = append(sections, Section{Category: b.category, Title: b.title, Rows: rows, Err: err})
	}
	return sections, nil
}

func (s *Service) fermentables(ctx context.Context) ([]Row, error) {
	items, err := s.source.ListFermentables(ctx, nil)
	if err != nil {
		return nil, err
	}
	details, err := brewfather.Hydrate(ctx, HydrateLimit, s.source.Fermentable, items)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		d := details[i]
		rows = append(rows, Row{
			{"Name", item.Name},
			{"Type", item.Type},
			{"Yield", format.WithUnit(d.PotentialPercentage, "%")},
			{"Lot #", format.Text(d.LotNumber)},
			{"Best Before Date", format.Date(d.BestBeforeDate)},
			{"Inventory Amount", stock(d.Inventory, brewfather.Fermentables)},
		})
	}
	return rows, nil
}

func (s *Service) hops(ctx context.Context) ([]Row, error) {
	items, err := s.source.ListHops(ctx, nil)
	if err != nil {
		return nil, err
	}
	details, err := brewfather.Hydrate(ctx, HydrateLimit, s.source.Hop, items)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		d := details[i]
		rows = append(rows, Row{
			{"Name", item.Name},
			{"Year", format.Int(d.Year)},
			{"Alpha Acid", format.Float(item.Alpha) + "%"},
			{"Lot #", format.Text(d.LotNumber)},
			{"Best Before Date", format.Date(d.BestBeforeDate)},
			{"Inventory Amount", stock(d.Inventory, brewfather.Hops)},
		})
	}
	return rows, nil
}

func (s *Service) yeasts(ctx context.Context) ([]Row, error) {
	items, err := s.source.ListYeasts(ctx, nil)
	if err != nil {
		return nil, err
	}
	details, err := brewfather.Hydrate(ctx, HydrateLimit, s.source.Yeast, items)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		d := details[i]
		form := format.NA
		if d.Form != nil {
			form = string(*d.Form)
		}
		rows = append(rows, Row{
			{"Name", item.Name},
			{"Form", form},
			{"Attenuation", format.WithUnit(item.Attenuation, "%")},
			{"Lot #", format.Text(d.LotNumber)},
			{"Best Before Date", format.Date(d.BestBeforeDate)},
			{"Inventory Amount", stock(d.Inventory, brewfather.Yeasts)},
		})
	}
	return rows, nil
}

func (s *Service) miscs(ctx context.Context) ([]Row, error) {
	items, err := s.source.ListMiscs(ctx, nil)
	if err != nil {
		return nil, err
	}
	details, err := brewfather.Hydrate(ctx, HydrateLimit, s.source.Misc, items)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		d := details[i]
		kind := format.NA
		if item.Type != nil {
			kind = format.OrNA(item.Type.String())
		}
		rows = append(rows, Row{
			{"Name", item.Name},
			{"Type", kind},
			{"Notes", format.Text(d.Notes)},
			{"Inventory Amount", stock(d.Inventory, brewfather.Miscs)},
		})
	}
	return rows, nil
}

func stock(amount *float64, cat brewfather.Category) string {
	if amount == nil {
		return format.NA
	}
	return format.Float(*amount) + " " + cat.Unit()
}

// Render formats sections as the plain-text inventory overview.
func Render(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, sec := range sections {
		var b strings.Builder
		fmt.Fprintf(&b, "%s:\n\n", sec.Title)
		if sec.Err != nil {
			fmt.Fprintf(&b, "Unavailable: %s\n", strings.TrimSpace(sec.Err.Error()))
		} else if len(sec.Rows) == 0 {
			b.WriteString("No items in stock.\n")
		}
		for _, row := range sec.Rows {
			for _, f := range row {
				fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
			}
			b.WriteString("\n")
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n"+format.Separator)
}
