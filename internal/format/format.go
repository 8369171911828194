// Package format renders Brewfather records as the plain-text blocks
// returned by the MCP tools. Output is deterministic: absent values render
// as N/A and epoch-millisecond times render in UTC.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"brewfather-mcp/internal/models"
)

// NA is rendered for every absent value.
const NA = "N/A"

// TimeLayout is used for every rendered point in time.
const TimeLayout = "2006-01-02 15:04:05"

// Separator joins the blocks of a list response.
const Separator = "---\n"

// Float renders f with the fewest digits that represent it exactly.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Number renders an optional number.
func Number(f *float64) string {
	if f == nil {
		return NA
	}
	return Float(*f)
}

// Int renders an optional integer.
func Int(i *int) string {
	if i == nil {
		return NA
	}
	return strconv.Itoa(*i)
}

// Text renders an optional string. Empty strings count as absent.
func Text(s *string) string {
	if s == nil || *s == "" {
		return NA
	}
	return *s
}

// OrNA renders s, or N/A when it is empty.
func OrNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}

// YesNo renders a flag.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Flag renders an optional flag.
func Flag(b *bool) string {
	if b == nil {
		return NA
	}
	return YesNo(*b)
}

// WithUnit renders an optional number followed by unit.
func WithUnit(f *float64, unit string) string {
	if f == nil {
		return NA
	}
	return Float(*f) + unit
}

// Millis renders epoch milliseconds.
func Millis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimeLayout)
}

// MillisPtr renders optional epoch milliseconds; zero counts as absent.
func MillisPtr(ms *int64) string {
	if ms == nil || *ms == 0 {
		return NA
	}
	return Millis(*ms)
}

// Timestamp renders an upstream seconds/nanoseconds timestamp.
func Timestamp(ts *models.Timestamp) string {
	if ts == nil {
		return NA
	}
	return ts.Time().Format(TimeLayout)
}

// Date renders a normalized date. Strings that do not parse as ISO-8601 are
// rendered as received.
func Date(d *models.Date) string {
	if d == nil || *d == "" {
		return NA
	}
	t, err := d.Time()
	if err != nil {
		return d.String()
	}
	return t.UTC().Format(TimeLayout)
}

// List joins comma-separated values, or returns empty when there are none.
func List(values []string, empty string) string {
	if len(values) == 0 {
		return empty
	}
	return strings.Join(values, ", ")
}

// Blocks joins rendered list entries, or returns empty when there are none.
func Blocks(blocks []string, empty string) string {
	if len(blocks) == 0 {
		return empty
	}
	return strings.Join(blocks, Separator)
}

// heading writes a title underlined with dashes.
func heading(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// banner writes a title underlined with rule characters.
func banner(b *strings.Builder, title string, rule string, width int) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat(rule, width))
}
