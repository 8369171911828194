package brewfather

import (
	"regexp"
	"strings"

	"brewfather-mcp/internal/models"
)

// DefaultBaseURL is the Brewfather v2 REST API root.
const DefaultBaseURL = "https://api.brewfather.app/v2"

// Category is an inventory collection.
type Category string

const (
	Fermentables Category = "fermentables"
	Hops         Category = "hops"
	Yeasts       Category = "yeasts"
	Miscs        Category = "miscs"
)

// Categories lists the inventory collections in display order.
var Categories = []Category{Fermentables, Hops, Yeasts, Miscs}

func (c Category) Valid() bool {
	switch c {
	case Fermentables, Hops, Yeasts, Miscs:
		return true
	}
	return false
}

// Unit is the inventory unit for the category.
func (c Category) Unit() string {
	switch c {
	case Fermentables:
		return "kg"
	case Hops:
		return "grams"
	case Yeasts:
		return "packets"
	}
	return "units"
}

const (
	pathInventory = "inventory"
	pathBatches   = "batches"
	pathRecipes   = "recipes"

	// MaxIDLength is the longest identifier accepted in a request path.
	MaxIDLength = 512
)

// idRegex restricts ids to characters that cannot change the request path.
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._:-]*$`)

// ValidateID reports whether id is safe to place in a request path.
func ValidateID(id string) error {
	if id == "" {
		return &models.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if len(id) > MaxIDLength || id == "." || id == ".." || !idRegex.MatchString(id) {
		return &models.ValidationError{Field: "id", Reason: "contains characters not allowed in an identifier"}
	}
	return nil
}

// buildURL joins path segments onto the base URL and appends the query.
func (c *Client) buildURL(q *ListQuery, segments ...string) string {
	u := c.baseURL + "/" + strings.Join(segments, "/")
	if qs, ok := q.Encode(); ok {
		u += "?" + qs
	}
	return u
}

func inventoryPath(cat Category, id ...string) []string {
	return append([]string{pathInventory, string(cat)}, id...)
}
