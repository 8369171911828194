package brewfather

import (
	"net/url"
	"strconv"
	"strings"
)

// Direction is a sort direction for list endpoints.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ListQuery filters, sorts and pages a list endpoint. Boolean filters are
// only sent when true: the API cannot be asked for an explicit false.
type ListQuery struct {
	InventoryNegative bool
	Complete          bool
	InventoryExists   bool
	Limit             int
	StartAfter        string
	OrderBy           string
	OrderByDirection  Direction
}

// Encode renders the query string in a fixed key order. It reports false
// when no field is set.
func (q *ListQuery) Encode() (string, bool) {
	if q == nil {
		return "", false
	}

	var parts []string
	if q.InventoryNegative {
		parts = append(parts, "inventory_negative=true")
	}
	if q.Complete {
		parts = append(parts, "complete=true")
	}
	if q.InventoryExists {
		parts = append(parts, "inventory_exists=true")
	}
	if q.Limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(q.Limit))
	}
	if q.StartAfter != "" {
		parts = append(parts, "start_after="+url.QueryEscape(q.StartAfter))
	}
	if q.OrderBy != "" {
		parts = append(parts, "order_by="+url.QueryEscape(q.OrderBy))
	}
	if q.OrderByDirection != "" {
		parts = append(parts, "order_by_direction="+string(q.OrderByDirection))
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "&"), true
}
