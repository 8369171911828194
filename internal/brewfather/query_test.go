package brewfather

import "testing"

func TestListQuery_Encode(t *testing.T) {
	tests := []struct {
		name   string
		query  *ListQuery
		want   string
		wantOK bool
	}{
		{"nil query", nil, "", false},
		{"zero query", &ListQuery{}, "", false},
		{"false booleans are not emitted", &ListQuery{InventoryNegative: false, Complete: false}, "", false},
		{
			name:   "limit and inventory exists",
			query:  &ListQuery{Limit: 50, InventoryExists: true},
			want:   "inventory_exists=true&limit=50",
			wantOK: true,
		},
		{
			name: "every field in fixed order",
			query: &ListQuery{
				OrderByDirection:  Descending,
				OrderBy:           "name",
				StartAfter:        "abc",
				Limit:             10,
				InventoryExists:   true,
				Complete:          true,
				InventoryNegative: true,
			},
			want:   "inventory_negative=true&complete=true&inventory_exists=true&limit=10&start_after=abc&order_by=name&order_by_direction=desc",
			wantOK: true,
		},
		{
			name:   "free text is escaped",
			query:  &ListQuery{StartAfter: "a b&c", OrderBy: "_timestamp desc"},
			want:   "start_after=a+b%26c&order_by=_timestamp+desc",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.query.Encode()
			if ok != tt.wantOK {
				t.Errorf("Encode() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	c := &Client{baseURL: "https://api.example.com/v2"}

	tests := []struct {
		name     string
		query    *ListQuery
		segments []string
		want     string
	}{
		{"no query", nil, []string{"batches"}, "https://api.example.com/v2/batches"},
		{"empty query adds no question mark", &ListQuery{}, []string{"batches"}, "https://api.example.com/v2/batches"},
		{
			name:     "single question mark",
			query:    &ListQuery{Limit: 50, InventoryExists: true},
			segments: inventoryPath(Hops),
			want:     "https://api.example.com/v2/inventory/hops?inventory_exists=true&limit=50",
		},
		{"detail path", nil, inventoryPath(Yeasts, "y1"), "https://api.example.com/v2/inventory/yeasts/y1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.buildURL(tt.query, tt.segments...); got != tt.want {
				t.Errorf("buildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"f1", true},
		{"default-016efc", true},
		{"AbC.9_x:y-z", true},
		{"", false},
		{"..", false},
		{"../batches", false},
		{"a/b", false},
		{"a?b", false},
		{"-leading", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateID(%q) error = %v, want valid %v", tt.id, err, tt.valid)
			}
		})
	}
}
