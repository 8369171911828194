package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"brewfather-mcp/internal/brewfather"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const envelope = `"_version": "2.1.0", "_created": {"_seconds": 1621674499, "_nanoseconds": 0},
	"_timestamp": {"_seconds": 1621674499, "_nanoseconds": 0}, "_timestamp_ms": 1621674499901, "_rev": "rev-1"`

// upstream is a fake Brewfather API. Routes map "METHOD /path" to a JSON
// body; requests to other routes get a 404.
type upstream struct {
	routes map[string]string
	calls  atomic.Int32
	last   atomic.Pointer[recorded]
}

type recorded struct {
	method string
	path   string
	query  string
	body   string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.calls.Add(1)
	body, _ := io.ReadAll(r.Body)
	u.last.Store(&recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(body)})

	resp, ok := u.routes[r.Method+" "+r.URL.Path]
	if !ok {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, resp)
}

func connect(t *testing.T, routes map[string]string) (*mcp.ClientSession, *upstream) {
	t.Helper()

	up := &upstream{routes: routes}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	client, err := brewfather.NewClient(brewfather.Config{
		UserID:  "user",
		APIKey:  "secret",
		BaseURL: srv.URL + "/v2",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	server := NewServer(NewHandler(client, zerolog.Nop()), "test")
	t1, t2 := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, t1, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	cs, err := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil).Connect(ctx, t2, nil)
	if err != nil {
		ss.Close()
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() {
		cs.Close()
		ss.Close()
	})
	return cs, up
}

func call(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s) error = %v", name, err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("CallTool(%s) returned no content", name)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s) content = %T, want *mcp.TextContent", name, res.Content[0])
	}
	return text.Text, res.IsError
}

func TestListTools(t *testing.T) {
	cs, _ := connect(t, nil)

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	want := []string{
		"get_batch_brewtracker", "get_batch_detail", "get_batch_last_reading", "get_batch_readings_summary",
		"get_fermentable_detail", "get_hop_detail", "get_misc_detail", "get_recipe_detail", "get_yeast_detail",
		"inventory_summary", "list_batches", "list_fermentables", "list_hops", "list_inventory_categories",
		"list_misc_items", "list_recipes", "list_yeasts", "update_batch", "update_fermentable_inventory",
		"update_hop_inventory", "update_misc_inventory", "update_yeast_inventory",
	}
	if got := strings.Join(names, ","); got != strings.Join(want, ",") {
		t.Errorf("tools = %s\nwant %s", got, strings.Join(want, ","))
	}
}

func TestListFermentables(t *testing.T) {
	cs, up := connect(t, map[string]string{
		"GET /v2/inventory/fermentables": `[
			{"_id": "f1", "name": "Pilsner", "type": "Grain", "supplier": "Weyermann", "inventory": 5},
			{"_id": "f2", "name": "Munich", "type": "Grain", "supplier": "Best", "inventory": 1.5}
		]`,
	})

	text, isErr := call(t, cs, "list_fermentables", nil)
	if isErr {
		t.Fatalf("list_fermentables failed: %s", text)
	}
	if got := up.last.Load().query; got != "inventory_exists=true&limit=50" {
		t.Errorf("query = %q, want inventory_exists=true&limit=50", got)
	}
	if !strings.Contains(text, "Name: Pilsner\n") || !strings.Contains(text, "---\nName: Munich\n") {
		t.Errorf("list_fermentables text =\n%s", text)
	}
}

func TestUpdateBatch(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		cs, up := connect(t, nil)
		text, isErr := call(t, cs, "update_batch", map[string]any{"batch_id": "b1"})
		if isErr || text != "No update parameters provided." {
			t.Errorf("update_batch = %q (error %v), want no-op message", text, isErr)
		}
		if n := up.calls.Load(); n != 0 {
			t.Errorf("upstream calls = %d, want 0", n)
		}
	})

	t.Run("status and gravity", func(t *testing.T) {
		cs, up := connect(t, map[string]string{"PATCH /v2/batches/b1": `{}`})
		text, isErr := call(t, cs, "update_batch", map[string]any{
			"batch_id":   "b1",
			"status":     "Fermenting",
			"measuredOg": 1.052,
		})
		if isErr {
			t.Fatalf("update_batch failed: %s", text)
		}
		if want := "Batch b1 updated successfully (status=Fermenting, measuredOg=1.052)."; text != want {
			t.Errorf("update_batch = %q, want %q", text, want)
		}

		var body map[string]any
		if err := json.Unmarshal([]byte(up.last.Load().body), &body); err != nil {
			t.Fatalf("PATCH body: %v", err)
		}
		if len(body) != 2 || body["status"] != "Fermenting" || body["measuredOg"] != 1.052 {
			t.Errorf("PATCH body = %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		cs, up := connect(t, nil)
		text, isErr := call(t, cs, "update_batch", map[string]any{"batch_id": "b1", "status": "Drinking"})
		if !isErr || !strings.HasPrefix(text, "Invalid data:") {
			t.Errorf("update_batch = %q (error %v), want validation error", text, isErr)
		}
		if n := up.calls.Load(); n != 0 {
			t.Errorf("upstream calls = %d, want 0", n)
		}
	})
}

func TestUpdateInventory(t *testing.T) {
	tests := []struct {
		tool string
		path string
		want string
	}{
		{"update_fermentable_inventory", "/v2/inventory/fermentables/x1", "Fermentable inventory for item x1 updated to 2.5 kg."},
		{"update_hop_inventory", "/v2/inventory/hops/x1", "Hop inventory for item x1 updated to 2.5 grams."},
		{"update_yeast_inventory", "/v2/inventory/yeasts/x1", "Yeast inventory for item x1 updated to 2.5 packets."},
		{"update_misc_inventory", "/v2/inventory/miscs/x1", "Miscellaneous inventory for item x1 updated to 2.5 units."},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			cs, up := connect(t, map[string]string{"PATCH " + tt.path: `{}`})
			text, isErr := call(t, cs, tt.tool, map[string]any{"item_id": "x1", "inventory_amount": 2.5})
			if isErr || text != tt.want {
				t.Errorf("%s = %q (error %v), want %q", tt.tool, text, isErr, tt.want)
			}
			if got := up.last.Load().body; got != `{"inventory":2.5}` {
				t.Errorf("PATCH body = %s", got)
			}
		})
	}
}

func TestToolErrors(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		args   map[string]any
		prefix string
		calls  int32
	}{
		{"upstream not found", "get_recipe_detail", map[string]any{"recipe_id": "missing"}, "Brewfather has no record", 1},
		{"unsafe identifier", "get_batch_detail", map[string]any{"batch_id": "../recipes"}, "Invalid data: validation failed for id", 0},
		{"invalid payload", "list_hops", nil, "Invalid data: validation failed for [0].alpha", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, up := connect(t, map[string]string{
				"GET /v2/inventory/hops": `[{"_id": "h1", "name": "Citra", "type": "Pellet"}]`,
			})
			text, isErr := call(t, cs, tt.tool, tt.args)
			if !isErr {
				t.Errorf("%s IsError = false, text %q", tt.tool, text)
			}
			if !strings.HasPrefix(text, tt.prefix) {
				t.Errorf("%s text = %q, want prefix %q", tt.tool, text, tt.prefix)
			}
			if n := up.calls.Load(); n != tt.calls {
				t.Errorf("upstream calls = %d, want %d", n, tt.calls)
			}
		})
	}
}

func TestBatchReadingsSummary(t *testing.T) {
	cs, _ := connect(t, map[string]string{
		"GET /v2/batches/b1/readings": `[
			{"time": 1621674499901, "type": "iSpindel", "temp": 20.0, "sg": 1.050},
			{"time": 1621678099901, "type": "iSpindel", "temp": 19.5, "sg": 1.040},
			{"time": 1621681699901, "type": "iSpindel", "temp": 19.0, "sg": 1.030}
		]`,
	})

	text, isErr := call(t, cs, "get_batch_readings_summary", map[string]any{"batch_id": "b1", "limit": 2})
	if isErr {
		t.Fatalf("get_batch_readings_summary failed: %s", text)
	}
	if !strings.Contains(text, "Showing latest 2 readings:") {
		t.Errorf("text does not honor the limit:\n%s", text)
	}
	if strings.Contains(text, "TREND ANALYSIS") {
		t.Errorf("text has a trend over two readings:\n%s", text)
	}

	text, _ = call(t, cs, "get_batch_readings_summary", map[string]any{"batch_id": "b1"})
	if !strings.Contains(text, "Showing latest 3 readings:") || !strings.Contains(text, "Temperature: Falling (-1.0°C)") {
		t.Errorf("default summary =\n%s", text)
	}
}

func TestInventorySummary_PartialFailure(t *testing.T) {
	cs, _ := connect(t, map[string]string{
		"GET /v2/inventory/fermentables":    `[{"_id": "f1", "name": "Pilsner", "type": "Grain", "supplier": "Weyermann", "inventory": 5}]`,
		"GET /v2/inventory/fermentables/f1": `{"_id": "f1", "name": "Pilsner", "type": "Grain", "supplier": "Weyermann", "inventory": 5, "lotNumber": "L7", ` + envelope + `}`,
		"GET /v2/inventory/yeasts":          `[]`,
		"GET /v2/inventory/miscs":           `[]`,
	})

	text, isErr := call(t, cs, "inventory_summary", nil)
	if isErr {
		t.Fatalf("inventory_summary failed: %s", text)
	}
	for _, want := range []string{
		"Name: Pilsner\nType: Grain\n",
		"Lot #: L7\n",
		"Inventory Amount: 5 kg\n",
		"Hops:\n\nUnavailable: GET ",
		"/v2/inventory/hops",
		"status 404",
		"Yeasts:\n\nNo items in stock.\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("inventory_summary missing %q in\n%s", want, text)
		}
	}
}

func TestPromptAndResources(t *testing.T) {
	cs, _ := connect(t, nil)
	ctx := context.Background()

	prompt, err := cs.GetPrompt(ctx, &mcp.GetPromptParams{Name: "suggest_beer_styles"})
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if len(prompt.Messages) != 2 || prompt.Messages[0].Role != "assistant" || prompt.Messages[1].Role != "user" {
		t.Fatalf("prompt messages = %+v", prompt.Messages)
	}
	if text := prompt.Messages[1].Content.(*mcp.TextContent).Text; !strings.Contains(text, "BJCP") {
		t.Errorf("user message = %q", text)
	}

	res, err := cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: categoriesURI})
	if err != nil {
		t.Fatalf("ReadResource() error = %v", err)
	}
	if len(res.Contents) != 1 || !strings.Contains(res.Contents[0].Text, "Hops") {
		t.Errorf("categories resource = %+v", res.Contents)
	}
	if res.Contents[0].MIMEType != "text/plain" {
		t.Errorf("MIMEType = %q, want text/plain", res.Contents[0].MIMEType)
	}
}
