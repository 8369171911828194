package brewfather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stubSummary string

func (s stubSummary) Identity() string { return string(s) }

func summaries(n int) []stubSummary {
	out := make([]stubSummary, n)
	for i := range out {
		out[i] = stubSummary(fmt.Sprintf("item-%d", i))
	}
	return out
}

// gauge tracks how many fetches are running at once.
type gauge struct {
	mu      sync.Mutex
	current int
	peak    int
}

func (g *gauge) enter() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current++
	if g.current > g.peak {
		g.peak = g.current
	}
}

func (g *gauge) exit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current--
}

func TestHydrate_BoundsConcurrencyAndKeepsOrder(t *testing.T) {
	items := summaries(7)
	var g gauge

	fetch := func(ctx context.Context, id string) (string, error) {
		g.enter()
		defer g.exit()
		var idx int
		fmt.Sscanf(id, "item-%d", &idx)
		// Later items finish first.
		time.Sleep(time.Duration(7-idx) * 5 * time.Millisecond)
		return "detail-" + id, nil
	}

	got, err := Hydrate(context.Background(), 3, fetch, items)
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}

	if g.peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", g.peak)
	}
	if g.peak < 2 {
		t.Errorf("peak concurrency = %d, want fetches to overlap", g.peak)
	}
	if len(got) != len(items) {
		t.Fatalf("len(result) = %d, want %d", len(got), len(items))
	}
	for i, d := range got {
		if want := "detail-item-" + fmt.Sprint(i); d != want {
			t.Errorf("result[%d] = %q, want %q", i, d, want)
		}
	}
}

func TestHydrate_FailurePropagates(t *testing.T) {
	items := summaries(7)
	errBoom := errors.New("boom")
	var calls atomic.Int32

	fetch := func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		if id == "item-3" {
			return "", errBoom
		}
		time.Sleep(5 * time.Millisecond)
		return id, nil
	}

	got, err := Hydrate(context.Background(), 3, fetch, items)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Hydrate() error = %v, want %v", err, errBoom)
	}
	if err != errBoom {
		t.Errorf("Hydrate() error is wrapped: %v", err)
	}
	if got != nil {
		t.Errorf("Hydrate() result = %v, want nil on failure", got)
	}
	if n := calls.Load(); n > 7 {
		t.Errorf("fetch calls = %d, want <= 7", n)
	}
}

func TestHydrate_EmptyInput(t *testing.T) {
	fetch := func(ctx context.Context, id string) (string, error) {
		t.Errorf("fetch(%q) called for empty input", id)
		return "", nil
	}

	got, err := Hydrate(context.Background(), 3, fetch, []stubSummary{})
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Hydrate() = %v, want empty slice", got)
	}
}

func TestHydrate_RejectsNonPositiveLimit(t *testing.T) {
	fetch := func(ctx context.Context, id string) (string, error) { return id, nil }

	for _, limit := range []int{0, -1} {
		if _, err := Hydrate(context.Background(), limit, fetch, summaries(2)); err == nil {
			t.Errorf("Hydrate(limit=%d) error = nil, want error", limit)
		}
	}
}

func TestHydrate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch := func(ctx context.Context, id string) (string, error) { return id, nil }

	if _, err := Hydrate(ctx, 2, fetch, summaries(4)); !errors.Is(err, context.Canceled) {
		t.Errorf("Hydrate() error = %v, want context.Canceled", err)
	}
}
