package brewfather

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Identifiable is a summary record that carries an upstream id.
type Identifiable interface {
	Identity() string
}

// Hydrate fetches the detail record of every item, running at most limit
// fetches at once. Results keep the order of items. The first fetch error is
// returned as-is with no partial results; fetches already in flight run to
// completion and their results are dropped.
func Hydrate[S Identifiable, D any](ctx context.Context, limit int, fetch func(context.Context, string) (D, error), items []S) ([]D, error) {
	if limit < 1 {
		return nil, fmt.Errorf("hydrate: concurrency limit must be positive, got %d", limit)
	}

	out := make([]D, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		id := item.Identity()
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			d, err := fetch(ctx, id)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
