package index

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qflow/lvlath/core"
)

// validateHostGraph runs the host-graph precondition checks concurrently:
// each scans the full edge list independently, so there is no shared
// mutable state to coordinate beyond the errgroup itself.
func validateHostGraph(ctx context.Context, g *core.Graph) error {
	edges := g.Edges()

	eg, _ := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for _, e := range edges {
			if e.Directed {
				return ErrDirectedGraph
			}
		}
		return nil
	})

	eg.Go(func() error {
		for _, e := range edges {
			if e.From == e.To {
				return ErrLoopedGraph
			}
		}
		return nil
	})

	eg.Go(func() error {
		seen := make(map[[2]string]struct{}, len(edges))
		for _, e := range edges {
			key := [2]string{e.From, e.To}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, dup := seen[key]; dup {
				return ErrMultiEdge
			}
			seen[key] = struct{}{}
		}
		return nil
	})

	return eg.Wait()
}
