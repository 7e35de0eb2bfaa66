package cflow

import (
	"sort"

	"github.com/katalvlaran/qflow/internal/qlog"
	"github.com/katalvlaran/qflow/ograph"
)

// Result is a maximally-delayed causal-flow witness: f maps each
// non-output vertex to its single corrector, and Layer gives the induced
// partial order (spec.md §3, Flow witnesses).
type Result struct {
	F     map[int]int // dom(F) = V \ O
	Layer []int       // length n; Layer[v] == 0 iff v is an output
}

// walker holds the mutable state of one Find call. Allocated per call and
// discarded on return, per spec.md §5's no-shared-state requirement.
type walker struct {
	g          *ograph.Graph
	n          int
	solved     ograph.Set
	correctors ograph.Set
	layer      []int
	f          map[int]int
}

// Find searches for a maximally-delayed causal flow of g, returning
// (result, true, nil) on success or (nil, false, nil) when no causal flow
// exists — "not found" is a normal outcome, not an error (spec.md §7.5).
//
// Stage 1 (Prepare): seed correctors/solved with O, layer 0 there.
// Stage 2 (Execute): repeatedly pair each unsolved-with-exactly-one-
// outside-neighbor corrector to that neighbor, breaking ties toward the
// smallest corrector index, until a round makes no progress.
// Stage 3 (Finalize): success iff every vertex got solved.
//
// Complexity: each round is Θ(n + m); at most n rounds run, so Θ(n(n+m)).
func Find(g *ograph.Graph) (*Result, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	n := g.N()

	// Correctors must land in the flow's codomain (V\I): an output that is
	// also an input can never correct anything.
	initialCorrectors := make([]int, 0, len(g.O))
	for _, v := range g.O.Sorted() {
		if !g.I.Has(v) {
			initialCorrectors = append(initialCorrectors, v)
		}
	}

	w := &walker{
		g:          g,
		n:          n,
		solved:     ograph.NewSet(g.O.Sorted()...),
		correctors: ograph.NewSet(initialCorrectors...),
		layer:      make([]int, n),
		f:          make(map[int]int),
	}
	for v := range w.layer {
		w.layer[v] = -1
	}
	for v := range g.O {
		w.layer[v] = 0
	}

	round := 1
	for {
		pairings := w.roundPairings()
		if len(pairings) == 0 {
			break
		}
		for _, p := range pairings {
			w.f[p.u] = p.c
			w.layer[p.u] = round
			w.solved[p.u] = struct{}{}
			if !w.g.I.Has(p.u) {
				w.correctors[p.u] = struct{}{}
			}
			delete(w.correctors, p.c)
		}
		qlog.Log.Debug().Int("round", round).Int("solved", len(pairings)).Msg("cflow: layer solved")
		round++
	}

	if len(w.solved) != n {
		return nil, false, nil
	}
	return &Result{F: w.f, Layer: w.layer}, true, nil
}

type pairing struct{ u, c int }

// roundPairings finds, for each corrector with exactly one neighbor
// outside solved, the candidate it would correct, then resolves
// conflicts (several correctors wanting the same u) by keeping the
// smallest corrector index (spec.md §4.D steps 1-2).
func (w *walker) roundPairings() []pairing {
	byU := make(map[int][]int)
	for _, c := range w.correctors.Sorted() {
		outside := -1
		count := 0
		for _, v := range w.g.Neighbors(c).Bits() {
			if !w.solved.Has(v) {
				count++
				outside = v
				if count > 1 {
					break
				}
			}
		}
		if count != 1 {
			continue
		}
		u := outside
		byU[u] = append(byU[u], c)
	}

	us := make([]int, 0, len(byU))
	for u := range byU {
		us = append(us, u)
	}
	sort.Ints(us)

	out := make([]pairing, 0, len(us))
	for _, u := range us {
		cs := byU[u]
		sort.Ints(cs)
		out = append(out, pairing{u: u, c: cs[0]})
	}
	return out
}
