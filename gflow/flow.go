package gflow

import (
	"sort"

	"github.com/katalvlaran/qflow/gf2"
	"github.com/katalvlaran/qflow/internal/qlog"
	"github.com/katalvlaran/qflow/ograph"
)

// Result is a maximally-delayed generalized-flow witness: F maps each
// non-output vertex to a correction set, and Layer gives the induced
// partial order (spec.md §3, §4.E).
type Result struct {
	F     map[int]ograph.Set // dom(F) = V \ O; F[u] ⊆ V \ I
	Layer []int
}

// walker holds one Find call's mutable state; allocated per call and
// discarded on return.
type walker struct {
	g      *ograph.Graph
	n      int
	plane  map[int]Plane
	solved ograph.Set
	layer  []int
	f      map[int]ograph.Set
}

// Find searches for a maximally-delayed gflow of g under the given plane
// assignment, returning (result, true, nil) on success or (nil, false,
// nil) when none exists.
//
// Stage 1 (Validate): plane must cover exactly V\O with codes in
// {XY, YZ, ZX}.
// Stage 2 (Execute): round by round, solve one batched GF(2) system per
// round (columns = already-solved non-input vertices, rows = the
// vertices still unsolved going into the round) and accept every vertex
// whose column has a consistent solution.
// Stage 3 (Finalize): success iff every vertex is solved.
//
// Complexity: each round performs one Θ(|unsolved| · |base|²) solve; at
// most n rounds run.
func Find(g *ograph.Graph, plane map[int]int) (*Result, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	n := g.N()
	if err := ograph.ValidateMeasurementSpec(n, g.O, plane); err != nil {
		return nil, false, err
	}
	planes, err := planeCodes(plane)
	if err != nil {
		return nil, false, err
	}

	w := &walker{
		g:      g,
		n:      n,
		plane:  planes,
		solved: ograph.NewSet(g.O.Sorted()...),
		layer:  make([]int, n),
		f:      make(map[int]ograph.Set),
	}
	for v := range w.layer {
		w.layer[v] = -1
	}
	for v := range g.O {
		w.layer[v] = 0
	}

	round := 1
	for {
		progressed, err := w.roundStep(round)
		if err != nil {
			return nil, false, err
		}
		if !progressed {
			break
		}
		qlog.Log.Debug().Int("round", round).Int("solved", len(w.solved)).Msg("gflow: round solved")
		round++
	}

	if len(w.solved) != n {
		return nil, false, nil
	}
	return &Result{F: w.f, Layer: w.layer}, true, nil
}

// roundStep runs one layer of the algorithm, returning whether any vertex
// was newly solved.
func (w *walker) roundStep(round int) (bool, error) {
	unsolved := w.unsolvedSorted()
	if len(unsolved) == 0 {
		return false, nil
	}
	base := w.baseSorted()

	selections := make([][]int, len(unsolved)) // per u: selected base indices, nil if unsolvable
	if len(base) == 0 {
		for idx, u := range unsolved {
			b := targetColumn(w.g, u, unsolved, w.plane[u])
			if allZero(b) {
				selections[idx] = []int{}
			}
		}
	} else {
		a, err := gf2.NewMatrix(len(unsolved), len(base))
		if err != nil {
			return false, err
		}
		for ri, v := range unsolved {
			for ci, c := range base {
				if w.g.Adjacent(v, c) {
					_ = a.Set(ri, ci, true)
				}
			}
		}
		bMat, err := gf2.NewMatrix(len(unsolved), len(unsolved))
		if err != nil {
			return false, err
		}
		for idx, u := range unsolved {
			col := targetColumn(w.g, u, unsolved, w.plane[u])
			for ri, bit := range col {
				if bit {
					_ = bMat.Set(ri, idx, true)
				}
			}
		}
		xs, err := gf2.Solve(a, bMat)
		if err != nil {
			return false, err
		}
		for idx, x := range xs {
			if x == nil {
				continue
			}
			selections[idx] = x.Bits()
		}
	}

	progressed := false
	for idx, u := range unsolved {
		sel := selections[idx]
		if sel == nil {
			continue
		}
		if requiresSelf(w.plane[u]) && w.g.I.Has(u) {
			continue // u ∈ f(u) would put an input in the correction set
		}
		fu := ograph.NewSet()
		for _, ci := range sel {
			fu[base[ci]] = struct{}{}
		}
		if requiresSelf(w.plane[u]) {
			fu[u] = struct{}{}
		}
		w.f[u] = fu
		w.layer[u] = round
		w.solved[u] = struct{}{}
		progressed = true
	}
	return progressed, nil
}

// unsolvedSorted returns V \ solved in ascending order.
func (w *walker) unsolvedSorted() []int {
	out := make([]int, 0, w.n-len(w.solved))
	for v := 0; v < w.n; v++ {
		if !w.solved.Has(v) {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// baseSorted returns (solved \ I) in ascending order: the pool of
// already-fixed, non-input vertices a new f(u) may draw corrections from.
func (w *walker) baseSorted() []int {
	out := make([]int, 0, len(w.solved))
	for v := range w.solved {
		if !w.g.I.Has(v) {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// requiresSelf reports whether plane p forces u ∈ f(u).
func requiresSelf(p Plane) bool {
	return p == YZ || p == ZX
}

// targetColumn builds the right-hand side for vertex u's column, restricted
// to rows (the round's unsolved vertex list), per the table in spec.md
// §4.E. For YZ/ZX, u's own forced membership in f(u) contributes its
// adjacency row to every other row; since there are no self-loops this
// never perturbs row u itself.
func targetColumn(g *ograph.Graph, u int, rows []int, p Plane) []bool {
	b := make([]bool, len(rows))
	for ri, v := range rows {
		switch p {
		case XY:
			b[ri] = v == u
		case YZ:
			b[ri] = g.Adjacent(v, u)
		case ZX:
			b[ri] = (v == u) != g.Adjacent(v, u)
		}
	}
	return b
}

func allZero(b []bool) bool {
	for _, v := range b {
		if v {
			return false
		}
	}
	return true
}
