package pflow

import (
	"sort"

	"github.com/katalvlaran/qflow/gf2"
	"github.com/katalvlaran/qflow/gflow"
	"github.com/katalvlaran/qflow/internal/qlog"
	"github.com/katalvlaran/qflow/ograph"
)

// Result is a maximally-delayed Pauli-flow witness.
type Result struct {
	F     map[int]ograph.Set // dom(F) = V \ O; F[u] ⊆ V \ I
	Layer []int
}

type walker struct {
	g      *ograph.Graph
	n      int
	pplane map[int]PPlane
	solved ograph.Set
	layer  []int
	f      map[int]ograph.Set
}

// Find searches for a maximally-delayed Pauli flow of g under the given
// pplane assignment. If pplane carries no Pauli axis label (X/Y/Z), it
// logs a warning and delegates to gflow.Find, whose result is identical
// for a pure-planar assignment (spec.md §4.F).
//
// Stage 1 (Validate): pplane must cover exactly V\O with codes in
// {XY, YZ, ZX, X, Y, Z}.
// Stage 2 (Execute): round by round, solve one GF(2) system per
// not-yet-solved vertex; unlike gflow the candidate codomain and row set
// vary per label, so each vertex is solved with its own system rather
// than one shared batched matrix.
// Stage 3 (Finalize): success iff every vertex is solved.
func Find(g *ograph.Graph, pplane map[int]int) (*Result, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	n := g.N()
	if err := ograph.ValidateMeasurementSpec(n, g.O, pplane); err != nil {
		return nil, false, err
	}
	pplanes, err := pplaneCodes(pplane)
	if err != nil {
		return nil, false, err
	}

	hasPauli := false
	for _, p := range pplanes {
		if p.isPauli() {
			hasPauli = true
			break
		}
	}
	if !hasPauli {
		qlog.Log.Warn().Msg("pflow: no Pauli label present, delegating to gflow")
		gr, ok, gerr := gflow.Find(g, toGflowPlanes(pplanes))
		if gerr != nil || !ok {
			return nil, ok, gerr
		}
		return &Result{F: gr.F, Layer: gr.Layer}, true, nil
	}

	w := &walker{
		g:      g,
		n:      n,
		pplane: pplanes,
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
		progressed := w.roundStep(round)
		if !progressed {
			break
		}
		qlog.Log.Debug().Int("round", round).Int("solved", len(w.solved)).Msg("pflow: round solved")
		round++
	}

	if len(w.solved) != n {
		return nil, false, nil
	}
	return &Result{F: w.f, Layer: w.layer}, true, nil
}

// roundStep attempts to solve every currently unsolved vertex against the
// round's snapshot of solved/non-input vertices, returning whether any
// vertex was newly solved.
func (w *walker) roundStep(round int) bool {
	unsolved := w.unsolvedSorted()
	if len(unsolved) == 0 {
		return false
	}
	base := w.baseSorted()

	progressed := false
	for _, u := range unsolved {
		fu, ok := w.solveVertex(u, unsolved, base, w.pplane[u])
		if !ok {
			continue
		}
		w.f[u] = fu
		w.layer[u] = round
		w.solved[u] = struct{}{}
		progressed = true
	}
	return progressed
}

// solveVertex builds and solves the GF(2) system for u's label, returning
// its correction set and whether a consistent solution was found.
func (w *walker) solveVertex(u int, unsolved, base []int, p PPlane) (ograph.Set, bool) {
	switch p {
	case XY, YZ, ZX:
		return w.solvePlanar(u, unsolved, base, p)
	case X:
		return w.solveX(u, unsolved, base)
	case Y:
		return w.solveY(u, unsolved, base)
	case Z:
		return w.solveZ(u, unsolved, base)
	}
	return nil, false
}

// solvePlanar mirrors gflow's table: u is forced out of f(u) for XY,
// forced in for YZ/ZX, with the Odd(f(u)) target restricted to every
// unsolved row including u itself.
func (w *walker) solvePlanar(u int, rows, base []int, p PPlane) (ograph.Set, bool) {
	if (p == YZ || p == ZX) && w.g.I.Has(u) {
		return nil, false // u ∈ f(u) would put an input in the correction set
	}
	target := make([]bool, len(rows))
	for ri, v := range rows {
		switch p {
		case XY:
			target[ri] = v == u
		case YZ:
			target[ri] = w.g.Adjacent(v, u)
		case ZX:
			target[ri] = (v == u) != w.g.Adjacent(v, u)
		}
	}
	sel, ok := solveColumns(w.g, base, rows, target)
	if !ok {
		return nil, false
	}
	fu := setFromIndices(base, sel)
	if p == YZ || p == ZX {
		fu[u] = struct{}{}
	}
	return fu, true
}

// solveX allows u to freely join f(u) (column included, unforced) and
// leaves row u unconstrained, matching Odd(f(u)) \ {u} = ∅.
func (w *walker) solveX(u int, rows, base []int) (ograph.Set, bool) {
	cols := append(append([]int{}, base...), u)
	restRows := without(rows, u)
	target := make([]bool, len(restRows))
	sel, ok := solveColumns(w.g, cols, restRows, target)
	if !ok {
		return nil, false
	}
	return setFromIndices(cols, sel), true
}

// solveY tries the stricter Z-style system (u excluded, Odd(f(u)) = ∅
// on every unsolved row) first; if inconsistent, falls back to the ZX-style system
// (u forced in, Odd(f(u)) = {u}). This realizes the biconditional
// u ∈ f(u) ↔ u ∈ Odd(f(u)) via the two admissible auxiliary-bit values.
func (w *walker) solveY(u int, rows, base []int) (ograph.Set, bool) {
	if fu, ok := w.solveZ(u, rows, base); ok {
		return fu, true
	}
	return w.solvePlanar(u, rows, base, ZX)
}

// solveZ forces u out of f(u) and requires Odd(f(u)) = ∅ on every
// unsolved row, including u itself.
func (w *walker) solveZ(u int, rows, base []int) (ograph.Set, bool) {
	target := make([]bool, len(rows))
	sel, ok := solveColumns(w.g, base, rows, target)
	if !ok {
		return nil, false
	}
	return setFromIndices(base, sel), true
}

// solveColumns solves A x = target for a single right-hand side, where A
// is the adjacency submatrix (rows × cols). Returns the selected column
// indices (into cols) and whether a consistent solution exists. The
// degenerate cols == 0 case is handled directly: the only possible
// solution is the empty one, valid iff target is already all-zero.
func solveColumns(g *ograph.Graph, cols, rows []int, target []bool) ([]int, bool) {
	if len(cols) == 0 {
		for _, bit := range target {
			if bit {
				return nil, false
			}
		}
		return []int{}, true
	}
	if len(rows) == 0 {
		return []int{}, true
	}

	a, err := gf2.NewMatrix(len(rows), len(cols))
	if err != nil {
		return nil, false
	}
	for ri, v := range rows {
		for ci, c := range cols {
			if g.Adjacent(v, c) {
				_ = a.Set(ri, ci, true)
			}
		}
	}
	b, err := gf2.NewMatrix(len(rows), 1)
	if err != nil {
		return nil, false
	}
	for ri, bit := range target {
		if bit {
			_ = b.Set(ri, 0, true)
		}
	}
	xs, err := gf2.Solve(a, b)
	if err != nil || xs[0] == nil {
		return nil, false
	}
	return xs[0].Bits(), true
}

func setFromIndices(universe []int, sel []int) ograph.Set {
	s := ograph.NewSet()
	for _, i := range sel {
		s[universe[i]] = struct{}{}
	}
	return s
}

func without(xs []int, excl int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != excl {
			out = append(out, x)
		}
	}
	return out
}

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
