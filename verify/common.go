package verify

import "github.com/katalvlaran/qflow/ograph"

// checkLayerZero enforces spec.md §4.G condition 1: layer[v] = 0 iff
// v ∈ O.
func checkLayerZero(g *ograph.Graph, layer []int) error {
	n := g.N()
	for v := 0; v < n; v++ {
		isOut := g.O.Has(v)
		if isOut && layer[v] != 0 {
			return ExcessiveNonZeroLayer{Node: v, Layer: layer[v]}
		}
		if !isOut && layer[v] == 0 {
			return ExcessiveZeroLayer{Node: v}
		}
	}
	return nil
}

// checkOrder enforces condition 3: every member of fSet ∪ Odd(fSet)
// other than u itself must have strictly smaller layer than u.
func checkOrder(g *ograph.Graph, layer []int, u int, fSet ograph.Set) error {
	for v := range fSet {
		if v == u {
			continue
		}
		if layer[u] <= layer[v] {
			return InconsistentFlowOrder{Node1: u, Node2: v}
		}
	}
	oddVec, err := g.OddSet(fSet)
	if err != nil {
		return err
	}
	for _, v := range oddVec.Bits() {
		if v == u {
			continue
		}
		if layer[u] <= layer[v] {
			return InconsistentFlowOrder{Node1: u, Node2: v}
		}
	}
	return nil
}

// oddSelfAndOthers reports whether u ∈ Odd(fSet), and whether Odd(fSet)
// contains any OTHER vertex v ≠ u with layer[v] ≥ layer[u] — i.e. any
// vertex outside the "already resolved, usable as a free base" region
// spec.md §4.E calls V\S at the time u was solved. Per spec.md's own
// note ("outside V\S the relation is unconstrained"), members with
// strictly smaller layer are never a violation and are ignored here.
func oddSelfAndOthers(g *ograph.Graph, layer []int, u int, fSet ograph.Set) (self, other bool, err error) {
	oddVec, err := g.OddSet(fSet)
	if err != nil {
		return false, false, err
	}
	self = oddVec.Get(u)
	for _, v := range oddVec.Bits() {
		if v == u {
			continue
		}
		if layer[v] >= layer[u] {
			other = true
		}
	}
	return self, other, nil
}

// measurementSpecNode returns the first vertex violating the
// label-covers-exactly-V\O rule, or -1 if labels is valid.
func measurementSpecNode(n int, o ograph.Set, labels map[int]int) int {
	for v := range labels {
		if v < 0 || v >= n || o.Has(v) {
			return v
		}
	}
	for v := 0; v < n; v++ {
		if o.Has(v) {
			continue
		}
		if _, ok := labels[v]; !ok {
			return v
		}
	}
	return -1
}

// checkDomainCodomain enforces condition 2 for set-valued witnesses
// (gflow/pflow): dom(f) = V\O exactly, and every f(u) avoids I.
func checkDomainCodomain(g *ograph.Graph, f map[int]ograph.Set) error {
	n := g.N()
	for v := 0; v < n; v++ {
		isOut := g.O.Has(v)
		_, inDom := f[v]
		if isOut && inDom {
			return InvalidFlowDomain{Node: v}
		}
		if !isOut && !inDom {
			return InvalidFlowDomain{Node: v}
		}
	}
	for _, fu := range f {
		for c := range fu {
			if g.I.Has(c) {
				return InvalidFlowCodomain{Node: c}
			}
		}
	}
	return nil
}
