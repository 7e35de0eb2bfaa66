package verify

import (
	"github.com/katalvlaran/qflow/gflow"
	"github.com/katalvlaran/qflow/ograph"
)

// GFlow independently re-checks a gflow witness against (G, I, O, plane),
// implementing spec.md §4.G for the three measurement planes.
func GFlow(res *gflow.Result, g *ograph.Graph, plane map[int]int) error {
	if node := measurementSpecNode(g.N(), g.O, plane); node != -1 {
		return InvalidMeasurementSpec{Node: node}
	}
	if err := checkLayerZero(g, res.Layer); err != nil {
		return err
	}
	if err := checkDomainCodomain(g, res.F); err != nil {
		return err
	}

	for u, fu := range res.F {
		if err := checkOrder(g, res.Layer, u, fu); err != nil {
			return err
		}
		if err := checkPlane(g, res.Layer, u, fu, gflow.Plane(plane[u])); err != nil {
			return err
		}
	}
	return nil
}

// checkPlane enforces condition 4 restricted to the region spec.md §4.E
// leaves constrained (vertices with layer ≥ layer[u]): Odd(f(u)) may
// contain no such vertex besides possibly u itself, and whether u ∈ f(u)
// / u ∈ Odd(f(u)) must match the table for p.
func checkPlane(g *ograph.Graph, layer []int, u int, fu ograph.Set, p gflow.Plane) error {
	self, other, err := oddSelfAndOthers(g, layer, u, fu)
	if err != nil {
		return err
	}
	if other {
		return InconsistentFlowPlane{Node: u, Plane: int(p)}
	}
	inF := fu.Has(u)

	var ok bool
	switch p {
	case gflow.XY:
		ok = !inF && self
	case gflow.YZ:
		ok = inF && !self
	case gflow.ZX:
		ok = inF && self
	default:
		ok = false
	}
	if !ok {
		return InconsistentFlowPlane{Node: u, Plane: int(p)}
	}
	return nil
}
