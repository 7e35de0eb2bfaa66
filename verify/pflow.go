package verify

import (
	"github.com/katalvlaran/qflow/ograph"
	"github.com/katalvlaran/qflow/pflow"
)

// PFlow independently re-checks a Pauli-flow witness against
// (G, I, O, pplane), implementing spec.md §4.G for all six labels.
func PFlow(res *pflow.Result, g *ograph.Graph, pplane map[int]int) error {
	if node := measurementSpecNode(g.N(), g.O, pplane); node != -1 {
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
		if err := checkPPlane(g, res.Layer, u, fu, pflow.PPlane(pplane[u])); err != nil {
			return err
		}
	}
	return nil
}

// checkPPlane generalizes checkPlane to the three Pauli axes: X leaves
// both u ∈ f(u) and u ∈ Odd(f(u)) free, Y requires them to agree, Z
// forbids both (spec.md §4.F).
func checkPPlane(g *ograph.Graph, layer []int, u int, fu ograph.Set, p pflow.PPlane) error {
	self, other, err := oddSelfAndOthers(g, layer, u, fu)
	if err != nil {
		return err
	}
	if other {
		return InconsistentFlowPPlane{Node: u, PPlane: int(p)}
	}
	inF := fu.Has(u)

	var ok bool
	switch p {
	case pflow.XY:
		ok = !inF && self
	case pflow.YZ:
		ok = inF && !self
	case pflow.ZX:
		ok = inF && self
	case pflow.X:
		ok = true // both u ∈ f(u) and u ∈ Odd(f(u)) are free
	case pflow.Y:
		ok = inF == self
	case pflow.Z:
		ok = !inF && !self
	default:
		ok = false
	}
	if !ok {
		return InconsistentFlowPPlane{Node: u, PPlane: int(p)}
	}
	return nil
}
