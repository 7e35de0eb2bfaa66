package verify

import (
	"github.com/katalvlaran/qflow/cflow"
	"github.com/katalvlaran/qflow/ograph"
)

// Flow independently re-checks a causal-flow witness against (G, I, O),
// implementing spec.md §4.G for the XY-only causal-flow case (spec.md
// §4.D: every non-output vertex is implicitly XY).
func Flow(res *cflow.Result, g *ograph.Graph) error {
	if err := checkLayerZero(g, res.Layer); err != nil {
		return err
	}

	n := g.N()
	for v := 0; v < n; v++ {
		isOut := g.O.Has(v)
		_, inDom := res.F[v]
		if isOut && inDom {
			return InvalidFlowDomain{Node: v}
		}
		if !isOut && !inDom {
			return InvalidFlowDomain{Node: v}
		}
	}
	for _, c := range res.F {
		if g.I.Has(c) {
			return InvalidFlowCodomain{Node: c}
		}
	}

	for u, c := range res.F {
		fSet := ograph.NewSet(c)
		if err := checkOrder(g, res.Layer, u, fSet); err != nil {
			return err
		}
		self, other, err := oddSelfAndOthers(g, res.Layer, u, fSet)
		if err != nil {
			return err
		}
		if c == u || !self || other {
			return InconsistentFlowPlane{Node: u, Plane: 0} // 0 = XY
		}
	}
	return nil
}
