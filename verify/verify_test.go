package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qflow/cflow"
	"github.com/katalvlaran/qflow/gflow"
	"github.com/katalvlaran/qflow/ograph"
	"github.com/katalvlaran/qflow/pflow"
	"github.com/katalvlaran/qflow/verify"
)

func buildGraph(t *testing.T, n int, edges [][2]int, i, o []int) *ograph.Graph {
	t.Helper()
	adj := make([]ograph.Set, n)
	for v := range adj {
		adj[v] = ograph.NewSet()
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = struct{}{}
		adj[e[1]][e[0]] = struct{}{}
	}
	g, err := ograph.New(adj, ograph.NewSet(i...), ograph.NewSet(o...))
	require.NoError(t, err)
	return g
}

// TestFlow_RoundTrip_Path5: every witness cflow.Find returns must verify
// (spec.md §8, Round-trip).
func TestFlow_RoundTrip_Path5(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, []int{0}, []int{4})
	res, ok, err := cflow.Find(g)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NoError(t, verify.Flow(res, g))
}

// TestFlow_DetectsExcessiveNonZeroLayer corrupts an output's layer.
func TestFlow_DetectsExcessiveNonZeroLayer(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, []int{0}, []int{4})
	res, ok, err := cflow.Find(g)
	require.NoError(t, err)
	require.True(t, ok)

	res.Layer[4] = 1
	err = verify.Flow(res, g)
	assert.IsType(t, verify.ExcessiveNonZeroLayer{}, err)
}

// TestFlow_DetectsInvalidFlowCodomain corrupts a corrector to point at
// an input vertex.
func TestFlow_DetectsInvalidFlowCodomain(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, []int{0}, []int{4})
	res, ok, err := cflow.Find(g)
	require.NoError(t, err)
	require.True(t, ok)

	res.F[1] = 0 // 0 is an input
	err = verify.Flow(res, g)
	assert.IsType(t, verify.InvalidFlowCodomain{}, err)
}

// TestGFlow_RoundTrip_NoFlowButGflow is spec scenario 3.
func TestGFlow_RoundTrip_NoFlowButGflow(t *testing.T) {
	g := buildGraph(t, 6,
		[][2]int{{0, 3}, {0, 5}, {1, 3}, {1, 4}, {1, 5}, {2, 4}, {2, 5}},
		[]int{0, 1, 2}, []int{3, 4, 5})

	plane := map[int]int{0: int(gflow.XY), 1: int(gflow.XY), 2: int(gflow.XY)}
	res, ok, err := gflow.Find(g, plane)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NoError(t, verify.GFlow(res, g, plane))
}

// TestGFlow_DetectsInconsistentPlane corrupts f(0) to break the XY
// Odd(f(u)) pattern. An empty f(0) has Odd(f(0)) = ∅, so 0 ∉ Odd(f(0))
// while every layer-ordering constraint still holds.
func TestGFlow_DetectsInconsistentPlane(t *testing.T) {
	g := buildGraph(t, 6,
		[][2]int{{0, 3}, {0, 5}, {1, 3}, {1, 4}, {1, 5}, {2, 4}, {2, 5}},
		[]int{0, 1, 2}, []int{3, 4, 5})

	plane := map[int]int{0: int(gflow.XY), 1: int(gflow.XY), 2: int(gflow.XY)}
	res, ok, err := gflow.Find(g, plane)
	require.NoError(t, err)
	require.True(t, ok)

	res.F[0] = ograph.NewSet() // no longer satisfies Odd(f(0)) = {0}
	err = verify.GFlow(res, g, plane)
	assert.IsType(t, verify.InconsistentFlowPlane{}, err)
}

// TestPFlow_RoundTrip_ZMeasured exercises the synthetic Z-label example.
func TestPFlow_RoundTrip_ZMeasured(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}}, []int{0}, []int{2})
	pplane := map[int]int{0: int(pflow.XY), 1: int(pflow.Z)}

	res, ok, err := pflow.Find(g, pplane)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NoError(t, verify.PFlow(res, g, pplane))
}

// TestGFlow_DetectsBadMeasurementSpec exercises the preface check.
func TestGFlow_DetectsBadMeasurementSpec(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}}, []int{0}, []int{1})
	res := &gflow.Result{F: map[int]ograph.Set{0: ograph.NewSet(1)}, Layer: []int{1, 0}}

	err := verify.GFlow(res, g, map[int]int{})
	assert.IsType(t, verify.InvalidMeasurementSpec{}, err)
}
