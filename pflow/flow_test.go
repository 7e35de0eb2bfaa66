package pflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qflow/gflow"
	"github.com/katalvlaran/qflow/ograph"
	"github.com/katalvlaran/qflow/pflow"
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

// TestFind_NoPauliLabelDelegatesToGflow: a pure-planar pplane assignment
// must produce the same witness as gflow.Find on the same instance
// (spec.md §4.F).
func TestFind_NoPauliLabelDelegatesToGflow(t *testing.T) {
	g := buildGraph(t, 6,
		[][2]int{{0, 3}, {0, 5}, {1, 3}, {1, 4}, {1, 5}, {2, 4}, {2, 5}},
		[]int{0, 1, 2}, []int{3, 4, 5})

	pplane := map[int]int{0: int(pflow.XY), 1: int(pflow.XY), 2: int(pflow.XY)}
	pr, ok, err := pflow.Find(g, pplane)
	require.NoError(t, err)
	require.True(t, ok)

	plane := map[int]int{0: int(gflow.XY), 1: int(gflow.XY), 2: int(gflow.XY)}
	gr, ok, err := gflow.Find(g, plane)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, gr.Layer, pr.Layer)
	for v, set := range gr.F {
		assert.Equal(t, set, pr.F[v])
	}
}

// TestFind_ZMeasuredInterior exercises a Z-labeled interior vertex on a
// 3-path: vertex 1 (Pauli Z) needs no correction of its own and is solved
// in the first round (layer 1) with an empty correction set, leaving the
// XY-labeled input to be corrected by it in the next round (layer 2).
func TestFind_ZMeasuredInterior(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}}, []int{0}, []int{2})

	pplane := map[int]int{0: int(pflow.XY), 1: int(pflow.Z)}
	res, ok, err := pflow.Find(g, pplane)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, ograph.NewSet(1), res.F[0])
	assert.Equal(t, ograph.Set{}, res.F[1])
	assert.Equal(t, []int{2, 1, 0}, res.Layer)
}

func TestFind_NilGraph(t *testing.T) {
	_, _, err := pflow.Find(nil, nil)
	assert.ErrorIs(t, err, pflow.ErrGraphNil)
}

func TestFind_BadPPlaneCode(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}}, []int{0}, []int{1})
	_, _, err := pflow.Find(g, map[int]int{0: 99})
	assert.Error(t, err)
}

func TestFind_MeasurementSpecMismatch(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}}, []int{0}, []int{1})
	_, _, err := pflow.Find(g, map[int]int{})
	assert.ErrorIs(t, err, ograph.ErrMeasurementSpec)
}
