package index_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qflow/index"
	"github.com/katalvlaran/qflow/lvlath/core"
	"github.com/katalvlaran/qflow/verify"
)

// path5 builds the host-ID analogue of spec.md's Path-5 scenario:
// "alice" -> "bob" -> "carol" -> "dave" -> "erin".
func path5(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"alice", "bob", "carol", "dave", "erin"} {
		require.NoError(t, g.AddVertex(id))
	}
	edges := [][2]string{{"alice", "bob"}, {"bob", "carol"}, {"carol", "dave"}, {"dave", "erin"}}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestNew_SortedBijection(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)
	require.Equal(t, 5, m.N())

	// Vertices() is sorted: alice, bob, carol, dave, erin.
	idx, err := m.Encode("alice")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = m.Encode("erin")
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	for _, id := range []string{"alice", "bob", "carol", "dave", "erin"} {
		idx, err := m.Encode(id)
		require.NoError(t, err)
		back, err := m.Decode(idx)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestEncode_UnknownVertex(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	_, err = m.Encode("frank")
	assert.ErrorIs(t, err, index.ErrUnknownVertex)
}

func TestDecode_OutOfRange(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	_, err = m.Decode(99)
	assert.ErrorIs(t, err, index.ErrIndexOutOfRange)
}

func TestNew_NilGraph(t *testing.T) {
	_, err := index.New(nil)
	assert.ErrorIs(t, err, index.ErrGraphNil)
}

func TestBuildGraph_Path5(t *testing.T) {
	g := path5(t)
	m, og, err := index.BuildGraph(context.Background(), g, []string{"alice"}, []string{"erin"})
	require.NoError(t, err)
	require.Equal(t, 5, og.N())

	aliceIdx, _ := m.Encode("alice")
	erinIdx, _ := m.Encode("erin")
	assert.True(t, og.I.Has(aliceIdx))
	assert.True(t, og.O.Has(erinIdx))
	assert.True(t, og.Adjacent(aliceIdx, mustEncode(t, m, "bob")))
}

func TestBuildGraph_RejectsDirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithMixedEdges())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	_, err := g.AddEdge("a", "b", 0, core.WithEdgeDirected(true))
	require.NoError(t, err)

	_, _, err = index.BuildGraph(context.Background(), g, nil, []string{"b"})
	assert.ErrorIs(t, err, index.ErrDirectedGraph)
}

func TestBuildGraph_RejectsSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddVertex("a"))
	_, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)

	_, _, err = index.BuildGraph(context.Background(), g, nil, []string{"a"})
	assert.ErrorIs(t, err, index.ErrLoopedGraph)
}

func TestValidateMeasurementSpec_StrictModeCatchesGap(t *testing.T) {
	g := path5(t)
	m, err := index.New(g, index.WithStrictMeasurementSpec())
	require.NoError(t, err)

	labels := map[string]int{"alice": 0, "bob": 0, "carol": 0} // dave missing
	err = m.ValidateMeasurementSpec(labels, []string{"erin"})
	assert.ErrorIs(t, err, index.ErrMissingLabel)
}

func TestValidateMeasurementSpec_NonStrictIsNoop(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	err = m.ValidateMeasurementSpec(map[string]int{}, []string{"erin"})
	assert.NoError(t, err)
}

func TestDecodeErr_TranslatesNodeToHostID(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	bobIdx, _ := m.Encode("bob")
	inner := verify.ExcessiveZeroLayer{Node: bobIdx}
	decoded := m.DecodeErr(inner)

	hd, ok := decoded.(index.HostDiagnostic)
	require.True(t, ok)
	assert.Equal(t, "bob", hd.Node)
	assert.ErrorIs(t, hd, inner)
}

func TestDecodeErr_PassesThroughUnknownType(t *testing.T) {
	g := path5(t)
	m, err := index.New(g)
	require.NoError(t, err)

	plain := assert.AnError
	assert.Equal(t, plain, m.DecodeErr(plain))
}

func mustEncode(t *testing.T, m *index.Map, id string) int {
	t.Helper()
	idx, err := m.Encode(id)
	require.NoError(t, err)
	return idx
}
