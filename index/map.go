package index

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/qflow/internal/qlog"
	"github.com/katalvlaran/qflow/lvlath/core"
	"github.com/katalvlaran/qflow/ograph"
)

// Map is the bidirectional bijection between host vertex IDs and the
// dense indices 0..n-1 the rest of this module operates on. Indices are
// assigned in the host graph's sorted-ID order, so two Maps built from
// graphs with the same vertex set always agree (spec.md §5, determinism).
type Map struct {
	fwd    map[string]int
	rev    []string
	cfg    config
	corrID uuid.UUID
}

// New builds the bijection from g's current vertex set. g is not
// retained; later mutation of g does not affect an already-built Map.
func New(g *core.Graph, opts ...Option) (*Map, error) {
	if g == nil {
		return nil, indexErrorf("New", ErrGraphNil)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Vertices() // sorted, per core.Graph.Vertices
	fwd := make(map[string]int, len(ids))
	for i, id := range ids {
		fwd[id] = i
	}

	corrID := uuid.New()
	qlog.Log.Debug().
		Str("correlation_id", corrID.String()).
		Int("n", len(ids)).
		Msg("index: built vertex bijection")

	return &Map{fwd: fwd, rev: ids, cfg: cfg, corrID: corrID}, nil
}

// N returns the number of vertices in the bijection.
func (m *Map) N() int { return len(m.rev) }

// Encode translates a host vertex ID to its dense index.
func (m *Map) Encode(id string) (int, error) {
	idx, ok := m.fwd[id]
	if !ok {
		return 0, indexErrorf("Encode", ErrUnknownVertex)
	}
	return idx, nil
}

// Decode translates a dense index back to its host vertex ID.
func (m *Map) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(m.rev) {
		return "", indexErrorf("Decode", ErrIndexOutOfRange)
	}
	return m.rev[idx], nil
}

// EncodeSet translates a slice of host IDs to an ograph.Set.
func (m *Map) EncodeSet(ids []string) (ograph.Set, error) {
	s := ograph.NewSet()
	for _, id := range ids {
		idx, err := m.Encode(id)
		if err != nil {
			return nil, err
		}
		s[idx] = struct{}{}
	}
	return s, nil
}

// DecodeSet translates an ograph.Set back to a sorted slice of host IDs.
func (m *Map) DecodeSet(s ograph.Set) ([]string, error) {
	out := make([]string, 0, len(s))
	for _, idx := range s.Sorted() {
		id, err := m.Decode(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// DecodeLabels translates a host-ID-keyed measurement-plane map into the
// dense-index-keyed form every finder expects.
func (m *Map) DecodeLabels(labels map[string]int) (map[int]int, error) {
	out := make(map[int]int, len(labels))
	for id, code := range labels {
		idx, err := m.Encode(id)
		if err != nil {
			return nil, err
		}
		out[idx] = code
	}
	return out, nil
}

// BuildGraph validates the host graph's structural preconditions, builds
// its bijection, and renders an *ograph.Graph for the dense-index core.
// inputs/outputs are host vertex IDs for I and O respectively.
func BuildGraph(ctx context.Context, g *core.Graph, inputs, outputs []string, opts ...Option) (*Map, *ograph.Graph, error) {
	if g == nil {
		return nil, nil, indexErrorf("BuildGraph", ErrGraphNil)
	}
	if err := validateHostGraph(ctx, g); err != nil {
		return nil, nil, indexErrorf("BuildGraph", err)
	}

	m, err := New(g, opts...)
	if err != nil {
		return nil, nil, err
	}

	adj := make([]ograph.Set, m.N())
	for i := range adj {
		adj[i] = ograph.NewSet()
	}
	for _, id := range m.rev {
		u := m.fwd[id]
		nbrIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, nil, indexErrorf("BuildGraph", err)
		}
		for _, nbrID := range nbrIDs {
			v, err := m.Encode(nbrID)
			if err != nil {
				return nil, nil, indexErrorf("BuildGraph", err)
			}
			adj[u][v] = struct{}{}
		}
	}

	iSet, err := m.EncodeSet(inputs)
	if err != nil {
		return nil, nil, indexErrorf("BuildGraph", err)
	}
	oSet, err := m.EncodeSet(outputs)
	if err != nil {
		return nil, nil, indexErrorf("BuildGraph", err)
	}

	og, err := ograph.New(adj, iSet, oSet)
	if err != nil {
		return nil, nil, indexErrorf("BuildGraph", err)
	}
	return m, og, nil
}

// ValidateMeasurementSpec checks that labels has an entry for every host
// vertex outside outputs. The first vertex without one, in sorted-ID
// order, is logged by host ID at Warn level and ErrMissingLabel is
// returned; labels keyed on output or unknown vertices are not checked.
// A no-op unless the Map was built WithStrictMeasurementSpec;
// without that option the same check happens implicitly inside
// verify.GFlow/verify.PFlow on the decoded, index-keyed label map.
func (m *Map) ValidateMeasurementSpec(labels map[string]int, outputs []string) error {
	if !m.cfg.strictMeasurementSpec {
		return nil
	}
	oSet, err := m.EncodeSet(outputs)
	if err != nil {
		return indexErrorf("ValidateMeasurementSpec", err)
	}
	for _, id := range m.rev {
		idx := m.fwd[id]
		if oSet.Has(idx) {
			continue
		}
		if _, ok := labels[id]; !ok {
			qlog.Log.Warn().
				Str("correlation_id", m.corrID.String()).
				Str("vertex", id).
				Msg("index: measurement spec missing a label")
			return indexErrorf("ValidateMeasurementSpec", ErrMissingLabel)
		}
	}
	return nil
}
