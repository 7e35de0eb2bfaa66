package index

import (
	"fmt"

	"github.com/katalvlaran/qflow/verify"
)

// HostDiagnostic wraps a verify diagnostic with its vertex fields
// translated back to host IDs, since every verify type carries dense
// indices meaningless to a caller that only ever dealt in host IDs.
type HostDiagnostic struct {
	Kind string
	Node string
	// Node2 holds the second vertex for two-vertex diagnostics
	// (InconsistentFlowOrder); empty otherwise.
	Node2 string
	Inner error
}

func (d HostDiagnostic) Error() string {
	if d.Node2 != "" {
		return fmt.Sprintf("index: %s (%s, %s): %v", d.Kind, d.Node, d.Node2, d.Inner)
	}
	return fmt.Sprintf("index: %s (%s): %v", d.Kind, d.Node, d.Inner)
}

// Unwrap exposes the original verify diagnostic.
func (d HostDiagnostic) Unwrap() error { return d.Inner }

// DecodeErr translates a verify diagnostic's dense indices back to host
// vertex IDs. Errors verify never produces (or that fail to decode) pass
// through unchanged.
func (m *Map) DecodeErr(err error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case verify.ExcessiveNonZeroLayer:
		return m.wrap("ExcessiveNonZeroLayer", e.Node, -1, e)
	case verify.ExcessiveZeroLayer:
		return m.wrap("ExcessiveZeroLayer", e.Node, -1, e)
	case verify.InvalidFlowDomain:
		return m.wrap("InvalidFlowDomain", e.Node, -1, e)
	case verify.InvalidFlowCodomain:
		return m.wrap("InvalidFlowCodomain", e.Node, -1, e)
	case verify.InvalidMeasurementSpec:
		return m.wrap("InvalidMeasurementSpec", e.Node, -1, e)
	case verify.InconsistentFlowOrder:
		return m.wrap("InconsistentFlowOrder", e.Node1, e.Node2, e)
	case verify.InconsistentFlowPlane:
		return m.wrap("InconsistentFlowPlane", e.Node, -1, e)
	case verify.InconsistentFlowPPlane:
		return m.wrap("InconsistentFlowPPlane", e.Node, -1, e)
	default:
		return err
	}
}

func (m *Map) wrap(kind string, node, node2 int, inner error) error {
	id, derr := m.Decode(node)
	if derr != nil {
		return inner
	}
	id2 := ""
	if node2 >= 0 {
		if decoded, derr := m.Decode(node2); derr == nil {
			id2 = decoded
		}
	}
	return HostDiagnostic{Kind: kind, Node: id, Node2: id2, Inner: inner}
}
