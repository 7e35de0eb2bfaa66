// Package verify independently re-checks flow witnesses produced by
// cflow, gflow, and pflow against the graph they were built for, without
// trusting anything about how they were constructed (spec.md Component
// G). Each verify entry point returns nil on success or the first
// structured diagnostic encountered.
package verify

import "fmt"

// ExcessiveNonZeroLayer: an output vertex was given a nonzero layer.
type ExcessiveNonZeroLayer struct {
	Node  int
	Layer int
}

func (e ExcessiveNonZeroLayer) Error() string {
	return fmt.Sprintf("verify: output vertex %d has nonzero layer %d", e.Node, e.Layer)
}

// ExcessiveZeroLayer: a non-output vertex was given layer zero.
type ExcessiveZeroLayer struct {
	Node int
}

func (e ExcessiveZeroLayer) Error() string {
	return fmt.Sprintf("verify: non-output vertex %d has layer zero", e.Node)
}

// InvalidFlowDomain: dom(f) disagrees with V\O at Node.
type InvalidFlowDomain struct {
	Node int
}

func (e InvalidFlowDomain) Error() string {
	return fmt.Sprintf("verify: vertex %d violates dom(f) = V\\O", e.Node)
}

// InvalidFlowCodomain: f's image contains a forbidden vertex (an input).
type InvalidFlowCodomain struct {
	Node int
}

func (e InvalidFlowCodomain) Error() string {
	return fmt.Sprintf("verify: vertex %d appears in a correction set but is an input", e.Node)
}

// InvalidMeasurementSpec: a label is missing or extraneous for Node.
type InvalidMeasurementSpec struct {
	Node int
}

func (e InvalidMeasurementSpec) Error() string {
	return fmt.Sprintf("verify: vertex %d has an invalid measurement label", e.Node)
}

// InconsistentFlowOrder: layer ordering violated between Node1 and Node2.
type InconsistentFlowOrder struct {
	Node1, Node2 int
}

func (e InconsistentFlowOrder) Error() string {
	return fmt.Sprintf("verify: layer ordering violated between %d and %d", e.Node1, e.Node2)
}

// InconsistentFlowPlane: the gflow plane condition fails at Node.
type InconsistentFlowPlane struct {
	Node  int
	Plane int
}

func (e InconsistentFlowPlane) Error() string {
	return fmt.Sprintf("verify: vertex %d violates its plane-%d condition", e.Node, e.Plane)
}

// InconsistentFlowPPlane: the Pauli-flow pplane condition fails at Node.
type InconsistentFlowPPlane struct {
	Node   int
	PPlane int
}

func (e InconsistentFlowPPlane) Error() string {
	return fmt.Sprintf("verify: vertex %d violates its pauli-plane-%d condition", e.Node, e.PPlane)
}
