// Package index adapts a host-identified graph (lvlath/core.Graph,
// vertices named by arbitrary strings) onto the dense 0..n-1 index space
// every other component in this module operates on, and translates
// verify diagnostics back into host-identified form (spec.md §6, External
// Interfaces: "callers outside the core never see bare indices").
package index

import (
	"errors"
	"fmt"
)

// ErrGraphNil indicates a nil *core.Graph was passed to New.
var ErrGraphNil = errors.New("index: host graph is nil")

// ErrUnknownVertex indicates a host ID absent from the bijection.
var ErrUnknownVertex = errors.New("index: unknown vertex id")

// ErrIndexOutOfRange indicates a dense index outside 0..n-1.
var ErrIndexOutOfRange = errors.New("index: dense index out of range")

// ErrDirectedGraph indicates the host graph carries directed edges; a
// measurement pattern's entanglement graph must be undirected (spec.md §3).
var ErrDirectedGraph = errors.New("index: host graph has directed edges")

// ErrLoopedGraph indicates a self-loop, forbidden by spec.md §3/§7.
var ErrLoopedGraph = errors.New("index: host graph has a self-loop")

// ErrMultiEdge indicates parallel edges between the same pair of vertices,
// which the bitset adjacency substrate cannot represent faithfully.
var ErrMultiEdge = errors.New("index: host graph has a multi-edge")

// ErrMissingLabel indicates a non-output vertex has no measurement label
// under WithStrictMeasurementSpec.
var ErrMissingLabel = errors.New("index: vertex has no measurement label")

func indexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
