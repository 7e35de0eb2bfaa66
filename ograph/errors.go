// Package ograph is the dense-index open-graph substrate (spec.md
// Component C): adjacency stored as one GF(2) bitset row per vertex, plus
// the Odd-neighborhood primitive every finder and the verifier build on.
//
// All APIs here operate on vertex indices 0..n-1; the bijection with
// arbitrary host identities is the job of the index package.
package ograph

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph indicates n == 0.
var ErrEmptyGraph = errors.New("ograph: graph is empty")

// ErrSelfLoop indicates a vertex adjacent to itself (not a simple graph).
var ErrSelfLoop = errors.New("ograph: self-loop detected")

// ErrAsymmetric indicates G[i] and G[j] disagree on whether i~j.
var ErrAsymmetric = errors.New("ograph: adjacency is not symmetric")

// ErrIndexRange indicates a vertex reference outside 0..n-1.
var ErrIndexRange = errors.New("ograph: vertex index out of range")

// ErrNotSubset indicates I or O is not a subset of 0..n-1.
var ErrNotSubset = errors.New("ograph: not a subset of vertices")

func ographErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
