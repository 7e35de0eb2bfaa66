// Package gf2 provides bit-packed linear algebra over the two-element
// field GF(2): dense row-major matrices backed by machine words, and a
// deterministic linear solver with minimum-Hamming-weight tie-breaking.
//
// This is Component A ("GF(2) matrix") and Component B ("GF(2) solver")
// of the flow-finding engine; the causal-flow, gflow, and Pauli-flow
// finders are all expressed as sequences of calls into this package.
package gf2

import "errors"

// ErrBadShape is returned when requested matrix/vector dimensions are non-positive.
var ErrBadShape = errors.New("gf2: dimensions must be > 0")

// ErrOutOfRange indicates a row, column, or bit index outside valid bounds.
var ErrOutOfRange = errors.New("gf2: index out of range")

// ErrDimensionMismatch indicates incompatible shapes between operands
// (e.g. Solve where a.Rows() != b.Rows()).
var ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

// ErrNilMatrix indicates a nil *Matrix argument or receiver.
var ErrNilMatrix = errors.New("gf2: nil matrix")
