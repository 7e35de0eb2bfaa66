// Package pflow implements the Pauli-flow finder: gflow generalized to
// allow the three Pauli axis labels X, Y, Z in addition to the three
// measurement planes, each permitting a vertex to correct itself
// (spec.md Component F).
package pflow

import "errors"

// ErrGraphNil indicates a nil *ograph.Graph argument.
var ErrGraphNil = errors.New("pflow: graph is nil")

// ErrBadPPlane indicates a pplane map with a code outside
// {XY, YZ, ZX, X, Y, Z}. A map whose keys fail
// ograph.ValidateMeasurementSpec is reported with that function's own error
// (ograph.ErrMeasurementSpec or ograph.ErrIndexRange).
var ErrBadPPlane = errors.New("pflow: invalid pauli-plane assignment")
