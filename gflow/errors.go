// Package gflow implements the generalized-flow (gflow) finder: a
// round-based greedy search that extends causal flow to vertices measured
// in any of the three planes XY, YZ, ZX, using one GF(2) solve per round
// (spec.md Component E).
package gflow

import "errors"

// ErrGraphNil indicates a nil *ograph.Graph argument.
var ErrGraphNil = errors.New("gflow: graph is nil")

// ErrBadPlane indicates a plane map with a code outside {XY, YZ, ZX}. A map
// whose keys fail ograph.ValidateMeasurementSpec is reported with that
// function's own error (ograph.ErrMeasurementSpec or ograph.ErrIndexRange).
var ErrBadPlane = errors.New("gflow: invalid plane assignment")
