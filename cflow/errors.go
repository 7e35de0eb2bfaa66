// Package cflow implements the maximally-delayed causal-flow finder
// (spec.md Component D, Mhalla–Perdrix). Every non-output vertex is
// implicitly measured in the XY plane; only graph structure matters.
package cflow

import "errors"

// ErrGraphNil indicates a nil *ograph.Graph argument.
var ErrGraphNil = errors.New("cflow: graph is nil")
