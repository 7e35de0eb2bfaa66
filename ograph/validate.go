package ograph

import "errors"

// ErrMeasurementSpec indicates a label map keyed outside V\O, or missing a
// key required by V\O (spec.md §7 category 3; grounded on the Python
// reference's check_planelike in original_source/python/fastflow/_common.py).
var ErrMeasurementSpec = errors.New("ograph: invalid measurement specification")

// ValidateMeasurementSpec checks that labels is defined for exactly
// V\O — no extra keys, no missing keys — regardless of whether the label
// values are gflow Planes or pflow PPlanes (both are plain int codes at
// this layer; spec.md §3).
func ValidateMeasurementSpec(n int, o Set, labels map[int]int) error {
	for v := range labels {
		if v < 0 || v >= n {
			return ographErrorf("ValidateMeasurementSpec", ErrIndexRange)
		}
		if o.Has(v) {
			return ographErrorf("ValidateMeasurementSpec", ErrMeasurementSpec)
		}
	}
	for v := 0; v < n; v++ {
		if o.Has(v) {
			continue
		}
		if _, ok := labels[v]; !ok {
			return ographErrorf("ValidateMeasurementSpec", ErrMeasurementSpec)
		}
	}
	return nil
}
