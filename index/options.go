package index

// config holds the adapter's behavioral knobs, threaded through via
// functional options in the manner of lvlath/core's GraphOption
// (WithLoops, WithMixedEdges, ...).
type config struct {
	strictMeasurementSpec bool
}

// Option configures a Map at construction time.
type Option func(*config)

// WithStrictMeasurementSpec makes Map.ValidateMeasurementSpec reject any
// host vertex outside O that is absent from the label map. Without it
// the check is deferred to whichever verify/finder call ultimately
// inspects the label map.
func WithStrictMeasurementSpec() Option {
	return func(c *config) { c.strictMeasurementSpec = true }
}
