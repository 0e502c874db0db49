package biquad

// DefaultGridSize is the number of intervals N of the response grid. The grid
// holds N+1 points spanning 0..pi rad/sample.
const DefaultGridSize = 300

// Boundary selects how [Apply] treats input samples before the start of the
// sequence.
type Boundary int

const (
	// BoundaryReplicate repeats the first input sample: x[-1] = x[-2] = x[0].
	// This avoids a start-up step when the data has a large offset.
	BoundaryReplicate Boundary = iota
	// BoundaryZero treats missing input samples as 0.
	BoundaryZero
)

// String returns the flag-style name of the boundary rule.
func (b Boundary) String() string {
	switch b {
	case BoundaryReplicate:
		return "replicate"
	case BoundaryZero:
		return "zero"
	default:
		return "unknown"
	}
}

// config holds options for Apply and Response.
type config struct {
	boundary Boundary
	gridSize int
}

// Option configures Apply and Response.
type Option func(*config)

// WithBoundary selects the input boundary rule used by Apply.
// Default is BoundaryReplicate.
func WithBoundary(b Boundary) Option {
	return func(cfg *config) { cfg.boundary = b }
}

// WithGridSize sets the number of grid intervals N used by Response.
// Values below 1 are ignored. Default is DefaultGridSize.
func WithGridSize(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.gridSize = n
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		boundary: BoundaryReplicate,
		gridSize: DefaultGridSize,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
