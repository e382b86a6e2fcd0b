package tableau

// DefaultPrecision is the epsilon shared by every zero, feasibility and
// integrality test of one Tableau.
const DefaultPrecision = 1e-9

// config holds construction-time knobs.
type config struct {
	precision float64
	maxPivots int // <=0 ⇒ derived from the tableau size
}

func defaultConfig() config {
	return config{precision: DefaultPrecision}
}

// Option represents a functional option for configuring a Tableau.
type Option func(*config)

// WithPrecision sets the tolerance used for all comparisons of this tableau.
// Must be strictly positive and finite; New returns ErrBadPrecision otherwise.
func WithPrecision(eps float64) Option {
	return func(c *config) {
		c.precision = eps
	}
}

// WithMaxPivots caps the simplex iterations of a single Solve call.
// Non-positive values select the default of 50·(rows+cols)+1000.
func WithMaxPivots(n int) Option {
	return func(c *config) {
		c.maxPivots = n
	}
}
