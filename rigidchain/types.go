package rigidchain

// DegeneratePolicy selects how Transform treats a zero-length skeleton
// segment (coincident consecutive points), whose link direction is
// undefined.
type DegeneratePolicy int

const (
	// DegenerateIdentity substitutes the identity rotation for the
	// degenerate link: the translation center still carries points over,
	// no rotation is applied. This mirrors the zero-axis fallback used for
	// collinear links and keeps the warp total.
	DegenerateIdentity DegeneratePolicy = iota

	// DegenerateError aborts the whole call with ErrDegenerateSegment.
	DegenerateError
)

// String returns a human-readable policy name.
func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateIdentity:
		return "Identity"
	case DegenerateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Options tunes Transform. A nil *Options passed to Transform means
// DefaultOptions.
type Options struct {
	// Epsilon is the squared-length threshold at or below which a skeleton
	// segment or rotation axis counts as degenerate. Must be ≥ 0; the
	// zero default detects exactly-coincident points only.
	Epsilon float64

	// OnDegenerate selects the zero-length-segment policy.
	OnDegenerate DegeneratePolicy
}

// DefaultOptions returns the canonical configuration:
//   - Epsilon 0: exact-zero degeneracy test
//   - DegenerateIdentity: degenerate links translate without rotating
func DefaultOptions() Options {
	return Options{
		Epsilon:      0,
		OnDegenerate: DegenerateIdentity,
	}
}
