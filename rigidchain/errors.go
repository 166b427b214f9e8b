package rigidchain

import "errors"

// Sentinel errors returned by Transform. Match with errors.Is. They are
// never wrapped into each other; call sites may add context with
// fmt.Errorf("%w: ...", Err...).
var (
	// ErrNilInput is returned when x, y or xi is nil.
	ErrNilInput = errors.New("rigidchain: nil input matrix")

	// ErrDimensionMismatch is returned when x, y and xi do not share one
	// column count.
	ErrDimensionMismatch = errors.New("rigidchain: inputs differ in dimensionality")

	// ErrUnsupportedDimension is returned when points are not 3-dimensional.
	// Link rotation axes come from a 3D cross product; other
	// dimensionalities are rejected at validation.
	ErrUnsupportedDimension = errors.New("rigidchain: only 3-dimensional points are supported")

	// ErrCardinalityMismatch is returned when the skeletons differ in
	// length, or idx does not cover the query points one-to-one.
	ErrCardinalityMismatch = errors.New("rigidchain: input cardinalities do not agree")

	// ErrSkeletonTooShort is returned when a skeleton has fewer than two
	// points; a single point admits no alignment frame.
	ErrSkeletonTooShort = errors.New("rigidchain: skeleton needs at least two points")

	// ErrAssignmentRange is returned when an idx value does not name a
	// skeleton point. An out-of-range assignment would leave its query
	// point stranded mid-warp, so it is rejected up front.
	ErrAssignmentRange = errors.New("rigidchain: assignment index outside skeleton range")

	// ErrNonFinitePoint is returned when any input coordinate is NaN or
	// ±Inf.
	ErrNonFinitePoint = errors.New("rigidchain: non-finite point coordinate")

	// ErrBadOption is returned when Options carry an invalid value.
	ErrBadOption = errors.New("rigidchain: invalid option")

	// ErrDegenerateSegment is returned under DegenerateError policy when
	// two consecutive skeleton points coincide and no link direction
	// exists.
	ErrDegenerateSegment = errors.New("rigidchain: zero-length skeleton segment")
)
