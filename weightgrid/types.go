package weightgrid

// Size and weight defaults (named, no magic literals).
const (
	// DefaultWidth and DefaultHeight size the fallback grid.
	DefaultWidth  = 4
	DefaultHeight = 4

	// DefaultMinDim and DefaultMaxDim bound width and height (inclusive).
	DefaultMinDim = 2
	DefaultMaxDim = 12

	// HardMaxDim is the largest dimension WithBounds accepts. Two sides of 32
	// keep a path encoding within 62 bits.
	HardMaxDim = 32

	// DefaultMinWeight and DefaultMaxWeight bound the default uniform weights.
	DefaultMinWeight = -10
	DefaultMaxWeight = 10

	// MaxWeightMagnitude bounds |weight| for UniformWeightFn. A path on a
	// HardMaxDim×HardMaxDim grid visits fewer than 2·HardMaxDim cells, so
	// every sum and every range width fits in an int32.
	MaxWeightMagnitude = (1<<31 - 1) / (2 * HardMaxDim)
)

// MovePolicy selects how MoveTo treats targets outside the grid.
type MovePolicy int

const (
	// Strict rejects out-of-bounds targets with ErrInvalidMovement.
	Strict MovePolicy = iota
	// Permissive assigns the cursor unconditionally.
	Permissive
)

// String implements fmt.Stringer.
func (p MovePolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Bounds is the inclusive [Min, Max] range accepted for width and height.
type Bounds struct {
	Min, Max int
}

// DefaultBounds returns Bounds{DefaultMinDim, DefaultMaxDim}.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinDim, Max: DefaultMaxDim}
}

// Contains reports whether n lies in [b.Min, b.Max].
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

func (b Bounds) clamp(n int) int {
	return min(max(n, b.Min), b.Max)
}

// Grid is a rectangular lattice of integer weights plus one traversal cursor.
// cells[y][x] holds the weight of column x, row y. The matrix is immutable
// once built; x and y are the cursor.
type Grid struct {
	width, height int
	cells         [][]int
	policy        MovePolicy
	x, y          int
}
