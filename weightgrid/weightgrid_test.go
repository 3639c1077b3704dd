package weightgrid_test

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/latsum/weightgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_SizeBounds checks both inclusive endpoints and the rejects around them.
func TestNew_SizeBounds(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"MinMin", 2, 2, false},
		{"MaxMax", 12, 12, false},
		{"Mixed", 2, 12, false},
		{"WidthTooSmall", 1, 4, true},
		{"HeightTooSmall", 4, 1, true},
		{"WidthTooLarge", 13, 4, true},
		{"HeightTooLarge", 4, 13, true},
		{"Zero", 0, 0, true},
		{"Negative", -3, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := weightgrid.New(tc.width, tc.height, weightgrid.WithSeed(7))
			if tc.wantErr {
				require.ErrorIs(t, err, weightgrid.ErrUnsupportedSize)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.width, g.Width())
			assert.Equal(t, tc.height, g.Height())
		})
	}
}

// TestNew_WeightsInRange verifies every drawn weight respects the default range.
func TestNew_WeightsInRange(t *testing.T) {
	g, err := weightgrid.New(12, 12, weightgrid.WithSeed(42))
	require.NoError(t, err)
	for y, row := range g.Rows() {
		for x, w := range row {
			assert.GreaterOrEqual(t, w, weightgrid.DefaultMinWeight, "cell (%d,%d)", x, y)
			assert.LessOrEqual(t, w, weightgrid.DefaultMaxWeight, "cell (%d,%d)", x, y)
		}
	}
}

// TestNew_SeedDeterminism ensures equal seeds give equal grids and the
// zero seed maps onto the fixed default stream.
func TestNew_SeedDeterminism(t *testing.T) {
	a, err := weightgrid.New(6, 5, weightgrid.WithSeed(99))
	require.NoError(t, err)
	b, err := weightgrid.New(6, 5, weightgrid.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())

	z, err := weightgrid.New(6, 5, weightgrid.WithSeed(0))
	require.NoError(t, err)
	d, err := weightgrid.New(6, 5)
	require.NoError(t, err)
	assert.Equal(t, z.Rows(), d.Rows())
}

func TestNew_CustomOptions(t *testing.T) {
	g, err := weightgrid.New(3, 3, weightgrid.WithWeightFn(weightgrid.ConstantWeightFn(5)))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}}, g.Rows())

	g, err = weightgrid.New(4, 4, weightgrid.WithRand(rand.New(rand.NewSource(3))), weightgrid.WithWeightRange(1, 2))
	require.NoError(t, err)
	for _, row := range g.Rows() {
		for _, w := range row {
			assert.Contains(t, []int{1, 2}, w)
		}
	}

	_, err = weightgrid.New(20, 20, weightgrid.WithBounds(2, 32))
	require.NoError(t, err)
	_, err = weightgrid.New(2, 2, weightgrid.WithBounds(3, 5))
	require.ErrorIs(t, err, weightgrid.ErrUnsupportedSize)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { weightgrid.WithRand(nil) })
	assert.Panics(t, func() { weightgrid.WithWeightFn(nil) })
	assert.Panics(t, func() { weightgrid.WithBounds(0, 4) })
	assert.Panics(t, func() { weightgrid.WithBounds(5, 4) })
	assert.Panics(t, func() { weightgrid.WithBounds(2, weightgrid.HardMaxDim+1) })
	assert.Panics(t, func() { weightgrid.WithMovePolicy(weightgrid.MovePolicy(9)) })
	assert.Panics(t, func() { weightgrid.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { weightgrid.UniformWeightFn(math.MinInt, math.MaxInt) })
	assert.Panics(t, func() { weightgrid.WithWeightRange(0, weightgrid.MaxWeightMagnitude+1) })
	assert.NotPanics(t, func() {
		weightgrid.UniformWeightFn(-weightgrid.MaxWeightMagnitude, weightgrid.MaxWeightMagnitude)
	})
}

// TestFromValues_Errors verifies that FromValues rejects empty or ragged inputs.
func TestFromValues_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, weightgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, weightgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, weightgrid.ErrNonRectangular},
		{"TooNarrow", [][]int{{1}, {2}}, weightgrid.ErrUnsupportedSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := weightgrid.FromValues(tc.grid)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromValues_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := weightgrid.FromValues(src)
	require.NoError(t, err)
	src[0][0] = 100

	w, err := g.WeightAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	rows := g.Rows()
	rows[1][1] = -1
	w, err = g.WeightAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, w)
}

func TestNewOrDefault(t *testing.T) {
	g, err := weightgrid.NewOrDefault(5, 3, weightgrid.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())

	g, err = weightgrid.NewOrDefault(0, 0, weightgrid.WithSeed(1))
	require.ErrorIs(t, err, weightgrid.ErrUnsupportedSize)
	require.NotNil(t, g, "fallback grid must be returned with the size error")
	assert.Equal(t, weightgrid.DefaultWidth, g.Width())
	assert.Equal(t, weightgrid.DefaultHeight, g.Height())

	// Bounds that exclude the default size pull the fallback into range.
	g, err = weightgrid.NewOrDefault(3, 3, weightgrid.WithBounds(5, 8))
	require.ErrorIs(t, err, weightgrid.ErrUnsupportedSize)
	require.NotNil(t, g)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())

	g, err = weightgrid.NewOrDefault(9, 1, weightgrid.WithBounds(2, 3))
	require.ErrorIs(t, err, weightgrid.ErrUnsupportedSize)
	require.NotNil(t, g)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
}

//----------------------------------------------------------------------------//
// Queries and cursor
//----------------------------------------------------------------------------//

func TestWeightAt(t *testing.T) {
	g, err := weightgrid.FromValues([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	w, err := g.WeightAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, w, "x is the column, y the row")

	w, err = g.WeightAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, w)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err = g.WeightAt(xy[0], xy[1])
		assert.ErrorIs(t, err, weightgrid.ErrOutOfRange, "WeightAt(%d,%d)", xy[0], xy[1])
	}
}

// TestIsValidMove checks the predicate on a 3×2 grid.
func TestIsValidMove(t *testing.T) {
	g, err := weightgrid.FromValues([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.IsValidMove(xy[0], xy[1]), "IsValidMove(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.IsValidMove(xy[0], xy[1]), "IsValidMove(%d,%d)", xy[0], xy[1])
	}
	x, y := g.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y}, "predicate must not move the cursor")
}

func TestMoveTo_Strict(t *testing.T) {
	g, err := weightgrid.FromValues([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, weightgrid.Strict, g.Policy())

	require.NoError(t, g.MoveTo(1, 0))
	err = g.MoveTo(2, 0)
	require.ErrorIs(t, err, weightgrid.ErrInvalidMovement)
	x, y := g.Cursor()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y}, "failed move leaves the cursor in place")

	g.ResetCursor()
	x, y = g.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
}

func TestMoveTo_Permissive(t *testing.T) {
	g, err := weightgrid.FromValues([][]int{{1, 2}, {3, 4}}, weightgrid.WithMovePolicy(weightgrid.Permissive))
	require.NoError(t, err)

	require.NoError(t, g.MoveTo(5, -1))
	x, y := g.Cursor()
	assert.Equal(t, [2]int{5, -1}, [2]int{x, y})
	assert.Equal(t, "permissive", g.Policy().String())
}

func TestClone_IndependentCursor(t *testing.T) {
	g, err := weightgrid.New(4, 4, weightgrid.WithSeed(5))
	require.NoError(t, err)
	require.NoError(t, g.MoveTo(2, 3))

	c := g.Clone()
	x, y := c.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	require.NoError(t, c.MoveTo(1, 1))

	x, y = g.Cursor()
	assert.Equal(t, [2]int{2, 3}, [2]int{x, y})
	assert.Equal(t, g.Rows(), c.Rows())
}

func TestRender(t *testing.T) {
	g, err := weightgrid.FromValues([][]int{{1, -10}, {3, 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"1", "-10"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"3", "4"}, strings.Fields(lines[1]))
}
