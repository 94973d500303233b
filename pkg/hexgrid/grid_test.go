// pkg/hexgrid/grid_test.go
package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hex-maze/internal/config"
	"go-hex-maze/internal/utils"
)

func TestLinearIDs(t *testing.T) {
	grid, err := NewPresetGrid(4, 5)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			cell := grid.CellAt(row, col)
			require.NotNil(t, cell)
			assert.Equal(t, row*5+col+1, cell.ID)
			assert.False(t, seen[cell.ID], "duplicate id %d", cell.ID)
			seen[cell.ID] = true
			assert.Same(t, cell, grid.CellByID(cell.ID))
		}
	}
	assert.Len(t, seen, 20)

	t.Run("out of range ids resolve to no cell", func(t *testing.T) {
		assert.Nil(t, grid.CellByID(0))
		assert.Nil(t, grid.CellByID(21))
		assert.Nil(t, grid.CellByID(-3))
	})
}

func TestNeighborSymmetry(t *testing.T) {
	grid, err := NewPresetGrid(5, 7)
	require.NoError(t, err)

	for _, row := range grid.Cells {
		for _, cell := range row {
			for d := Direction(0); d < DirectionCount; d++ {
				n := cell.Neighbor(d)
				if n == nil {
					continue
				}
				assert.Same(t, cell, n.Neighbor(d.Opposite()),
					"cell %d dir %s neighbor %d does not point back", cell.ID, d, n.ID)
			}
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	t.Run("even row", func(t *testing.T) {
		d, ok := DirectionBetween(2, 3, 2, 4)
		require.True(t, ok)
		assert.Equal(t, DirE, d)

		d, ok = DirectionBetween(2, 3, 1, 2)
		require.True(t, ok)
		assert.Equal(t, DirNW, d)

		d, ok = DirectionBetween(2, 3, 3, 3)
		require.True(t, ok)
		assert.Equal(t, DirSE, d)
	})

	t.Run("odd row", func(t *testing.T) {
		d, ok := DirectionBetween(1, 3, 0, 4)
		require.True(t, ok)
		assert.Equal(t, DirNE, d)

		d, ok = DirectionBetween(1, 3, 2, 3)
		require.True(t, ok)
		assert.Equal(t, DirSW, d)
	})

	t.Run("non-neighbors", func(t *testing.T) {
		_, ok := DirectionBetween(0, 0, 0, 2)
		assert.False(t, ok)
		_, ok = DirectionBetween(0, 0, 2, 0)
		assert.False(t, ok)
		// Same row diff 1, but the wrong diagonal for an even source row.
		_, ok = DirectionBetween(0, 0, 1, 1)
		assert.False(t, ok)
		_, ok = DirectionBetween(3, 3, 3, 3)
		assert.False(t, ok)
	})

	t.Run("opposites pair up", func(t *testing.T) {
		for d := Direction(0); d < DirectionCount; d++ {
			assert.Equal(t, d, d.Opposite().Opposite())
			assert.NotEqual(t, d, d.Opposite())
		}
	})
}

func TestPresetGeometry(t *testing.T) {
	grid, err := NewPresetGrid(3, 3)
	require.NoError(t, err)

	dims := grid.Dims
	assert.InDelta(t, config.MinHexWidth, dims.HexWidth, 1e-9)
	assert.InDelta(t, config.MinHexWidth/Sqrt3, grid.Radius, 1e-9)
	assert.InDelta(t, 2*grid.Radius, dims.HexHeight, 1e-9)
	assert.Equal(t, Padding{Horizontal: config.PresetPadding, Vertical: config.PresetPadding}, dims.Padding)

	t.Run("odd rows shift right by half a width", func(t *testing.T) {
		even := grid.CellAt(0, 0)
		odd := grid.CellAt(1, 0)
		assert.InDelta(t, dims.HexWidth/2, odd.X-even.X, 1e-9)
	})

	t.Run("row pitch is three quarters of hex height", func(t *testing.T) {
		top := grid.CellAt(0, 1)
		below := grid.CellAt(1, 1)
		assert.InDelta(t, config.RowPitchFactor*dims.HexHeight, below.Y-top.Y, 1e-9)
	})
}

func TestNewGridFromSize(t *testing.T) {
	t.Run("derived grid respects bounds", func(t *testing.T) {
		grid, err := NewGridFromSize(1200, 900, utils.NewPRNG(7))
		require.NoError(t, err)

		dims := grid.Dims
		assert.GreaterOrEqual(t, dims.Cols, config.MinHexagonsPerRow)
		assert.GreaterOrEqual(t, dims.Rows, 1)
		assert.LessOrEqual(t, dims.HexWidth, float64(config.MaxHexWidth))
		assert.GreaterOrEqual(t, dims.Padding.Horizontal, 0.0)
		assert.GreaterOrEqual(t, dims.Padding.Vertical, 0.0)
	})

	t.Run("same seed yields the same topology", func(t *testing.T) {
		a, err := NewGridFromSize(1000, 700, utils.NewPRNG(42))
		require.NoError(t, err)
		b, err := NewGridFromSize(1000, 700, utils.NewPRNG(42))
		require.NoError(t, err)
		assert.Equal(t, a.Dims, b.Dims)
	})

	t.Run("degenerate containers fail fast", func(t *testing.T) {
		_, err := NewGridFromSize(0, 900, utils.NewPRNG(1))
		assert.Error(t, err)
		_, err = NewGridFromSize(1200, -10, utils.NewPRNG(1))
		assert.Error(t, err)
		_, err = NewGridFromSize(100, 1, utils.NewPRNG(1))
		assert.Error(t, err)
	})
}

func TestPresetGridValidation(t *testing.T) {
	_, err := NewPresetGrid(0, 5)
	assert.Error(t, err)
	_, err = NewPresetGrid(3, -1)
	assert.Error(t, err)
}

func TestSingleCellGrid(t *testing.T) {
	grid, err := NewPresetGrid(1, 1)
	require.NoError(t, err)

	cell := grid.CellAt(0, 0)
	require.NotNil(t, cell)
	assert.Equal(t, 1, cell.ID)
	assert.Empty(t, cell.Neighbors())
}
