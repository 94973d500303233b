// pkg/hexgrid/grid.go
package hexgrid

import (
	"fmt"
	"math"

	"go-hex-maze/internal/config"
	"go-hex-maze/internal/utils"
)

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

// Cell is a single hexagon of the grid. Cells are created once by the
// builder and immutable afterwards; passage state lives in the edge set,
// not on the cell.
type Cell struct {
	ID  int // 1-based linear id: row*cols + col + 1
	Row int
	Col int
	X   float64 // pixel-space center
	Y   float64

	neighbors [DirectionCount]*Cell
}

// Neighbor returns the adjacent cell in direction d, or nil at the grid
// boundary.
func (c *Cell) Neighbor(d Direction) *Cell {
	return c.neighbors[d]
}

// Neighbors returns the existing neighbors in direction order (NE..NW).
func (c *Cell) Neighbors() []*Cell {
	result := make([]*Cell, 0, DirectionCount)
	for _, n := range c.neighbors {
		if n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Grid is a fully linked rectangular field of hex cells.
type Grid struct {
	Cells  [][]*Cell // [row][col]
	Dims   Dimensions
	Radius float64 // hex circumradius, HexHeight / 2
}

// NewPresetGrid builds a grid with explicit row/column counts. The hex
// radius is fixed at MinHexWidth/√3 and padding is one unit on both axes.
func NewPresetGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("preset grid needs at least 1x1, got %dx%d", rows, cols)
	}
	return newGrid(rows, cols, config.MinHexWidth, Padding{
		Horizontal: config.PresetPadding,
		Vertical:   config.PresetPadding,
	}), nil
}

// NewGridFromSize derives rows, columns and a randomized hex width from a
// container size in pixels. The candidate maximum width shrinks by 10% per
// iteration until the implied column count reaches MinHexagonsPerRow, then
// the final width is drawn uniformly from [minWidth, maxWidth]. Leftover
// space becomes centering padding.
func NewGridFromSize(width, height float64, rng *utils.PRNG) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("container size must be positive, got %.1fx%.1f", width, height)
	}

	maxWidth := math.Min(config.MaxHexWidth, width/config.MaxHexagonsPerRow)
	if maxWidth < config.MinHexWidth {
		maxWidth = config.MinHexWidth
	}
	for int(width/maxWidth) < config.MinHexagonsPerRow {
		maxWidth *= 0.9
	}
	minWidth := math.Min(config.MinHexWidth, maxWidth)

	hexWidth := minWidth + rng.Float64()*(maxWidth-minWidth)
	hexHeight := 2 * hexWidth / Sqrt3

	// Odd rows shift right by half a width, so a full row occupies
	// (cols + 0.5) widths; rows overlap at 0.75 of their height.
	cols := int((width - hexWidth/2) / hexWidth)
	rows := int((height - (1-config.RowPitchFactor)*hexHeight) / (config.RowPitchFactor * hexHeight))
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("container %.1fx%.1f too small for hex width %.2f", width, height, hexWidth)
	}

	pad := Padding{
		Horizontal: (width - (float64(cols)+0.5)*hexWidth) / 2,
		Vertical:   (height - (config.RowPitchFactor*float64(rows)+1-config.RowPitchFactor)*hexHeight) / 2,
	}
	return newGrid(rows, cols, hexWidth, pad), nil
}

func newGrid(rows, cols int, hexWidth float64, pad Padding) *Grid {
	radius := hexWidth / Sqrt3
	hexHeight := 2 * radius

	g := &Grid{
		Cells: make([][]*Cell, rows),
		Dims: Dimensions{
			Rows:      rows,
			Cols:      cols,
			HexWidth:  hexWidth,
			HexHeight: hexHeight,
			Padding:   pad,
		},
		Radius: radius,
	}

	for row := 0; row < rows; row++ {
		g.Cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			x := pad.Horizontal + hexWidth*(float64(col)+0.5)
			if row%2 != 0 {
				x += hexWidth / 2
			}
			y := pad.Vertical + hexHeight*(0.5+config.RowPitchFactor*float64(row))
			g.Cells[row][col] = &Cell{
				ID:  row*cols + col + 1,
				Row: row,
				Col: col,
				X:   x,
				Y:   y,
			}
		}
	}

	// Link neighbors through the shared direction rule.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := g.Cells[row][col]
			for d := Direction(0); d < DirectionCount; d++ {
				dRow, dCol := d.Delta(row)
				cell.neighbors[d] = g.CellAt(row+dRow, col+dCol)
			}
		}
	}

	return g
}

// CellAt returns the cell at (row, col), or nil outside the grid.
func (g *Grid) CellAt(row, col int) *Cell {
	if row < 0 || row >= g.Dims.Rows || col < 0 || col >= g.Dims.Cols {
		return nil
	}
	return g.Cells[row][col]
}

// CellByID resolves a 1-based linear id, or nil if it falls outside the
// grid. Callers treat a nil result as "no cell" and keep going.
func (g *Grid) CellByID(id int) *Cell {
	if id < 1 || id > g.Dims.CellCount() {
		return nil
	}
	idx := id - 1
	return g.Cells[idx/g.Dims.Cols][idx%g.Dims.Cols]
}

// ReferenceVertex returns the point at 30° from the cell center at a
// distance of one hex radius. Downstream rendering anchors geometry on it.
func (g *Grid) ReferenceVertex(c *Cell) (x, y float64) {
	const angle = math.Pi / 6
	return c.X + g.Radius*math.Cos(angle), c.Y + g.Radius*math.Sin(angle)
}
