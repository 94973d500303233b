// pkg/hexgrid/direction.go
package hexgrid

// Direction is one of the 6 fixed sides of a pointy-top hex cell.
// The order matters: opposite directions are exactly 3 apart.
type Direction int

const (
	DirNE Direction = iota
	DirE
	DirSE
	DirSW
	DirW
	DirNW

	DirectionCount = 6
)

var directionNames = [DirectionCount]string{"NE", "E", "SE", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "?"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	return (d + 3) % DirectionCount
}

// Row/col deltas for an odd-row-right offset layout. Odd rows are shifted
// half a hex to the right, so the diagonal directions depend on row parity.
var (
	evenRowDeltas = [DirectionCount][2]int{
		{-1, 0},  // NE
		{0, 1},   // E
		{1, 0},   // SE
		{1, -1},  // SW
		{0, -1},  // W
		{-1, -1}, // NW
	}
	oddRowDeltas = [DirectionCount][2]int{
		{-1, 1}, // NE
		{0, 1},  // E
		{1, 1},  // SE
		{1, 0},  // SW
		{0, -1}, // W
		{-1, 0}, // NW
	}
)

// Delta returns the (row, col) offset of the neighbor in direction d,
// as seen from a cell in the given row. This is the single source of the
// adjacency rule; the grid builder, the path map assembler and the
// connectivity analyzer all resolve neighbors through it.
func (d Direction) Delta(row int) (dRow, dCol int) {
	if row%2 == 0 {
		return evenRowDeltas[d][0], evenRowDeltas[d][1]
	}
	return oddRowDeltas[d][0], oddRowDeltas[d][1]
}

// DirectionBetween returns the direction pointing from (fromRow, fromCol)
// to (toRow, toCol), or false if the two positions are not hex neighbors.
func DirectionBetween(fromRow, fromCol, toRow, toCol int) (Direction, bool) {
	for d := Direction(0); d < DirectionCount; d++ {
		dRow, dCol := d.Delta(fromRow)
		if fromRow+dRow == toRow && fromCol+dCol == toCol {
			return d, true
		}
	}
	return 0, false
}

// AreNeighbors reports whether two grid positions are adjacent under the
// row-parity rule.
func AreNeighbors(aRow, aCol, bRow, bCol int) bool {
	_, ok := DirectionBetween(aRow, aCol, bRow, bCol)
	return ok
}
