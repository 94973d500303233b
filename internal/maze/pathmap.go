// internal/maze/pathmap.go
package maze

import (
	"go-hex-maze/pkg/hexgrid"
)

// Vertex is a pixel-space point.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathCell is the serialized form of one cell: its position, linear id,
// open direction indices and the reference vertex used by rendering.
type PathCell struct {
	ID        int     `json:"id"`
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	OpenPaths []int   `json:"openPaths"`
	Vertex    Vertex  `json:"vertex"`
}

// PathMap is the serialized maze: ordered cells, the full passage list
// and the grid dimensions. It is produced once per generation and never
// mutated afterwards.
type PathMap struct {
	Cells      []PathCell         `json:"cells"`
	Edges      []Edge             `json:"edges"`
	Dimensions hexgrid.Dimensions `json:"dimensions"`
}

// AssemblePathMap flattens a carved grid into a PathMap. For every cell
// each of the 6 direction slots is probed through the shared adjacency
// rule; a direction is open when a passage to that neighbor exists.
// Invariant: for every edge (a,b), a's open list holds the direction
// toward b and b's holds the opposite one.
func AssemblePathMap(grid *hexgrid.Grid, edges *EdgeSet) *PathMap {
	cells := make([]PathCell, 0, grid.Dims.CellCount())

	for _, row := range grid.Cells {
		for _, cell := range row {
			open := make([]int, 0, hexgrid.DirectionCount)
			for d := hexgrid.Direction(0); d < hexgrid.DirectionCount; d++ {
				dRow, dCol := d.Delta(cell.Row)
				neighbor := grid.CellAt(cell.Row+dRow, cell.Col+dCol)
				if neighbor == nil {
					continue
				}
				if edges.Contains(cell.ID, neighbor.ID) {
					open = append(open, int(d))
				}
			}
			vx, vy := grid.ReferenceVertex(cell)
			cells = append(cells, PathCell{
				ID:        cell.ID,
				Row:       cell.Row,
				Col:       cell.Col,
				X:         cell.X,
				Y:         cell.Y,
				OpenPaths: open,
				Vertex:    Vertex{X: vx, Y: vy},
			})
		}
	}

	return &PathMap{
		Cells:      cells,
		Edges:      edges.Edges(),
		Dimensions: grid.Dims,
	}
}
