// pkg/hexgrid/dimensions.go
package hexgrid

// Padding is the offset that centers the grid inside its container.
type Padding struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Dimensions describes the geometry of a generated grid. It travels with
// the path map and with remote solve requests.
type Dimensions struct {
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	HexWidth  float64 `json:"hexWidth"`
	HexHeight float64 `json:"hexHeight"`
	Padding   Padding `json:"padding"`
}

// CellCount returns the number of cells in the grid.
func (d Dimensions) CellCount() int {
	return d.Rows * d.Cols
}
