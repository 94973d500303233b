// internal/analyzer/analyzer.go
package analyzer

import (
	"strconv"

	"go.uber.org/zap"

	"go-hex-maze/internal/config"
	"go-hex-maze/internal/maze"
	"go-hex-maze/pkg/hexgrid"
)

// CellInfo is a component member: its position and the neighbor ids it is
// connected to through adjacency-validated passages. Row/col are retained
// for diagnostics.
type CellInfo struct {
	ID        int
	Row       int
	Col       int
	X         float64
	Y         float64
	Neighbors []int
}

// Bounds is the axis-aligned bounding box over member cell centers.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Component is a maximal set of cells reachable from one another via
// valid hex adjacency. Path and PathLength are filled in by the remote
// solve coordinator for delegated components.
type Component struct {
	Cells  []CellInfo
	Size   int
	Bounds Bounds

	Path       []string
	PathLength int
}

// IsLarge reports whether the component is delegated to the remote solver.
func (c *Component) IsLarge() bool {
	return c.Size >= config.LargeComponentThreshold
}

// AdjacencyList builds the simplified neighbors-only adjacency list of
// the component's induced subgraph, keyed by decimal-string linear ids.
func (c *Component) AdjacencyList() map[string][]string {
	members := make(map[int]bool, len(c.Cells))
	for _, cell := range c.Cells {
		members[cell.ID] = true
	}

	adjacency := make(map[string][]string, len(c.Cells))
	for _, cell := range c.Cells {
		neighbors := make([]string, 0, len(cell.Neighbors))
		for _, id := range cell.Neighbors {
			if members[id] {
				neighbors = append(neighbors, strconv.Itoa(id))
			}
		}
		adjacency[strconv.Itoa(cell.ID)] = neighbors
	}
	return adjacency
}

type node struct {
	id        int
	row, col  int
	x, y      float64
	neighbors []int // edge-derived, validated only at traversal time
}

// Analyze rebuilds an undirected graph from a path map and partitions it
// into connected components. Even though the path map's edge list is
// assumed internally consistent, every edge is independently re-validated
// against the row-parity adjacency rule before it is traversed; a
// malformed edge is logged and never crossed.
func Analyze(pm *maze.PathMap, logger *zap.Logger) []*Component {
	if logger == nil {
		logger = zap.NewNop()
	}

	nodes := make(map[int]*node, len(pm.Cells))
	order := make([]int, 0, len(pm.Cells))
	for _, cell := range pm.Cells {
		nodes[cell.ID] = &node{
			id:  cell.ID,
			row: cell.Row,
			col: cell.Col,
			x:   cell.X,
			y:   cell.Y,
		}
		order = append(order, cell.ID)
	}

	for _, edge := range pm.Edges {
		from, okFrom := nodes[edge.From]
		to, okTo := nodes[edge.To]
		if !okFrom || !okTo {
			logger.Warn("edge references unknown cell, skipping",
				zap.Int("from", edge.From), zap.Int("to", edge.To))
			continue
		}
		from.neighbors = append(from.neighbors, to.id)
		to.neighbors = append(to.neighbors, from.id)
	}

	visited := make(map[int]bool, len(nodes))
	var components []*Component

	// Iterative DFS with an explicit stack; recursion would risk stack
	// depth on large grids.
	for _, seed := range order {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		stack := []int{seed}
		var members []*node

		for len(stack) > 0 {
			current := nodes[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			members = append(members, current)

			for _, id := range current.neighbors {
				if visited[id] {
					continue
				}
				next := nodes[id]
				if !hexgrid.AreNeighbors(current.row, current.col, next.row, next.col) {
					logger.Warn("edge endpoints are not hex neighbors, not traversing",
						zap.Int("from", current.id), zap.Int("to", next.id))
					continue
				}
				visited[id] = true
				stack = append(stack, id)
			}
		}

		components = append(components, buildComponent(members))
	}

	return components
}

func buildComponent(members []*node) *Component {
	comp := &Component{
		Cells: make([]CellInfo, 0, len(members)),
		Size:  len(members),
	}
	byID := make(map[int]*node, len(members))
	for _, n := range members {
		byID[n.id] = n
	}

	first := true
	for _, n := range members {
		// Neighbor lists restricted to adjacency-valid edges.
		valid := make([]int, 0, len(n.neighbors))
		for _, id := range n.neighbors {
			// A neighbor in the list shares an edge; revalidate the hex
			// adjacency the same way the traversal did.
			other := byID[id]
			if other != nil && hexgrid.AreNeighbors(n.row, n.col, other.row, other.col) {
				valid = append(valid, id)
			}
		}
		comp.Cells = append(comp.Cells, CellInfo{
			ID:        n.id,
			Row:       n.row,
			Col:       n.col,
			X:         n.x,
			Y:         n.y,
			Neighbors: valid,
		})

		if first {
			comp.Bounds = Bounds{MinX: n.x, MinY: n.y, MaxX: n.x, MaxY: n.y}
			first = false
			continue
		}
		if n.x < comp.Bounds.MinX {
			comp.Bounds.MinX = n.x
		}
		if n.x > comp.Bounds.MaxX {
			comp.Bounds.MaxX = n.x
		}
		if n.y < comp.Bounds.MinY {
			comp.Bounds.MinY = n.y
		}
		if n.y > comp.Bounds.MaxY {
			comp.Bounds.MaxY = n.y
		}
	}

	return comp
}

// LargeComponents filters the components that meet the delegation
// threshold, preserving analyzer order.
func LargeComponents(components []*Component) []*Component {
	var large []*Component
	for _, comp := range components {
		if comp.IsLarge() {
			large = append(large, comp)
		}
	}
	return large
}
