// internal/maze/carver.go
package maze

import (
	"go-hex-maze/internal/config"
	"go-hex-maze/internal/utils"
	"go-hex-maze/pkg/hexgrid"
)

// Rand is the randomness the carver consumes. *utils.PRNG satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Categorical tables for how many passages a cell opens in the carve
// phase. Boundary and corner cells (≤4 neighbors) favor one passage;
// interior cells skew toward zero but can open up to three.
var (
	boundaryCarveTable = []utils.WeightedCount{
		{Count: 0, Weight: 1},
		{Count: 1, Weight: 2},
		{Count: 2, Weight: 1},
	}
	interiorCarveTable = []utils.WeightedCount{
		{Count: 0, Weight: 2},
		{Count: 1, Weight: 1},
		{Count: 2, Weight: 1},
		{Count: 3, Weight: 1},
	}
	removalTable = []utils.WeightedCount{
		{Count: 0, Weight: 1},
		{Count: 1, Weight: 1},
		{Count: 2, Weight: 1},
		{Count: 3, Weight: 1},
	}
)

// CarvePassages decides which adjacent cell pairs become passages. Phase
// one opens passages per cell from the categorical tables; phase two
// prunes until no cell keeps more than MaxOpenSides open sides. Isolated
// cells are valid output and later form trivial components.
func CarvePassages(grid *hexgrid.Grid, rng Rand) *EdgeSet {
	edges := NewEdgeSet()

	for _, row := range grid.Cells {
		for _, cell := range row {
			neighbors := cell.Neighbors()
			if len(neighbors) == 0 {
				continue
			}

			table := boundaryCarveTable
			if len(neighbors) > 4 {
				table = interiorCarveTable
			}
			count := utils.ChooseWeighted(rng, table)
			if count > len(neighbors) {
				count = len(neighbors)
			}

			// Distinct neighbors uniformly without replacement.
			order := make([]int, len(neighbors))
			for i := range order {
				order[i] = i
			}
			rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
			for _, idx := range order[:count] {
				edges.Add(cell.ID, neighbors[idx].ID)
			}
		}
	}

	pruneHighDegree(grid, edges, rng)
	return edges
}

// pruneHighDegree removes passages from cells exceeding MaxOpenSides.
// Removal counts include 0, so convergence is only probabilistic; the
// sweep cap with forced removal keeps the loop bounded without changing
// the long-run degree distribution (the cap is statistically unreachable).
func pruneHighDegree(grid *hexgrid.Grid, edges *EdgeSet, rng Rand) {
	deg := edges.Degrees()

	for sweep := 0; sweep < config.MaxPruneSweeps; sweep++ {
		hot := overloadedCells(grid, deg)
		if len(hot) == 0 {
			return
		}
		for _, cell := range hot {
			if deg[cell.ID] <= config.MaxOpenSides {
				continue // an earlier removal this sweep already fixed it
			}
			count := utils.ChooseWeighted(rng, removalTable)
			connected := connectedNeighbors(cell, edges)
			rng.Shuffle(len(connected), func(i, j int) {
				connected[i], connected[j] = connected[j], connected[i]
			})
			if count > len(connected) {
				count = len(connected)
			}
			for _, other := range connected[:count] {
				if edges.Remove(cell.ID, other) {
					deg[cell.ID]--
					deg[other]--
				}
			}
		}
	}

	// Sweep cap hit: force each remaining hot cell down to the limit.
	for _, cell := range overloadedCells(grid, deg) {
		connected := connectedNeighbors(cell, edges)
		rng.Shuffle(len(connected), func(i, j int) {
			connected[i], connected[j] = connected[j], connected[i]
		})
		for _, other := range connected {
			if deg[cell.ID] <= config.MaxOpenSides {
				break
			}
			if edges.Remove(cell.ID, other) {
				deg[cell.ID]--
				deg[other]--
			}
		}
	}
}

// overloadedCells returns cells above the degree cap in row-major order.
func overloadedCells(grid *hexgrid.Grid, deg map[int]int) []*hexgrid.Cell {
	var hot []*hexgrid.Cell
	for _, row := range grid.Cells {
		for _, cell := range row {
			if deg[cell.ID] > config.MaxOpenSides {
				hot = append(hot, cell)
			}
		}
	}
	return hot
}

// connectedNeighbors returns the ids of neighbors currently reachable
// through a passage, in direction order.
func connectedNeighbors(cell *hexgrid.Cell, edges *EdgeSet) []int {
	var connected []int
	for _, n := range cell.Neighbors() {
		if edges.Contains(cell.ID, n.ID) {
			connected = append(connected, n.ID)
		}
	}
	return connected
}
