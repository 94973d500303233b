// internal/maze/generator.go
package maze

import (
	"fmt"

	"go.uber.org/zap"

	"go-hex-maze/internal/utils"
	"go-hex-maze/pkg/hexgrid"
)

// Options selects between the two generation modes. With UsePreset set,
// Rows and Cols are taken directly; otherwise the grid geometry is
// derived from the container Width and Height in pixels.
type Options struct {
	UsePreset bool
	Rows      int
	Cols      int
	Width     float64
	Height    float64
	Seed      int64 // 0 means time-seeded
}

// Generate runs the whole pipeline: grid building, passage carving and
// path map assembly. The returned PathMap is the only artifact exposed
// to rendering and solving.
func Generate(opts Options, logger *zap.Logger) (*PathMap, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := utils.NewPRNG(opts.Seed)

	var (
		grid *hexgrid.Grid
		err  error
	)
	if opts.UsePreset {
		grid, err = hexgrid.NewPresetGrid(opts.Rows, opts.Cols)
	} else {
		grid, err = hexgrid.NewGridFromSize(opts.Width, opts.Height, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	edges := CarvePassages(grid, rng)
	pm := AssemblePathMap(grid, edges)

	logger.Debug("maze generated",
		zap.Int("rows", grid.Dims.Rows),
		zap.Int("cols", grid.Dims.Cols),
		zap.Float64("hexWidth", grid.Dims.HexWidth),
		zap.Int("edges", edges.Len()),
	)
	return pm, nil
}
