// cmd/mazeviewer/main.go
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hex-maze/internal/analyzer"
	"go-hex-maze/internal/config"
	"go-hex-maze/internal/maze"
	"go-hex-maze/pkg/render"
)

// Viewer is a read-only consumer of a path map. It never mutates cells
// or edges; it only draws what generation produced.
type Viewer struct {
	renderer *render.MazeRenderer
}

func (v *Viewer) Update() error {
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	input := flag.String("input", "", "path map JSON file; empty generates a fresh maze")
	seed := flag.Int64("seed", 0, "random seed when generating, 0 for time-based")
	preset := flag.Bool("preset", false, "use explicit rows/cols when generating")
	rows := flag.Int("rows", 12, "row count (preset mode)")
	cols := flag.Int("cols", 16, "column count (preset mode)")
	flag.Parse()

	var pm *maze.PathMap
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			log.Fatal(err)
		}
		pm = &maze.PathMap{}
		if err := json.Unmarshal(data, pm); err != nil {
			log.Fatal(err)
		}
	} else {
		var err error
		pm, err = maze.Generate(maze.Options{
			UsePreset: *preset,
			Rows:      *rows,
			Cols:      *cols,
			Width:     config.ScreenWidth,
			Height:    config.ScreenHeight,
			Seed:      *seed,
		}, nil)
		if err != nil {
			log.Fatal(err)
		}
	}

	components := analyzer.Analyze(pm, nil)

	colors := render.MazeColors{
		Background:  config.BackgroundColor,
		Wall:        config.WallColor,
		Passage:     config.PassageColor,
		SolvedPath:  config.SolvedPathColor,
		Text:        config.TextLightColor,
		Components:  config.ComponentColors,
		StrokeWidth: 2,
	}
	viewer := &Viewer{
		renderer: render.NewMazeRenderer(pm, components, colors, config.ScreenWidth, config.ScreenHeight),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hexagonal Maze")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
