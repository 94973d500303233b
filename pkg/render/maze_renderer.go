// pkg/render/maze_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-hex-maze/internal/analyzer"
	"go-hex-maze/internal/maze"
	"go-hex-maze/pkg/hexgrid"
)

// MazeRenderer draws a path map read-only: component-tinted hex fills,
// walls for closed direction slots, passage lines and solved paths. The
// static maze is prerendered once into an offscreen image.
type MazeRenderer struct {
	pm         *maze.PathMap
	components []*analyzer.Component
	colors     MazeColors

	radius   float64
	cellByID map[int]maze.PathCell
	compByID map[int]int // linear id -> component index

	fillImg  *ebiten.Image
	fontFace font.Face
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image
}

// NewMazeRenderer prepares a renderer for one generated maze. Components
// may be nil when no connectivity analysis was run.
func NewMazeRenderer(pm *maze.PathMap, components []*analyzer.Component, colors MazeColors, screenWidth, screenHeight int) *MazeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	cellByID := make(map[int]maze.PathCell, len(pm.Cells))
	for _, cell := range pm.Cells {
		cellByID[cell.ID] = cell
	}
	compByID := make(map[int]int)
	for i, comp := range components {
		for _, cell := range comp.Cells {
			compByID[cell.ID] = i
		}
	}

	r := &MazeRenderer{
		pm:         pm,
		components: components,
		colors:     colors,
		radius:     pm.Dimensions.HexHeight / 2,
		cellByID:   cellByID,
		compByID:   compByID,
		fillImg:    fillImg,
		fontFace:   basicfont.Face7x13,
		fillVs:     make([]ebiten.Vertex, 0, 18),
		fillIs:     make([]uint16, 0, 18),
		mapImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderMapImage()
	return r
}

// renderMapImage draws the static maze once at construction.
func (r *MazeRenderer) renderMapImage() {
	r.mapImage.Fill(r.colors.Background)

	for _, cell := range r.pm.Cells {
		r.drawCellFill(r.mapImage, cell)
	}
	for _, edge := range r.pm.Edges {
		r.drawPassage(r.mapImage, edge)
	}
	for _, cell := range r.pm.Cells {
		r.drawWalls(r.mapImage, cell)
	}
}

// Draw blits the prerendered maze and overlays any solved paths.
func (r *MazeRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)

	for _, comp := range r.components {
		if comp.Path == nil {
			continue
		}
		r.drawSolvedPath(screen, comp.Path)
	}
}

func (r *MazeRenderer) drawCellFill(target *ebiten.Image, cell maze.PathCell) {
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := cell.X + r.radius*math.Cos(angle)
		py := cell.Y + r.radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()

	fillColor := r.colors.Passage
	if idx, ok := r.compByID[cell.ID]; ok && len(r.colors.Components) > 0 {
		fillColor = r.colors.Components[idx%len(r.colors.Components)]
	}

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	label := fmt.Sprintf("%d", cell.ID)
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(cell.X)-textWidth/2, int(cell.Y)+textHeight/2, r.colors.Text)
}

// drawWalls strokes the hex sides whose direction slot is closed.
func (r *MazeRenderer) drawWalls(target *ebiten.Image, cell maze.PathCell) {
	open := make(map[int]bool, len(cell.OpenPaths))
	for _, d := range cell.OpenPaths {
		open[d] = true
	}

	for d := 0; d < hexgrid.DirectionCount; d++ {
		if open[d] {
			continue
		}
		// Side azimuth: E sits at 0°, the slots step 60° apart; the wall
		// connects the corners 30° either side of the azimuth.
		azimuth := math.Pi / 3 * float64((d+5)%6)
		a1 := azimuth - math.Pi/6
		a2 := azimuth + math.Pi/6
		x1 := cell.X + r.radius*math.Cos(a1)
		y1 := cell.Y + r.radius*math.Sin(a1)
		x2 := cell.X + r.radius*math.Cos(a2)
		y2 := cell.Y + r.radius*math.Sin(a2)
		vector.StrokeLine(target, float32(x1), float32(y1), float32(x2), float32(y2),
			r.colors.StrokeWidth, r.colors.Wall, true)
	}
}

func (r *MazeRenderer) drawPassage(target *ebiten.Image, edge maze.Edge) {
	from, okFrom := r.cellByID[edge.From]
	to, okTo := r.cellByID[edge.To]
	if !okFrom || !okTo {
		return
	}
	vector.StrokeLine(target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		1, DarkenColor(r.colors.Wall), true)
}

func (r *MazeRenderer) drawSolvedPath(target *ebiten.Image, ids []string) {
	var prev *maze.PathCell
	for _, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		cell, ok := r.cellByID[id]
		if !ok {
			continue
		}
		if prev != nil {
			vector.StrokeLine(target, float32(prev.X), float32(prev.Y), float32(cell.X), float32(cell.Y),
				r.colors.StrokeWidth*2, r.colors.SolvedPath, true)
		}
		c := cell
		prev = &c
	}
}
