// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	MinHexWidth       = 30.0 // smallest allowed hex width in pixels
	MaxHexWidth       = 50.0 // largest allowed hex width in pixels
	MaxHexagonsPerRow = 25
	MinHexagonsPerRow = 9
	PresetPadding     = 1.0  // padding units in preset mode
	RowPitchFactor    = 0.75 // vertical spacing between rows as a fraction of hex height

	MaxOpenSides   = 4  // soft degree cap enforced by pruning
	MaxPruneSweeps = 64 // safety cap on prune iterations

	LargeComponentThreshold = 8
	SolveTimeout            = 30 * time.Second

	ScreenWidth  = 1200
	ScreenHeight = 900
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WallColor       = color.RGBA{240, 240, 240, 255}
	PassageColor    = color.RGBA{70, 100, 120, 220}
	SolvedPathColor = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	ComponentColors = []color.RGBA{
		{255, 50, 50, 120},  // Red
		{50, 255, 50, 120},  // Green
		{50, 100, 255, 120}, // Blue
		{180, 50, 230, 120}, // Purple
		{255, 215, 0, 120},  // Gold
		{0, 200, 200, 120},  // Cyan
	}
)
