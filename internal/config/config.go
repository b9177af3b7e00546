// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	WorldWidth    = 32.0 // world units
	WorldHeight   = 18.0
	PixelsPerUnit = ScreenWidth / WorldWidth

	BallRadius = 0.5

	WordTextY       = 40
	ScoreIndicatorX = ScreenWidth - 60
	ScoreIndicatorY = 40
	IndicatorRadius = 14.0
	KeyboardBottom  = ScreenHeight - 20
	KeySize         = 44
	KeyGap          = 6
	StrokeWidth     = 2.0
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	ObstacleColor      = color.RGBA{150, 70, 70, 255}
	WallColor          = color.RGBA{90, 90, 110, 255}
	BallColor          = color.RGBA{240, 240, 240, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	KeyColor           = color.RGBA{70, 100, 120, 220}
	KeyStrokeColor     = color.RGBA{240, 240, 240, 255}
	NormalStateColor   = color.RGBA{70, 130, 180, 220}
	SwitchedStateColor = color.RGBA{220, 60, 60, 220}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
)
