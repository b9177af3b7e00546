package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// CourseColors holds every colour the course renderer needs.
type CourseColors struct {
	BackgroundColor color.RGBA
	ObstacleColor   color.RGBA
	WallColor       color.RGBA
	BallColor       color.RGBA
	GoalColor       color.RGBA
	NotGoalColor    color.RGBA // zero alpha hides the gate
	StrokeWidth     float32
}

// RGBA converts a colorful colour to an opaque color.RGBA.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HexRGBA parses "#rrggbb"; an empty string is fully transparent.
func HexRGBA(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return RGBA(c), nil
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
