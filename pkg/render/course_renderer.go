package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-typeball/internal/app"
	"go-typeball/internal/defs"
)

// CourseRenderer draws the arena. Obstacles and walls only change between
// rounds, so they are baked into courseImage and redrawn on course change.
type CourseRenderer struct {
	scale       float64
	colors      *CourseColors
	fillImg     *ebiten.Image
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	courseImage *ebiten.Image
	courseID    string
}

// NewCourseRenderer draws a world scaled by pixelsPerUnit onto a screen of the given size.
func NewCourseRenderer(pixelsPerUnit float64, screenWidth, screenHeight int, colors *CourseColors) *CourseRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &CourseRenderer{
		scale:       pixelsPerUnit,
		colors:      colors,
		fillImg:     fillImg,
		fillVs:      make([]ebiten.Vertex, 0, 8),
		fillIs:      make([]uint16, 0, 8),
		strokeVs:    make([]ebiten.Vertex, 0, 32),
		strokeIs:    make([]uint16, 0, 32),
		courseImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderCourseImage bakes the background, walls and obstacles.
func (r *CourseRenderer) RenderCourseImage(scene app.Scene) {
	r.courseImage.Fill(r.colors.BackgroundColor)
	for _, o := range scene.Obstacles {
		fill := r.colors.ObstacleColor
		if o.Wall {
			fill = r.colors.WallColor
		}
		r.drawRect(r.courseImage, o.Bounds, fill)
		r.strokeRect(r.courseImage, o.Bounds, DarkenColor(fill))
	}
}

// Draw renders one frame of the arena.
func (r *CourseRenderer) Draw(screen *ebiten.Image, courseID string, scene app.Scene) {
	if courseID != r.courseID {
		r.RenderCourseImage(scene)
		r.courseID = courseID
	}
	screen.DrawImage(r.courseImage, nil)

	for _, g := range scene.Gates {
		c := r.colors.NotGoalColor
		if g.IsGoal {
			c = r.colors.GoalColor
		}
		if c.A == 0 {
			continue
		}
		r.drawRect(screen, g.Bounds, c)
	}

	cx, cy := float32(scene.Ball.X*r.scale), float32(scene.Ball.Y*r.scale)
	radius := float32(scene.Radius * r.scale)
	vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.BallColor, true)
	if scene.Dragging {
		vector.StrokeCircle(screen, cx, cy, radius+r.colors.StrokeWidth*2, r.colors.StrokeWidth, r.colors.GoalColor, true)
	}
}

// Invalidate forces the course image to be rebuilt on the next Draw.
func (r *CourseRenderer) Invalidate() { r.courseID = "" }

func (r *CourseRenderer) rectPath(b defs.Rect) *vector.Path {
	x0, y0 := float32(b.X*r.scale), float32(b.Y*r.scale)
	x1, y1 := float32((b.X+b.W)*r.scale), float32((b.Y+b.H)*r.scale)
	path := &vector.Path{}
	path.MoveTo(x0, y0)
	path.LineTo(x1, y0)
	path.LineTo(x1, y1)
	path.LineTo(x0, y1)
	path.Close()
	return path
}

func (r *CourseRenderer) drawRect(target *ebiten.Image, b defs.Rect, fill color.RGBA) {
	r.fillVs, r.fillIs = r.rectPath(b).AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *CourseRenderer) strokeRect(target *ebiten.Image, b defs.Rect, stroke color.RGBA) {
	r.strokeVs, r.strokeIs = r.rectPath(b).AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paint(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
