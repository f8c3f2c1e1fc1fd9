package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 18, A: 255}
	connectionColor = color.RGBA{R: 139, G: 120, B: 240, A: 255}
)

const connectionWidth = 1.0

// Surface is the immediate-mode raster the network is painted on
type Surface interface {
	Size() (width, height int)
	Fill(c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
}

// Render paints the background, the connections and then the particles.
// Line opacity uses the distance cached at the last rebuild. Render does not
// modify the simulation.
func Render(s *Simulation, dst Surface) {
	dst.Fill(backgroundColor)

	for _, c := range s.Connections {
		a, b := s.Particles[c.A].Pos, s.Particles[c.B].Pos
		col := withAlpha(connectionColor, connectionAlpha(c.Dist))
		dst.StrokeLine(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), connectionWidth, col)
	}

	for _, p := range s.Particles {
		dst.FillCircle(float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color)
	}
}

// withAlpha returns c with its alpha replaced
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(alpha)}
}

// screenSurface draws onto an ebiten image
type screenSurface struct {
	img *ebiten.Image
}

func newScreenSurface(img *ebiten.Image) *screenSurface {
	return &screenSurface{img: img}
}

func (s *screenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, width, c, true)
}

func (s *screenSurface) FillCircle(cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(s.img, cx, cy, r, c, true)
}
