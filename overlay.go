package main

import (
	"image/color"
	"math"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay card timing and layout
const (
	OverlayDelay    = 800 * time.Millisecond
	OverlayFade     = 700 * time.Millisecond
	OverlaySlide    = 24.0 // px travelled upwards while fading in
	overlayPadding  = 24
	overlayLineGap  = 22
	overlayMinWidth = 320
	shimmerSpeed    = 0.6 // noise units per second
)

var (
	cardColor   = color.RGBA{R: 16, G: 14, B: 36, A: 200}
	borderColor = color.RGBA{R: 150, G: 120, B: 255, A: 255}
	textColor   = color.RGBA{R: 235, G: 232, B: 255, A: 255}
	mutedColor  = color.RGBA{R: 170, G: 165, B: 205, A: 255}
)

// Overlay is the text card drawn above the network. It does not touch
// particle state.
type Overlay struct {
	headline string
	tagline  string
	elapsed  time.Duration
	noise    *perlin.Perlin
}

func newOverlay(headline, tagline string, seed int64) *Overlay {
	return &Overlay{
		headline: headline,
		tagline:  tagline,
		noise:    perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Update advances the entrance animation
func (o *Overlay) Update(dt time.Duration) {
	o.elapsed += dt
}

// Replay restarts the delayed entrance
func (o *Overlay) Replay() {
	o.elapsed = 0
}

// Progress is the eased entrance progress in [0,1]. It stays at zero until
// OverlayDelay has passed.
func (o *Overlay) Progress() float64 {
	t := o.elapsed - OverlayDelay
	if t <= 0 {
		return 0
	}
	if t >= OverlayFade {
		return 1
	}
	x := float64(t) / float64(OverlayFade)
	return 1 - math.Pow(1-x, 3)
}

// shimmer is the border brightness in [0.5,1]
func (o *Overlay) shimmer() float64 {
	n := o.noise.Noise1D(o.elapsed.Seconds() * shimmerSpeed)
	return 0.75 + 0.25*math.Max(-1, math.Min(1, n*2))
}

// cardRect returns the card bounds centred in a width×height screen
func (o *Overlay) cardRect(width, height int) (x, y, w, h float32) {
	face := basicfont.Face7x13
	longest := len(o.headline)
	if len(o.tagline) > longest {
		longest = len(o.tagline)
	}
	w = float32(max(longest*face.Advance+2*overlayPadding, overlayMinWidth))
	h = float32(2*overlayPadding + overlayLineGap + face.Height)
	x = (float32(width) - w) / 2
	y = (float32(height)-h)/2 + float32(OverlaySlide*(1-o.Progress()))
	return x, y, w, h
}

// Draw paints the card once its delay has elapsed
func (o *Overlay) Draw(screen *ebiten.Image) {
	p := o.Progress()
	if p == 0 {
		return
	}
	b := screen.Bounds()
	x, y, w, h := o.cardRect(b.Dx(), b.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, fade(cardColor, p), true)
	vector.StrokeRect(screen, x, y, w, h, 1.5, fade(borderColor, p*o.shimmer()), true)

	face := basicfont.Face7x13
	tx := int(x) + overlayPadding
	ty := int(y) + overlayPadding + face.Ascent
	text.Draw(screen, o.headline, face, tx, ty, fade(textColor, p))
	text.Draw(screen, o.tagline, face, tx, ty+overlayLineGap, fade(mutedColor, p))
}

// fade scales the colour's alpha by a
func fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(float64(c.A) / 255 * a)}
}
