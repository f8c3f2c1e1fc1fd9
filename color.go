package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Particle colour band (blue to purple)
const (
	HueMin        = 220.0
	HueMax        = 280.0
	SaturationMin = 0.70
	SaturationMax = 1.00
	LightnessMin  = 0.50
	LightnessMax  = 0.70
	ParticleAlpha = 0.8
)

// randomColor picks a hue-biased colour from the particle band
func randomColor(rng randSource) color.NRGBA {
	h := uniform(rng, HueMin, HueMax)
	s := uniform(rng, SaturationMin, SaturationMax)
	l := uniform(rng, LightnessMin, LightnessMax)
	return hslColor(h, s, l, ParticleAlpha)
}

// hslColor converts HSL (hue 0-360, s/l 0-1) with alpha 0-1 to a non-premultiplied colour
func hslColor(h, s, l, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

// alphaByte maps alpha in [0,1] to 0-255, clamping out-of-range input
func alphaByte(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}
