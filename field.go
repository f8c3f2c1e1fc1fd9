package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// particleCount returns how many particles fit a viewport of the given size
func particleCount(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / AreaPerParticle))
}

// newField spawns a full particle set for the viewport
func newField(width, height float64, rng randSource) []Particle {
	n := particleCount(width, height)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = newParticle(width, height, rng)
	}
	return particles
}

// newParticle draws a particle with a random position, drift, size and colour.
// Origin is pinned to the spawn position.
func newParticle(width, height float64, rng randSource) Particle {
	pos := r2.Vec{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	}
	return Particle{
		Pos:    pos,
		Origin: pos,
		Vel: r2.Vec{
			X: uniform(rng, -MaxInitialSpeed, MaxInitialSpeed),
			Y: uniform(rng, -MaxInitialSpeed, MaxInitialSpeed),
		},
		Radius: uniform(rng, MinRadius, MaxRadius),
		Color:  randomColor(rng),
	}
}

// uniform returns a value in [lo, hi)
func uniform(rng randSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
