package main

import "gonum.org/v1/gonum/spatial/r2"

// buildConnections scans every unordered pair and keeps those closer than
// ProximityThreshold. Quadratic in the particle count, which is why Step only
// calls it on a fraction of frames.
func buildConnections(particles []Particle) []Connection {
	var conns []Connection
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			d := r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos))
			if d < ProximityThreshold {
				conns = append(conns, Connection{A: i, B: j, Dist: d})
			}
		}
	}
	return conns
}

// connectionAlpha is the line opacity for a cached distance
func connectionAlpha(dist float64) float64 {
	return (1 - dist/ProximityThreshold) * 0.2
}
