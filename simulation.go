package main

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Simulation constants
const (
	AreaPerParticle    = 8000.0 // Viewport area (px²) per spawned particle
	MaxInitialSpeed    = 0.15   // Initial velocity components are uniform in [-MaxInitialSpeed, MaxInitialSpeed]
	MinRadius          = 1.0
	MaxRadius          = 3.5
	ProximityThreshold = 150.0 // Pairs closer than this are connected
	MagneticRadius     = 200.0 // Pointer attraction applies inside this distance
	MagneticStrength   = 0.9   // Force at distance zero
	ForceScale         = 0.2   // Fraction of the force applied to velocity per frame
	MaxSpeed           = 3.0
	ReturnStrength     = 0.01 // Pull towards origin outside the magnetic radius
	ReturnDamping      = 0.98
	RebuildChance      = 0.05 // Per-frame probability of a connection rebuild
)

// randSource is the random stream used for spawning and rebuild rolls.
// *rand.Rand satisfies it.
type randSource interface {
	Float64() float64
}

// Particle struct: Represents a single point of the network
type Particle struct {
	Pos    r2.Vec // Position (screen space)
	Vel    r2.Vec // Velocity per frame
	Origin r2.Vec // Spawn position, used as a return anchor
	Radius float64
	Color  color.NRGBA
}

// Connection links two particles that were within ProximityThreshold
// at the last rebuild. Dist is not refreshed between rebuilds.
type Connection struct {
	A, B int // Particle indices, A < B
	Dist float64
}

// Pointer is the last known cursor position
type Pointer struct {
	Pos   r2.Vec
	Moved bool // Set once the first movement arrives
}

// Simulation struct: Holds the network state.
// Step is the only writer of Particles and Connections; MovePointer is the
// only writer of Pointer.
type Simulation struct {
	Width, Height float64
	Particles     []Particle
	Connections   []Connection
	Pointer       Pointer
	Frames        uint64 // Steps since the last reset
	Rebuilds      uint64 // Connection rebuilds since the last reset
	rng           randSource
}

// NewSimulation creates a simulation sized to the viewport
func NewSimulation(width, height float64, rng randSource) *Simulation {
	s := &Simulation{rng: rng}
	s.Reset(width, height)
	return s
}

// Reset discards every particle and spawns a fresh field for the new size.
// The pointer record is kept.
func (s *Simulation) Reset(width, height float64) {
	s.Width = math.Max(width, 0)
	s.Height = math.Max(height, 0)
	s.Particles = newField(s.Width, s.Height, s.rng)
	s.Frames = 0
	s.Rebuilds = 0
	s.RebuildConnections()
}

// MovePointer records a pointer movement
func (s *Simulation) MovePointer(x, y float64) {
	s.Pointer.Pos = r2.Vec{X: x, Y: y}
	s.Pointer.Moved = true
}

// RebuildConnections recomputes the proximity graph from current positions
func (s *Simulation) RebuildConnections() {
	s.Connections = buildConnections(s.Particles)
	s.Rebuilds++
}

// Step advances the network by one frame
func (s *Simulation) Step() {
	for i := range s.Particles {
		s.advance(&s.Particles[i])
	}

	if s.rng.Float64() < RebuildChance {
		s.RebuildConnections()
	}
	s.Frames++
}

// advance moves a single particle, reflects it off the edges and applies the
// pointer field. It only reads the particle itself and the pointer.
func (s *Simulation) advance(p *Particle) {
	p.Pos = r2.Add(p.Pos, p.Vel)

	// Reflection is checked after the move, so the particle may sit just
	// outside the edge for one frame.
	if p.Pos.X < 0 || p.Pos.X > s.Width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > s.Height {
		p.Vel.Y = -p.Vel.Y
	}

	if !s.Pointer.Moved {
		return
	}

	delta := r2.Sub(s.Pointer.Pos, p.Pos)
	d := r2.Norm(delta)
	if d < MagneticRadius {
		force := MagneticStrength * (1 - d/MagneticRadius)
		angle := math.Atan2(delta.Y, delta.X)
		p.Vel.X += force * ForceScale * math.Cos(angle)
		p.Vel.Y += force * ForceScale * math.Sin(angle)
		p.Vel = clampSpeed(p.Vel, MaxSpeed)
		return
	}

	p.Vel = r2.Scale(ReturnDamping, r2.Add(p.Vel, r2.Scale(ReturnStrength, r2.Sub(p.Origin, p.Pos))))
}

// clampSpeed rescales v uniformly so its length does not exceed max
func clampSpeed(v r2.Vec, max float64) r2.Vec {
	speed := r2.Norm(v)
	if speed <= max {
		return v
	}
	return r2.Scale(max/speed, v)
}
