package main

import (
	"image/color"
	"io"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// cycleRand returns its values in order, wrapping around
type cycleRand struct {
	vals []float64
	i    int
}

func (r *cycleRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// simWith builds a simulation around hand-placed particles
func simWith(width, height float64, rng randSource, particles ...Particle) *Simulation {
	s := &Simulation{Width: width, Height: height, Particles: particles, rng: rng}
	s.RebuildConnections()
	return s
}

func still(x, y float64) Particle {
	p := r2.Vec{X: x, Y: y}
	return Particle{Pos: p, Origin: p, Radius: 2}
}

func moving(x, y, vx, vy float64) Particle {
	p := still(x, y)
	p.Vel = r2.Vec{X: vx, Y: vy}
	return p
}

// bruteForce lists every pair under the threshold
func bruteForce(particles []Particle) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for i := range particles {
		for j := range particles {
			if i >= j {
				continue
			}
			if r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos)) < ProximityThreshold {
				out[[2]int{i, j}] = true
			}
		}
	}
	return out
}

type drawOp struct {
	kind           string
	x0, y0, x1, y1 float32
	size           float32
	col            color.NRGBA
}

// recordingSurface stores every draw call
type recordingSurface struct {
	w, h int
	ops  []drawOp
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Fill(c color.Color) {
	s.ops = append(s.ops, drawOp{kind: "fill", col: toNRGBA(c)})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	s.ops = append(s.ops, drawOp{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, size: width, col: toNRGBA(c)})
}

func (s *recordingSurface) FillCircle(cx, cy, r float32, c color.Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", x0: cx, y0: cy, size: r, col: toNRGBA(c)})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
