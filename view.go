package main

import "log"

// View owns a mounted particle network and its frame chain.
// Mount starts the chain, Unmount stops it and detaches the pointer listener.
type View struct {
	sched   FrameScheduler
	input   PointerSource
	surface func() Surface // Returns nil while no surface is attached
	rng     randSource
	logger  *log.Logger

	sim           *Simulation
	frame         FrameID
	removePointer func()
	mounted       bool
}

// NewView creates an unmounted view
func NewView(sched FrameScheduler, input PointerSource, surface func() Surface, rng randSource, logger *log.Logger) *View {
	return &View{
		sched:   sched,
		input:   input,
		surface: surface,
		rng:     rng,
		logger:  logger,
	}
}

// Mount spawns a fresh network, attaches the pointer listener and requests
// the first frame. Pointer state starts over on every mount.
func (v *View) Mount(width, height int) {
	if v.mounted {
		return
	}
	v.sim = NewSimulation(float64(width), float64(height), v.rng)
	v.removePointer = v.input.AddPointerListener(v.onPointer)
	v.mounted = true
	v.logger.Printf("view mounted: %dx%d, %d particles, %d connections",
		width, height, len(v.sim.Particles), len(v.sim.Connections))
	v.schedule()
}

// Resize reinitialises the network for the new viewport and restarts a
// stalled frame chain
func (v *View) Resize(width, height int) {
	if !v.mounted {
		return
	}
	v.sim.Reset(float64(width), float64(height))
	v.logger.Printf("view resized: %dx%d, %d particles", width, height, len(v.sim.Particles))
	if v.frame == 0 {
		v.schedule()
	}
}

// Unmount cancels the pending frame and removes the pointer listener.
// No frame runs after Unmount returns.
func (v *View) Unmount() {
	if !v.mounted {
		return
	}
	if v.frame != 0 {
		v.sched.CancelFrame(v.frame)
		v.frame = 0
	}
	if v.removePointer != nil {
		v.removePointer()
		v.removePointer = nil
	}
	v.mounted = false
	v.logger.Printf("view unmounted after %d frames", v.sim.Frames)
}

// Mounted reports whether the view is live
func (v *View) Mounted() bool {
	return v.mounted
}

// Running reports whether a frame is queued
func (v *View) Running() bool {
	return v.frame != 0
}

// Simulation returns the current network state, nil before the first mount
func (v *View) Simulation() *Simulation {
	return v.sim
}

func (v *View) schedule() {
	v.frame = v.sched.RequestFrame(v.onFrame)
}

func (v *View) onPointer(x, y float64) {
	v.sim.MovePointer(x, y)
}

// onFrame is the per-repaint callback. Without a surface it returns without
// rescheduling; the chain resumes on the next resize or mount.
func (v *View) onFrame() {
	v.frame = 0
	if !v.mounted {
		return
	}
	dst := v.surface()
	if dst == nil {
		return
	}
	v.sim.Step()
	Render(v.sim, dst)
	v.schedule()
}
