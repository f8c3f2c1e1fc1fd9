package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the view to Ebitengine. Update acts as the host event loop
// (keys, pointer, viewport changes); Draw is the repaint that drives the
// frame scheduler.
type Game struct {
	view    *View
	sched   *tickScheduler
	input   *cursorInput
	overlay *Overlay
	screen  Surface // Only set while Draw runs

	width, height int  // Latest layout size
	sized         bool // Layout has reported a size
	viewW, viewH  int  // Size the view was last initialised with
}

// newGame wires the view, scheduler, pointer input and overlay together
func newGame(cfg *Config, rng randSource, logger *log.Logger) *Game {
	g := &Game{
		sched:   newTickScheduler(),
		input:   newCursorInput(),
		overlay: newOverlay(cfg.Headline, cfg.Tagline, cfg.Seed),
	}
	g.view = NewView(g.sched, g.input, g.currentSurface, rng, logger)
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.view.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.remount()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.overlay.Replay()
	}

	g.syncViewport()
	g.input.Poll(ebiten.CursorPosition())
	g.overlay.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.paint(newScreenSurface(screen))
	g.overlay.Draw(screen)
}

// Layout follows the window size so the network fills it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.sized = true
	return outsideWidth, outsideHeight
}

// syncViewport mounts the view once a size is known and reinitialises it
// when the size changes
func (g *Game) syncViewport() {
	if !g.sized {
		return
	}
	if !g.view.Mounted() {
		g.mount()
		return
	}
	if g.width != g.viewW || g.height != g.viewH {
		g.viewW, g.viewH = g.width, g.height
		g.view.Resize(g.width, g.height)
	}
}

// mount starts the view and the card's entrance delay together
func (g *Game) mount() {
	g.viewW, g.viewH = g.width, g.height
	g.view.Mount(g.width, g.height)
	g.overlay.Replay()
}

// remount tears the view down and mounts a fresh one
func (g *Game) remount() {
	g.view.Unmount()
	g.overlay.Replay()
	if g.sized {
		g.mount()
	}
}

// paint exposes dst to queued frame callbacks for the duration of one tick
func (g *Game) paint(dst Surface) {
	g.screen = dst
	g.sched.Tick()
	g.screen = nil
}

func (g *Game) currentSurface() Surface {
	return g.screen
}
