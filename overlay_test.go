package main

import (
	"testing"
	"time"
)

func TestOverlayProgress(t *testing.T) {
	o := newOverlay("Headline", "Tagline", 1)

	o.Update(OverlayDelay)
	if p := o.Progress(); p != 0 {
		t.Fatalf("card visible before the delay: %v", p)
	}

	prev := 0.0
	for i := 0; i < 10; i++ {
		o.Update(OverlayFade / 10)
		p := o.Progress()
		if p < prev || p > 1 {
			t.Fatalf("progress went from %v to %v", prev, p)
		}
		prev = p
	}
	if prev != 1 {
		t.Fatalf("progress after the fade = %v, want 1", prev)
	}

	o.Update(time.Hour)
	if o.Progress() != 1 {
		t.Fatalf("progress must stay at 1")
	}

	o.Replay()
	if o.Progress() != 0 {
		t.Fatalf("replay did not hide the card")
	}
}

func TestOverlayCardSlides(t *testing.T) {
	o := newOverlay("Particle Network", "Move the pointer to pull the field.", 1)

	o.Update(OverlayDelay + time.Millisecond)
	_, startY, w, h := o.cardRect(1280, 720)
	o.Update(OverlayFade)
	x, endY, _, _ := o.cardRect(1280, 720)

	if startY <= endY || startY-endY > OverlaySlide {
		t.Fatalf("card moved from %v to %v", startY, endY)
	}
	if x+w/2 != 640 || endY+h/2 != 360 {
		t.Fatalf("card not centred: x=%v y=%v w=%v h=%v", x, endY, w, h)
	}
	if w < overlayMinWidth {
		t.Fatalf("card narrower than the minimum: %v", w)
	}
}

func TestOverlayShimmerRange(t *testing.T) {
	o := newOverlay("a", "b", 7)
	for i := 0; i < 200; i++ {
		o.Update(50 * time.Millisecond)
		if s := o.shimmer(); s < 0.5 || s > 1 {
			t.Fatalf("shimmer %v out of range at %v", s, o.elapsed)
		}
	}
}
