package main

import "testing"

func TestCursorInputBaseline(t *testing.T) {
	in := newCursorInput()
	var calls [][2]float64
	in.AddPointerListener(func(x, y float64) { calls = append(calls, [2]float64{x, y}) })

	in.Poll(10, 20)
	if len(calls) != 0 {
		t.Fatalf("first sample reported as movement")
	}
	in.Poll(10, 20)
	if len(calls) != 0 {
		t.Fatalf("unchanged sample reported as movement")
	}
	in.Poll(11, 20)
	in.Poll(11, 25)
	if len(calls) != 2 || calls[1] != [2]float64{11, 25} {
		t.Fatalf("movements = %v", calls)
	}
}

func TestCursorInputRemove(t *testing.T) {
	in := newCursorInput()
	a, b := 0, 0
	removeA := in.AddPointerListener(func(x, y float64) { a++ })
	in.AddPointerListener(func(x, y float64) { b++ })

	in.Poll(0, 0)
	in.Poll(1, 1)
	removeA()
	in.Poll(2, 2)

	if a != 1 || b != 2 {
		t.Fatalf("a=%d b=%d, want 1 and 2", a, b)
	}
	if in.Listeners() != 1 {
		t.Fatalf("%d listeners left", in.Listeners())
	}
}
