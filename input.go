package main

// PointerSource delivers pointer movements. The returned func removes the listener.
type PointerSource interface {
	AddPointerListener(fn func(x, y float64)) (remove func())
}

// cursorInput turns polled cursor samples into movement events.
// The first sample is a baseline, not a movement.
type cursorInput struct {
	listeners map[int]func(x, y float64)
	nextID    int
	lastX     int
	lastY     int
	primed    bool
}

func newCursorInput() *cursorInput {
	return &cursorInput{listeners: make(map[int]func(x, y float64))}
}

func (c *cursorInput) AddPointerListener(fn func(x, y float64)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// Listeners returns the number of registered listeners
func (c *cursorInput) Listeners() int {
	return len(c.listeners)
}

// Poll feeds the current cursor position and notifies listeners if it moved
func (c *cursorInput) Poll(x, y int) {
	if !c.primed {
		c.lastX, c.lastY, c.primed = x, y, true
		return
	}
	if x == c.lastX && y == c.lastY {
		return
	}
	c.lastX, c.lastY = x, y
	for _, fn := range c.listeners {
		fn(float64(x), float64(y))
	}
}
