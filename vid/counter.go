package vid

// counters tracks the pixel beam position from the sync bus. x counts active
// pixels while data-enable is high, y advances on the data-enable falling
// edge, and the vertical sync pulse rewinds both to the frame origin.
type counters struct {
	x, y   int
	prevDE bool
}

func (c *counters) step(bus SyncBus) {
	de := bus.DataEnable()
	switch {
	case bus.VSync():
		c.x, c.y = 0, 0
	case de:
		c.x++
	case c.prevDE:
		// End of the active part of a line.
		c.x = 0
		c.y++
	}
	c.prevDE = de
}

func (c *counters) reset() {
	c.x, c.y = 0, 0
	c.prevDE = false
}
