package vid

const (
	gridSpacing = 64
	bgMaxBlue   = 96
)

// background is the radial-gradient-with-grid canvas shared by the waveform
// modes and the game: black at screen center fading to blue at the edges,
// using Manhattan distance, with brighter lines at a fixed spacing.
func background(x, y int) RGB {
	d := absInt(x-Width/2) + absInt(y-MidY)
	b := d / 16
	if b > bgMaxBlue {
		b = bgMaxBlue
	}
	c := RGB{0, 0, uint8(b)}
	if x%gridSpacing == 0 || y%gridSpacing == 0 {
		c = c.add(16, 24, 48)
	}
	return c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// compose picks the color of the current pixel. Priority is fixed: the game
// and screensaver renderers own their modes outright, otherwise the waveform
// line band wins over the background.
func (c *Core) compose(mode Mode, extAmp uint8) RGB {
	x, y := c.ctr.x, c.ctr.y

	switch {
	case mode == ModeGame:
		return c.game.pixel(x, y)
	case mode.IsScreensaver():
		return c.saver.pixel(x, y)
	}

	p := &modeTable[mode&7]
	if extAmp < p.minAmp {
		extAmp = p.minAmp
	}
	if c.kf.waveHit(x, y, extAmp) {
		return p.color
	}
	return background(x, y)
}
