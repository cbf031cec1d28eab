package vid

import "visynth/vid/hwio"

const (
	ballSize = 16
	ballVX   = 8 // spawn velocity, per game tick
	ballVY   = -6

	paddleW    = 240
	paddleH    = 16
	paddleY    = 1000
	paddleSlew = 24 // max paddle movement per game tick

	gridCols = 10
	gridRows = 5
	blockW   = 160
	blockH   = 40
	gridX0   = (Width - gridCols*blockW) / 2
	gridY0   = 120

	blockBorder = 4

	gameTickInterval = 8192 // enabled ticks per game physics step
	maxBalls         = 4

	allBlocks = 1<<(gridCols*gridRows) - 1
)

var blockRowColors = [gridRows]RGB{
	{0xFF, 0x40, 0x40},
	{0xFF, 0xA0, 0x20},
	{0xFF, 0xFF, 0x40},
	{0x40, 0xFF, 0x60},
	{0x40, 0x80, 0xFF},
}

// breakout is the minigame state machine: Playing until either the ball
// supply or the block supply runs out, then paused on the end overlay until
// the mode leaves and re-enters Game.
type breakout struct {
	ballX, ballY int // top-left corner
	velX, velY   int

	paddleX int

	blocks uint64 // alive bitmask, bit row*gridCols+col

	tickCtr   uint32
	ballsLost uint8
	blocksHit uint8
	paused    bool
	won       bool

	// Ticks spent outside Game mode, saturating at 2. The game resets only
	// after two consecutive non-game ticks so a mode value glitching for a
	// single tick during a transition cannot wipe a running game.
	nonGame uint8
}

func (b *breakout) reset() {
	b.spawnBall()
	b.paddleX = (Width - paddleW) / 2
	b.blocks = allBlocks
	b.tickCtr = 0
	b.ballsLost = 0
	b.blocksHit = 0
	b.paused = false
	b.won = false
}

func (b *breakout) spawnBall() {
	b.ballX = (Width - ballSize) / 2
	b.ballY = 700
	b.velX = ballVX
	b.velY = ballVY
}

// step advances the game by one core tick. amp is the external amplitude
// driving the paddle target.
func (b *breakout) step(inGame bool, amp uint8) {
	if !inGame {
		if b.nonGame < 2 {
			b.nonGame++
			if b.nonGame == 2 {
				b.reset()
			}
		}
		return
	}
	b.nonGame = 0

	if b.paused {
		return
	}
	b.tickCtr++
	if b.tickCtr < gameTickInterval {
		return
	}
	b.tickCtr = 0
	b.gameTick(amp)
}

// gameTick is one physics step.
func (b *breakout) gameTick(amp uint8) {
	// Paddle tracks the amplitude-derived target with a bounded step so a
	// noisy input doesn't make it jitter.
	target := int(amp) * (Width - paddleW) / 255
	switch {
	case b.paddleX < target:
		b.paddleX += min(paddleSlew, target-b.paddleX)
	case b.paddleX > target:
		b.paddleX -= min(paddleSlew, b.paddleX-target)
	}

	prevY := b.ballY
	b.ballX += b.velX
	b.ballY += b.velY

	// Walls reflect only motion toward them, so a reflection cannot
	// re-trigger while the ball is still inside the boundary band.
	if b.ballX <= 0 && b.velX < 0 {
		b.velX = -b.velX
	}
	if b.ballX+ballSize >= Width && b.velX > 0 {
		b.velX = -b.velX
	}
	if b.ballY <= 0 && b.velY < 0 {
		b.velY = -b.velY
	}

	// Paddle.
	if b.velY > 0 &&
		b.ballY+ballSize >= paddleY && b.ballY+ballSize < paddleY+paddleH &&
		b.ballX+ballSize > b.paddleX && b.ballX < b.paddleX+paddleW {
		b.velY = -b.velY
		// Re-aim from the paddle third that was hit.
		cx := b.ballX + ballSize/2
		switch {
		case cx < b.paddleX+paddleW/3:
			b.velX = -ballVX
		case cx >= b.paddleX+2*paddleW/3:
			b.velX = ballVX
		}
	}

	// Ball lost off the bottom.
	if b.ballY >= Height {
		b.ballsLost++
		if b.ballsLost >= maxBalls {
			b.paused = true
			b.won = false
			return
		}
		b.spawnBall()
		return
	}

	b.collideBlocks(prevY)
}

// collideBlocks clears at most one block per game tick and reflects the
// velocity on the axis the ball came from.
func (b *breakout) collideBlocks(prevY int) {
	cx := b.ballX + ballSize/2
	cy := b.ballY + ballSize/2

	col := (cx - gridX0) / blockW
	row := (cy - gridY0) / blockH
	if cx < gridX0 || col >= gridCols || cy < gridY0 || row >= gridRows {
		return
	}

	bit := uint(row*gridCols + col)
	if !hwio.GetBit64(b.blocks, bit) {
		return
	}
	hwio.ClearBit64(&b.blocks, bit)
	b.blocksHit++
	if b.blocksHit >= gridCols*gridRows {
		b.paused = true
		b.won = true
		return
	}

	// If the ball center was outside the block's vertical span before this
	// step the hit came from above or below, otherwise from the side.
	top := gridY0 + row*blockH
	pcy := prevY + ballSize/2
	if pcy < top || pcy >= top+blockH {
		b.velY = -b.velY
	} else {
		b.velX = -b.velX
	}
}

const (
	overlayW = 600
	overlayH = 300
	scoreY   = 1040
	scoreH   = 16
)

// pixel renders the game for (x,y). Draw priority: end overlay, ball,
// paddle, block outlines, score bars, then the shared canvas so the game
// reads as an overlay on the same background.
func (b *breakout) pixel(x, y int) RGB {
	if b.paused {
		if c, ok := b.overlayPixel(x, y); ok {
			return c
		}
	}

	if x >= b.ballX && x < b.ballX+ballSize && y >= b.ballY && y < b.ballY+ballSize {
		return RGB{0xFF, 0xFF, 0xFF}
	}

	if y >= paddleY && y < paddleY+paddleH && x >= b.paddleX && x < b.paddleX+paddleW {
		return RGB{0xC0, 0xC0, 0xC0}
	}

	if c, ok := b.blockPixel(x, y); ok {
		return c
	}

	// Score bars: blocks hit bottom-left, balls lost bottom-right.
	if y >= scoreY && y < scoreY+scoreH {
		if x >= 32 && x < 32+int(b.blocksHit)*8 {
			return RGB{0xFF, 0xE0, 0x40}
		}
		if x < Width-32 && x >= Width-32-int(b.ballsLost)*40 {
			return RGB{0xFF, 0x30, 0x30}
		}
	}

	return background(x, y)
}

// blockPixel draws the hollow outline of alive blocks, colored by row.
func (b *breakout) blockPixel(x, y int) (RGB, bool) {
	col := (x - gridX0) / blockW
	row := (y - gridY0) / blockH
	if x < gridX0 || col >= gridCols || y < gridY0 || row >= gridRows {
		return RGB{}, false
	}
	if !hwio.GetBit64(b.blocks, uint(row*gridCols+col)) {
		return RGB{}, false
	}

	bx := x - gridX0 - col*blockW
	by := y - gridY0 - row*blockH
	if bx < blockBorder || bx >= blockW-blockBorder || by < blockBorder || by >= blockH-blockBorder {
		return blockRowColors[row], true
	}
	return RGB{}, false
}

// overlayPixel draws the centered end-of-game box: white border, interior
// colored by outcome.
func (b *breakout) overlayPixel(x, y int) (RGB, bool) {
	x0 := (Width - overlayW) / 2
	y0 := (Height - overlayH) / 2
	if x < x0 || x >= x0+overlayW || y < y0 || y >= y0+overlayH {
		return RGB{}, false
	}
	if x < x0+8 || x >= x0+overlayW-8 || y < y0+8 || y >= y0+overlayH-8 {
		return RGB{0xFF, 0xFF, 0xFF}, true
	}
	if b.won {
		return RGB{0x20, 0xA0, 0x30}, true
	}
	return RGB{0xA0, 0x20, 0x20}, true
}
