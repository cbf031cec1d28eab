package vid

import "testing"

func TestBreakoutReset(t *testing.T) {
	var b breakout
	b.reset()

	if b.blocks != allBlocks {
		t.Errorf("blocks = %x, want %x", b.blocks, uint64(allBlocks))
	}
	if b.paused || b.won {
		t.Errorf("paused/won = %t/%t, want false/false", b.paused, b.won)
	}
	if b.ballsLost != 0 || b.blocksHit != 0 {
		t.Errorf("score not cleared: lost=%d hit=%d", b.ballsLost, b.blocksHit)
	}
	if b.velX != ballVX || b.velY != ballVY {
		t.Errorf("spawn velocity = (%d,%d), want (%d,%d)", b.velX, b.velY, ballVX, ballVY)
	}
}

func TestBreakoutResetAfterTwoNonGameTicks(t *testing.T) {
	var b breakout
	b.reset()
	b.blocksHit = 12
	b.blocks = 0

	// A single out-of-game tick must not wipe a running game.
	b.step(false, 0)
	if b.blocksHit != 12 {
		t.Fatalf("reset after a single non-game tick")
	}
	b.step(true, 128)
	if b.blocksHit != 12 {
		t.Fatalf("reset after returning to game mode")
	}

	// Two consecutive ones do, exactly once.
	b.step(false, 0)
	b.step(false, 0)
	if b.blocksHit != 0 || b.blocks != allBlocks {
		t.Fatalf("no reset after two non-game ticks")
	}
	b.blocksHit = 3
	b.step(false, 0)
	if b.blocksHit != 3 {
		t.Fatalf("reset repeated while staying out of game mode")
	}
}

func TestBreakoutWallReflection(t *testing.T) {
	var b breakout
	b.reset()
	b.blocks = 0 // keep blocks out of the way

	b.ballX, b.ballY = 4, 500
	b.velX, b.velY = -ballVX, 0
	b.gameTick(128)
	if b.velX <= 0 {
		t.Errorf("left wall: velX = %d, want > 0", b.velX)
	}

	b.ballX = Width - ballSize - 4
	b.velX = ballVX
	b.gameTick(128)
	if b.velX >= 0 {
		t.Errorf("right wall: velX = %d, want < 0", b.velX)
	}

	b.ballY, b.velY = 4, ballVY
	b.gameTick(128)
	if b.velY <= 0 {
		t.Errorf("top wall: velY = %d, want > 0", b.velY)
	}
}

func TestBreakoutPaddleThirds(t *testing.T) {
	place := func(b *breakout, cx int) {
		b.blocks = 0
		b.paddleX = 800
		b.ballX = cx - ballSize/2
		b.ballY = paddleY - ballSize + 2 // crosses the paddle top this tick
		b.velX, b.velY = 0, 6
	}

	var b breakout
	b.reset()

	place(&b, 820) // left third
	b.gameTick(128)
	if b.velY >= 0 || b.velX != -ballVX {
		t.Errorf("left third: vel = (%d,%d), want (%d,<0)", b.velX, b.velY, -ballVX)
	}

	place(&b, 920) // center third keeps horizontal velocity
	b.gameTick(128)
	if b.velY >= 0 || b.velX != 0 {
		t.Errorf("center third: vel = (%d,%d), want (0,<0)", b.velX, b.velY)
	}

	place(&b, 1020) // right third
	b.gameTick(128)
	if b.velY >= 0 || b.velX != ballVX {
		t.Errorf("right third: vel = (%d,%d), want (%d,<0)", b.velX, b.velY, ballVX)
	}
}

func TestBreakoutBallLoss(t *testing.T) {
	var b breakout
	b.reset()
	b.blocks = 0

	for i := 1; i < maxBalls; i++ {
		b.ballY = Height - 2
		b.velY = 6
		b.gameTick(128)
		if b.ballsLost != uint8(i) {
			t.Fatalf("ballsLost = %d, want %d", b.ballsLost, i)
		}
		if b.paused {
			t.Fatalf("paused after %d losses", i)
		}
		if b.ballY != 700 {
			t.Fatalf("ball not respawned after loss %d", i)
		}
	}

	b.ballY = Height - 2
	b.velY = 6
	b.gameTick(128)
	if !b.paused || b.won {
		t.Errorf("paused/won = %t/%t after last ball, want true/false", b.paused, b.won)
	}
}

func TestBreakoutBlockCollision(t *testing.T) {
	var b breakout
	b.reset()
	b.paddleX = 0

	// Hit block (row 0, col 0) coming from below: the ball center crosses
	// into the block cell this tick.
	b.ballX = gridX0 + 10
	b.ballY = gridY0 + blockH - ballSize/2 + 2
	b.velX, b.velY = 0, -6
	b.gameTick(128)

	if b.blocks&1 != 0 {
		t.Errorf("block 0 still alive")
	}
	if b.blocksHit != 1 {
		t.Errorf("blocksHit = %d, want 1", b.blocksHit)
	}
	if b.velY <= 0 {
		t.Errorf("vertical hit: velY = %d, want > 0", b.velY)
	}

	// One cleared block stays cleared.
	b.ballY = gridY0 + blockH - ballSize/2 + 2
	b.velY = -6
	b.gameTick(128)
	if b.blocksHit != 1 {
		t.Errorf("cleared block hit again")
	}
}

func TestBreakoutSideCollision(t *testing.T) {
	var b breakout
	b.reset()
	b.paddleX = 0

	// Approach block (row 2, col 3) horizontally: the ball center was
	// already inside the block's vertical span on the previous tick.
	row, col := 2, 3
	b.ballX = gridX0 + col*blockW - ballSize/2
	b.ballY = gridY0 + row*blockH + blockH/2 - ballSize/2
	b.velX, b.velY = ballVX, 0
	b.gameTick(128)

	bit := uint(row*gridCols + col)
	if b.blocks&(1<<bit) != 0 {
		t.Fatalf("block (%d,%d) still alive", row, col)
	}
	if b.velX >= 0 {
		t.Errorf("side hit: velX = %d, want < 0", b.velX)
	}
}

func TestBreakoutWin(t *testing.T) {
	var b breakout
	b.reset()
	b.paddleX = 0
	b.blocksHit = gridCols*gridRows - 1
	b.blocks = 1 // only block 0 left

	b.ballX = gridX0 + 10
	b.ballY = gridY0 + blockH - ballSize/2 + 2
	b.velX, b.velY = 0, -6
	b.gameTick(128)

	if !b.paused || !b.won {
		t.Errorf("paused/won = %t/%t, want true/true", b.paused, b.won)
	}
	if b.blocks != 0 {
		t.Errorf("blocks = %#x, want 0", b.blocks)
	}
}

func TestBreakoutPausedFreezes(t *testing.T) {
	var b breakout
	b.reset()
	b.paused = true
	x, y := b.ballX, b.ballY

	for i := 0; i < 3*gameTickInterval; i++ {
		b.step(true, 128)
	}
	if b.ballX != x || b.ballY != y {
		t.Errorf("ball moved while paused")
	}
}

func TestBreakoutTickInterval(t *testing.T) {
	var b breakout
	b.reset()
	b.blocks = 0
	y := b.ballY

	for i := 0; i < gameTickInterval-1; i++ {
		b.step(true, 128)
	}
	if b.ballY != y {
		t.Fatalf("ball moved before the tick interval elapsed")
	}
	b.step(true, 128)
	if b.ballY == y {
		t.Fatalf("ball did not move after the tick interval")
	}
}

func TestBreakoutPaddleSlew(t *testing.T) {
	var b breakout
	b.reset()
	b.blocks = 0
	b.paddleX = 0

	b.gameTick(255)
	if b.paddleX != paddleSlew {
		t.Errorf("paddleX = %d, want %d", b.paddleX, paddleSlew)
	}

	// Converges onto the target without overshooting.
	b.paddleX = Width - paddleW - 1
	b.gameTick(255)
	if b.paddleX != Width-paddleW {
		t.Errorf("paddleX = %d, want %d", b.paddleX, Width-paddleW)
	}
}
