// Package vid implements the mood display video core: a deterministic
// per-tick state machine that turns a pixel timing bus, a 3-bit mode
// selector and an 8-bit amplitude into a 24-bit RGB pixel stream. It mirrors
// the register-transfer structure of the hardware it models: fixed-width
// state, one update per tick, a two-stage output delay pipeline and no
// allocation on the tick path.
package vid

const (
	Width  = 1920
	Height = 1080
	MidY   = Height / 2
)

// Inputs are the external levels sampled once per tick. Mode and Amp come
// from the host control registers and may change at any rate; the core
// treats them as plain levels with no handshake.
type Inputs struct {
	Reset  bool
	Enable bool
	Bus    SyncBus
	Mode   uint8 // 3-bit selector
	Amp    uint8
}

// pipeStage is one (color, sync) output register pair.
type pipeStage struct {
	color RGB
	bus   SyncBus
}

// Core holds the entire mutable state of the display. Nothing is allocated
// after New; Reset returns every register to its initial value.
type Core struct {
	ctr   counters
	rnd   lfsr16
	kf    keyframes
	saver screensaver
	game  breakout

	out [2]pipeStage
}

func New() *Core {
	c := &Core{}
	c.reset()
	return c
}

func (c *Core) reset() {
	c.ctr.reset()
	c.rnd.reset()
	c.kf.reset()
	c.saver.reset()
	c.game.reset()
	c.game.nonGame = 0
	c.out = [2]pipeStage{}
}

// Step advances the core by one tick. Reset overrides everything including
// the enable gate; with Enable low the state is frozen.
//
// The pixel is composed from the state as it stood at the start of the tick,
// then every sub-machine commits its next value, preserving the simultaneous
// update semantics of the modeled registers.
func (c *Core) Step(in Inputs) {
	if in.Reset {
		c.reset()
		return
	}
	if !in.Enable {
		return
	}

	mode := Mode(in.Mode & 7)

	pix := c.compose(mode, in.Amp)
	c.out[1] = c.out[0]
	c.out[0] = pipeStage{color: pix, bus: in.Bus}

	if in.Bus.VSync() {
		c.kf.frameTick(mode, c.rnd.value())
	}
	c.game.step(mode == ModeGame, in.Amp)
	c.saver.step()
	c.ctr.step(in.Bus)
	c.rnd.step()
}

// Output returns the composited color and the sync bus, both delayed by
// exactly two ticks relative to the inputs that produced them.
func (c *Core) Output() (RGB, SyncBus) {
	return c.out[1].color, c.out[1].bus
}

// State is a snapshot of the externally observable registers, used by the
// trace output and the control drivers.
type State struct {
	X, Y       int
	Mode       Mode
	LFSR       uint16
	Blend      uint8
	FrameCtr   uint16
	Freq1      uint8
	Freq2      uint8
	Amp        uint8
	FillColumn int
	BallsLost  uint8
	BlocksHit  uint8
	GamePaused bool
	GameWon    bool
}

func (c *Core) Snapshot() State {
	return State{
		X:          c.ctr.x,
		Y:          c.ctr.y,
		Mode:       c.kf.prevMode,
		LFSR:       c.rnd.value(),
		Blend:      c.kf.blend,
		FrameCtr:   c.kf.frameCtr,
		Freq1:      c.kf.curF1,
		Freq2:      c.kf.curF2,
		Amp:        c.kf.curAmp,
		FillColumn: c.saver.fillColumn,
		BallsLost:  c.game.ballsLost,
		BlocksHit:  c.game.blocksHit,
		GamePaused: c.game.paused,
		GameWon:    c.game.won,
	}
}
