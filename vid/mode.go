package vid

// Mode is the 3-bit external selector. Values above ModeGame fall back to
// the screensaver rendering path.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeListen
	ModeNeutral
	ModeAngry
	ModeScreensaver
	ModeGame
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeListen:
		return "listen"
	case ModeNeutral:
		return "neutral"
	case ModeAngry:
		return "angry"
	case ModeGame:
		return "game"
	}
	return "screensaver"
}

// IsScreensaver reports whether m selects the screensaver renderer.
func (m Mode) IsScreensaver() bool { return m >= ModeScreensaver && m != ModeGame }

// modeParams are the per-mode base parameters of the waveform.
type modeParams struct {
	color   RGB
	baseAmp uint8
	minAmp  uint8 // floor applied to the external amplitude input
	ampVar  uint  // variability mask width, 0 means no randomness
	baseF1  uint8
	baseF2  uint8
	freqVar uint
}

var modeTable = [8]modeParams{
	ModeIdle:    {color: RGB{0x00, 0xC8, 0x20}, baseAmp: 0, baseF1: 4, baseF2: 7},
	ModeListen:  {color: RGB{0x20, 0x80, 0xFF}, baseAmp: 40, minAmp: 20, ampVar: 3, baseF1: 40, baseF2: 65, freqVar: 2},
	ModeNeutral: {color: RGB{0x00, 0xE0, 0x60}, baseAmp: 96, ampVar: 4, baseF1: 90, baseF2: 150, freqVar: 3},
	ModeAngry:   {color: RGB{0xFF, 0x20, 0x10}, baseAmp: 160, ampVar: 6, baseF1: 170, baseF2: 230, freqVar: 5},
	// Screensaver and game entries carry no waveform parameters.
}

const (
	keyframeFrames = 180    // frames between keyframe reseeds
	blendStep      = 2      // blend_factor increment per frame
	ampSlew        = 4      // max current_amp step per frame
	seedXor        = 0xB5AD // decorrelates next_seed from prev_seed at mode change
)

// keyframes holds the slow-moving state advanced once per frame: the mode
// transition detector, the keyframe seed pair and its blend factor, and the
// frequency/amplitude values slewing toward their randomized targets.
type keyframes struct {
	prevMode Mode

	prevSeed, nextSeed uint16
	blend              uint8
	frameCtr           uint16

	stableF1, stableF2 uint8
	curF1, curF2       uint8
	curAmp, targetAmp  uint8
}

func (k *keyframes) reset() {
	k.prevMode = ModeIdle
	k.snap(ModeIdle, lfsrSeed)
}

// snap loads the base parameters of mode without slewing.
func (k *keyframes) snap(mode Mode, rnd uint16) {
	p := &modeTable[mode&7]
	k.stableF1, k.curF1 = p.baseF1, p.baseF1
	k.stableF2, k.curF2 = p.baseF2, p.baseF2
	k.curAmp, k.targetAmp = p.baseAmp, p.baseAmp
	k.prevSeed = rnd
	k.nextSeed = rnd ^ seedXor
	k.blend = 0
	k.frameCtr = 0
}

// frameTick advances the keyframe machine at a frame boundary (the vertical
// sync tick). rnd is the PRNG value sampled on that tick.
func (k *keyframes) frameTick(mode Mode, rnd uint16) {
	p := &modeTable[mode&7]

	switch {
	case mode != k.prevMode:
		k.snap(mode, rnd)
		k.prevMode = mode

	case k.frameCtr >= keyframeFrames:
		k.frameCtr = 0
		k.blend = 0
		k.prevSeed = k.nextSeed
		k.nextSeed = rnd
		k.stableF1 = offsetClamp8(p.baseF1, centered(rnd, p.freqVar))
		k.stableF2 = offsetClamp8(p.baseF2, centered(rnd>>4, p.freqVar))
		k.targetAmp = offsetClamp8(p.baseAmp, centered(rnd>>8, p.ampVar))

	default:
		k.frameCtr++
		if k.blend < 0xFF {
			if k.blend >= 0xFF-blendStep {
				k.blend = 0xFF
			} else {
				k.blend += blendStep
			}
		}
	}

	k.curF1 = stepToward(k.curF1, k.stableF1, 1)
	k.curF2 = stepToward(k.curF2, k.stableF2, 1)
	k.curAmp = stepToward(k.curAmp, k.targetAmp, ampSlew)
}

// centered derives a signed offset in [-2^(bits-1), 2^(bits-1)-1] from rnd.
// A width of zero yields no offset at all.
func centered(rnd uint16, bits uint) int {
	if bits == 0 {
		return 0
	}
	mask := (1 << bits) - 1
	return int(rnd)&mask - (mask+1)/2
}

func offsetClamp8(base uint8, off int) uint8 {
	v := int(base) + off
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

// stepToward moves cur at most step closer to target, never overshooting.
func stepToward(cur, target, step uint8) uint8 {
	switch {
	case cur < target:
		if d := target - cur; d < step {
			return cur + d
		}
		return cur + step
	case cur > target:
		if d := cur - target; d < step {
			return cur - d
		}
		return cur - step
	}
	return cur
}

const modBase = 160 // baseline of the per-period amplitude texture

// mixAmp hashes a (seed, period) pair into an amplitude in [160,223]. The
// mixing keeps a given period stable for a given seed while decorrelating
// neighboring periods.
func mixAmp(seed uint16, period uint8) uint8 {
	h := seed ^ (uint16(period)<<8 | uint16(period))
	h ^= h >> 7
	h *= 0x2545
	h = (h >> 8) ^ (h & 0xFF)
	return modBase + uint8(h&0x3F)
}

// periodMod interpolates the per-period amplitude between the two keyframe
// seeds using the blend factor as a 0-255 weight.
func (k *keyframes) periodMod(period uint8) uint8 {
	pm := uint32(mixAmp(k.prevSeed, period))
	nm := uint32(mixAmp(k.nextSeed, period))
	b := uint32(k.blend)
	return uint8((pm*(255-b) + nm*b) / 256)
}
