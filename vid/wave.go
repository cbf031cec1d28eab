package vid

import "math"

// Quarter-wave sine table. A full cycle is reconstructed from 64 entries by
// mirroring the index and flipping the sign per quadrant, the way the table
// would be stored in a synthesis-time ROM.
var sineQuarter [64]uint8

func init() {
	for i := range sineQuarter {
		sineQuarter[i] = uint8(math.Round(127 * math.Sin(math.Pi/2*float64(i)/64)))
	}
}

// sineVal reconstructs one full sine cycle from the quarter wave table.
// phase is the high byte of a 16-bit phase accumulator; the result is in
// [-127, 127].
func sineVal(phase uint8) int {
	idx := int(phase & 0x3F)
	switch phase >> 6 {
	case 0:
		return int(sineQuarter[idx])
	case 1:
		return int(sineQuarter[63-idx])
	case 2:
		return -int(sineQuarter[idx])
	default:
		return -int(sineQuarter[63-idx])
	}
}

const (
	envLeft  = 240  // left edge of the envelope band (1/8 screen width)
	envRight = 1680 // one past the right edge (7/8 screen width)
	envFade  = 120  // linear fade length at each end of the band

	lineHalf = 4 // waveform line half thickness
)

// envelope scales the waveform amplitude to zero outside the central
// horizontal band, with a linear fade at both edges.
func envelope(x int) uint8 {
	switch {
	case x < envLeft || x >= envRight:
		return 0
	case x < envLeft+envFade:
		return uint8((x - envLeft) * 255 / envFade)
	case x >= envRight-envFade:
		return uint8((envRight - 1 - x) * 255 / envFade)
	}
	return 255
}

// waveTarget computes the waveform row for column x: two summed sine
// oscillators, scaled by the chained amplitude (mode amplitude x external
// amplitude x envelope x per-period modulation) and centered on the screen
// midline. ok is false outside the envelope band, where nothing is drawn.
func (k *keyframes) waveTarget(x int, extAmp uint8) (row int, ok bool) {
	env := envelope(x)
	if env == 0 {
		return 0, false
	}

	ph1 := uint32(x) * uint32(k.curF1)
	ph2 := uint32(x) * uint32(k.curF2)
	s := sineVal(uint8(ph1>>8)) + sineVal(uint8(ph2>>8))

	mod := k.periodMod(uint8(ph1 >> 16))

	// Chained 8x8 multiplies in a wide accumulator, truncated to 8 bits.
	amp := (uint32(k.curAmp) * uint32(extAmp)) >> 8
	amp = (amp * uint32(env)) >> 8
	amp = (amp * uint32(mod)) >> 8

	return MidY + (s*int(amp))>>7, true
}

// waveHit reports whether (x,y) falls in the line band of the waveform.
func (k *keyframes) waveHit(x, y int, extAmp uint8) bool {
	row, ok := k.waveTarget(x, extAmp)
	if !ok {
		return false
	}
	d := y - row
	return d >= -lineHalf && d <= lineHalf
}
