package vid

// lfsr16 is the sole entropy source of the core: a 16-bit Fibonacci linear
// feedback shift register with taps 16,14,13,11 (x^16 + x^14 + x^13 + x^11
// + 1, a maximal polynomial). Seeded non-zero, it never reaches zero.
type lfsr16 struct {
	state uint16
}

const lfsrSeed = 0xACE1

func (l *lfsr16) reset() {
	l.state = lfsrSeed
}

func (l *lfsr16) step() {
	s := l.state
	bit := (s ^ s>>2 ^ s>>3 ^ s>>5) & 1
	l.state = s>>1 | bit<<15
}

func (l *lfsr16) value() uint16 {
	return l.state
}
