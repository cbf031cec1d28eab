package vid

// SyncBus is the 3-bit pixel timing bus produced by the upstream timing
// generator and consumed (and re-emitted, delayed) by the core.
type SyncBus uint8

const (
	SyncHS SyncBus = 1 << 0 // horizontal sync pulse
	SyncVS SyncBus = 1 << 1 // vertical sync pulse, single tick at frame start
	SyncDE SyncBus = 1 << 2 // data enable, high during active pixels
)

func (s SyncBus) DataEnable() bool { return s&SyncDE != 0 }
func (s SyncBus) VSync() bool      { return s&SyncVS != 0 }
func (s SyncBus) HSync() bool      { return s&SyncHS != 0 }

// RGB is one 24-bit pixel, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// add returns c brightened by (r,g,b), saturating per channel.
func (c RGB) add(r, g, b uint8) RGB {
	return RGB{satAdd8(c.R, r), satAdd8(c.G, g), satAdd8(c.B, b)}
}

func satAdd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}
