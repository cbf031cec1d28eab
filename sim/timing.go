package sim

import "visynth/vid"

// 1080p60 pixel timing (CEA-861). The core never sees these totals, only
// the sync bus levels derived from them.
const (
	HActive = 1920
	HFront  = 88
	HSyncW  = 44
	HBack   = 148
	HTotal  = HActive + HFront + HSyncW + HBack // 2200

	VActive = 1080
	VFront  = 4
	VSyncW  = 5
	VBack   = 36
	VTotal  = VActive + VFront + VSyncW + VBack // 1125

	TicksPerFrame = HTotal * VTotal
)

// SyncGen is the upstream timing generator: it walks the 2200x1125 raster
// and emits the data-enable and sync pulse levels for each tick. The
// vertical sync pulse is a single tick at the start of the blanking sync
// region, which is what the core's frame boundary logic keys on.
type SyncGen struct {
	h, v int
}

// Step returns the bus levels for the current tick and advances.
func (g *SyncGen) Step() vid.SyncBus {
	var bus vid.SyncBus
	if g.h < HActive && g.v < VActive {
		bus |= vid.SyncDE
	}
	if g.h >= HActive+HFront && g.h < HActive+HFront+HSyncW {
		bus |= vid.SyncHS
	}
	if g.v == VActive+VFront && g.h == 0 {
		bus |= vid.SyncVS
	}

	g.h++
	if g.h == HTotal {
		g.h = 0
		g.v++
		if g.v == VTotal {
			g.v = 0
		}
	}
	return bus
}

func (g *SyncGen) Reset() {
	g.h, g.v = 0, 0
}
