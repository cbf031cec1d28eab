package vid

import "testing"

func TestCounters(t *testing.T) {
	var c counters
	c.reset()

	// Active pixels advance x.
	for i := 0; i < 5; i++ {
		c.step(SyncDE)
	}
	if c.x != 5 || c.y != 0 {
		t.Errorf("after 5 active ticks: (%d,%d), want (5,0)", c.x, c.y)
	}

	// Falling data-enable edge starts the next line.
	c.step(0)
	if c.x != 0 || c.y != 1 {
		t.Errorf("after DE fall: (%d,%d), want (0,1)", c.x, c.y)
	}

	// Further blanking ticks change nothing.
	c.step(0)
	c.step(SyncHS)
	if c.x != 0 || c.y != 1 {
		t.Errorf("during blanking: (%d,%d), want (0,1)", c.x, c.y)
	}

	c.step(SyncDE)
	c.step(SyncDE)
	if c.x != 2 || c.y != 1 {
		t.Errorf("next line: (%d,%d), want (2,1)", c.x, c.y)
	}

	// Vertical sync rewinds to the origin, whatever the position.
	c.step(SyncVS)
	if c.x != 0 || c.y != 0 {
		t.Errorf("after vsync: (%d,%d), want (0,0)", c.x, c.y)
	}
}

func TestCountersVSyncWinsOverDE(t *testing.T) {
	var c counters
	c.reset()
	c.step(SyncDE)
	c.step(SyncVS | SyncDE)
	if c.x != 0 || c.y != 0 {
		t.Errorf("vsync+de: (%d,%d), want (0,0)", c.x, c.y)
	}
}
