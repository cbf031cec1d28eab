package vid

import "testing"

func TestKeyframesSnapOnModeChange(t *testing.T) {
	var k keyframes
	k.reset()

	k.frameTick(ModeAngry, 0x1234)

	p := modeTable[ModeAngry]
	if k.curF1 != p.baseF1 || k.curF2 != p.baseF2 {
		t.Errorf("freqs = (%d,%d), want (%d,%d)", k.curF1, k.curF2, p.baseF1, p.baseF2)
	}
	if k.curAmp != p.baseAmp {
		t.Errorf("amp = %d, want %d", k.curAmp, p.baseAmp)
	}
	if k.blend != 0 || k.frameCtr != 0 {
		t.Errorf("blend/frameCtr = %d/%d, want 0/0", k.blend, k.frameCtr)
	}
	if k.prevSeed != 0x1234 || k.nextSeed != 0x1234^seedXor {
		t.Errorf("seeds = %04x/%04x, want %04x/%04x",
			k.prevSeed, k.nextSeed, 0x1234, 0x1234^seedXor)
	}

	// Same mode next frame: no second snap.
	k.frameTick(ModeAngry, 0x9999)
	if k.prevSeed != 0x1234 {
		t.Errorf("snap repeated on unchanged mode")
	}
}

func TestKeyframesBlendRamp(t *testing.T) {
	var k keyframes
	k.reset()
	k.frameTick(ModeNeutral, 0x0001)

	prev := uint8(0)
	sawFull := false
	for frame := 0; frame < keyframeFrames-1; frame++ {
		k.frameTick(ModeNeutral, 0x0001)
		if k.blend < prev {
			t.Fatalf("blend went backwards at frame %d: %d -> %d", frame, prev, k.blend)
		}
		prev = k.blend
		if k.blend == 0xFF {
			sawFull = true
		}
	}
	if !sawFull {
		t.Errorf("blend never reached 255 within %d frames", keyframeFrames)
	}
}

func TestKeyframesReseed(t *testing.T) {
	var k keyframes
	k.reset()
	k.frameTick(ModeNeutral, 0x0001)
	for i := 0; i < keyframeFrames; i++ {
		k.frameTick(ModeNeutral, 0x0001)
	}

	oldNext := k.nextSeed
	k.frameTick(ModeNeutral, 0xBEEF) // frameCtr has hit the interval
	if k.prevSeed != oldNext {
		t.Errorf("prevSeed = %04x, want previous nextSeed %04x", k.prevSeed, oldNext)
	}
	if k.nextSeed != 0xBEEF {
		t.Errorf("nextSeed = %04x, want BEEF", k.nextSeed)
	}
	if k.blend != 0 || k.frameCtr != 0 {
		t.Errorf("blend/frameCtr = %d/%d, want 0/0", k.blend, k.frameCtr)
	}

	// Randomized targets stay within the clamped offset range.
	p := modeTable[ModeNeutral]
	maxOff := 1 << (p.freqVar - 1)
	if d := int(k.stableF1) - int(p.baseF1); d < -maxOff || d >= maxOff {
		t.Errorf("stableF1 offset %d out of range ±%d", d, maxOff)
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		cur, target, step, want uint8
	}{
		{0, 10, 4, 4},
		{8, 10, 4, 10},
		{10, 10, 4, 10},
		{10, 0, 4, 6},
		{2, 0, 4, 0},
		{255, 0, 4, 251},
	}
	for _, tt := range tests {
		if got := stepToward(tt.cur, tt.target, tt.step); got != tt.want {
			t.Errorf("stepToward(%d,%d,%d) = %d, want %d",
				tt.cur, tt.target, tt.step, got, tt.want)
		}
	}
}

func TestCentered(t *testing.T) {
	if got := centered(0xFFFF, 0); got != 0 {
		t.Errorf("centered width 0 = %d, want 0", got)
	}
	for rnd := 0; rnd < 256; rnd++ {
		got := centered(uint16(rnd), 3)
		if got < -4 || got > 3 {
			t.Errorf("centered(%d, 3) = %d, out of [-4,3]", rnd, got)
		}
	}
}

func TestOffsetClamp8(t *testing.T) {
	if got := offsetClamp8(250, 10); got != 255 {
		t.Errorf("high clamp = %d, want 255", got)
	}
	if got := offsetClamp8(3, -10); got != 0 {
		t.Errorf("low clamp = %d, want 0", got)
	}
	if got := offsetClamp8(100, -10); got != 90 {
		t.Errorf("offset = %d, want 90", got)
	}
}

func TestMixAmpRange(t *testing.T) {
	for period := 0; period < 256; period++ {
		v := mixAmp(0xACE1, uint8(period))
		if v < modBase || v > modBase+0x3F {
			t.Errorf("mixAmp(period=%d) = %d, out of [%d,%d]",
				period, v, modBase, modBase+0x3F)
		}
	}
}

func TestPeriodModBlendEnds(t *testing.T) {
	k := keyframes{prevSeed: 0x1111, nextSeed: 0x2222}

	k.blend = 0
	want := uint8(uint16(mixAmp(0x1111, 7)) * 255 / 256)
	if got := k.periodMod(7); got != want {
		t.Errorf("blend 0: %d, want %d", got, want)
	}

	k.blend = 0xFF
	want = uint8(uint16(mixAmp(0x2222, 7)) * 255 / 256)
	if got := k.periodMod(7); got != want {
		t.Errorf("blend 255: %d, want %d", got, want)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeIdle, "idle"},
		{ModeListen, "listen"},
		{ModeNeutral, "neutral"},
		{ModeAngry, "angry"},
		{ModeScreensaver, "screensaver"},
		{ModeGame, "game"},
		{6, "screensaver"},
		{7, "screensaver"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestIsScreensaver(t *testing.T) {
	for m := Mode(0); m < 8; m++ {
		want := m >= ModeScreensaver && m != ModeGame
		if got := m.IsScreensaver(); got != want {
			t.Errorf("Mode(%d).IsScreensaver() = %t, want %t", m, got, want)
		}
	}
}
