package sim

import (
	"bytes"
	"strings"
	"testing"

	"visynth/vid"
)

func TestTraceFormat(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracer(&out)

	err := tr.WriteFrame(3, vid.State{
		Mode:       vid.ModeListen,
		LFSR:       0xACE1,
		Blend:      128,
		FrameCtr:   42,
		Freq1:      40,
		Freq2:      65,
		Amp:        38,
		FillColumn: 17,
		BallsLost:  1,
		BlocksHit:  9,
		GamePaused: false,
		GameWon:    false,
	})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"frame":3,"mode":"listen","lfsr":44257,"blend":128,"frame_ctr":42,` +
		`"freq1":40,"freq2":65,"amp":38,"fill_column":17,"balls_lost":1,` +
		`"blocks_hit":9,"game_paused":false,"game_won":false}` + "\n"
	if out.String() != want {
		t.Fatalf("trace differs\ngot:  %s\nwant: %s", out.String(), want)
	}
}

func TestTraceOneLinePerFrame(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracer(&out)

	for i := 0; i < 5; i++ {
		if err := tr.WriteFrame(i, vid.State{}); err != nil {
			t.Fatal(err)
		}
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, l := range lines {
		if !strings.HasPrefix(l, "{") || !strings.HasSuffix(l, "}") {
			t.Errorf("line %d is not a json object: %s", i, l)
		}
	}
}
