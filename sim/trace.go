package sim

import (
	"io"

	"github.com/go-faster/jx"

	"visynth/vid"
)

// Tracer writes one JSON object per frame with the observable core
// registers, newline delimited so the stream can be followed live.
type Tracer struct {
	w   io.Writer
	enc jx.Encoder
}

func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

func (t *Tracer) WriteFrame(frame int, st vid.State) error {
	e := &t.enc
	e.Reset()

	e.ObjStart()
	e.FieldStart("frame")
	e.Int(frame)
	e.FieldStart("mode")
	e.Str(st.Mode.String())
	e.FieldStart("lfsr")
	e.UInt16(st.LFSR)
	e.FieldStart("blend")
	e.UInt8(st.Blend)
	e.FieldStart("frame_ctr")
	e.UInt16(st.FrameCtr)
	e.FieldStart("freq1")
	e.UInt8(st.Freq1)
	e.FieldStart("freq2")
	e.UInt8(st.Freq2)
	e.FieldStart("amp")
	e.UInt8(st.Amp)
	e.FieldStart("fill_column")
	e.Int(st.FillColumn)
	e.FieldStart("balls_lost")
	e.UInt8(st.BallsLost)
	e.FieldStart("blocks_hit")
	e.UInt8(st.BlocksHit)
	e.FieldStart("game_paused")
	e.Bool(st.GamePaused)
	e.FieldStart("game_won")
	e.Bool(st.GameWon)
	e.ObjEnd()

	if _, err := t.w.Write(e.Bytes()); err != nil {
		return err
	}
	_, err := t.w.Write([]byte{'\n'})
	return err
}
