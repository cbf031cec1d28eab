// Package sim runs the video core in lock step with a 1080p timing
// generator, assembles the delayed pixel stream into frames and feeds them
// to the display output. It owns the control register block and the
// pause/reset/stop switches used by the host drivers.
package sim

import (
	"image"
	"sync/atomic"
	"time"

	"visynth/sim/control"
	"visynth/sim/log"
	"visynth/vid"
)

type Simulator struct {
	Core *vid.Core
	Ctrl *control.Block

	out *vid.Output
	gen SyncGen

	frame  int
	outIdx int

	tracer *Tracer

	// These are accessed concurrently by the simulation loop and the
	// control drivers.
	quit   atomic.Bool
	paused atomic.Bool
	reset  atomic.Bool
	state  atomic.Pointer[vid.State]
}

// Launch builds the core, the control block and the output. With video
// enabled this opens the display window; call Run for the simulation loop.
func Launch(cfg Config, video bool) (*Simulator, error) {
	cfg.Video.Check()

	out := vid.NewOutput(vid.OutputConfig{
		Width:          vid.Width,
		Height:         vid.Height,
		NumBackBuffers: 2,
		Title:          "visynth",
		ScaleFactor:    cfg.Video.Scale,
		DisableVSync:   cfg.Video.DisableVSync,
		Monitor:        cfg.Video.Monitor,
		Shader:         cfg.Video.Shader,
	})
	if err := out.EnableVideo(video); err != nil {
		return nil, err
	}

	s := &Simulator{
		Core: vid.New(),
		Ctrl: control.NewBlock(cfg.Display.Mode, cfg.Display.Amplitude),
		out:  out,
	}
	if cfg.TraceOut != nil {
		s.tracer = NewTracer(cfg.TraceOut)
	}

	st := s.Core.Snapshot()
	s.state.Store(&st)
	return s, nil
}

// RunOneFrame advances the simulation by one full raster frame.
func (s *Simulator) RunOneFrame() {
	buf := s.out.BeginFrame()
	s.runFrame(buf)
	s.out.EndFrame(buf)

	st := s.Core.Snapshot()
	s.state.Store(&st)

	if s.tracer != nil {
		if err := s.tracer.WriteFrame(s.frame, st); err != nil {
			log.ModSim.WarnZ("trace write failed").Error("err", err).End()
			s.tracer = nil
		}
	}
	s.frame++
}

// runFrame ticks the core once per pixel clock and demultiplexes the
// delayed output stream back into a linear RGBA buffer, following the
// delayed sync bus rather than the input one.
func (s *Simulator) runFrame(buf []byte) {
	mode := s.Ctrl.Mode()
	amp := s.Ctrl.Amp()

	for range TicksPerFrame {
		bus := s.gen.Step()
		if bus.VSync() {
			// Control levels are resampled at the frame boundary so a
			// host write cannot tear a frame in two visually.
			mode = s.Ctrl.Mode()
			amp = s.Ctrl.Amp()
		}
		s.Core.Step(vid.Inputs{
			Enable: true,
			Bus:    bus,
			Mode:   mode,
			Amp:    amp,
		})

		color, obus := s.Core.Output()
		if obus.VSync() {
			s.outIdx = 0
		}
		if obus.DataEnable() && s.outIdx < vid.Width*vid.Height {
			off := s.outIdx * 4
			buf[off+0] = color.R
			buf[off+1] = color.G
			buf[off+2] = color.B
			buf[off+3] = 0xFF
			s.outIdx++
		}
	}
}

func (s *Simulator) loop() {
	for s.out.Poll() {
		if s.paused.Load() {
			// Don't burn cpu while paused.
			time.Sleep(100 * time.Millisecond)
		} else {
			s.RunOneFrame()
		}
		if s.quit.Load() {
			break
		}
		s.handleReset()
	}

	s.out.Close()
}

func (s *Simulator) Run() {
	s.loop()
	log.ModSim.InfoZ("simulation loop exited").End()
}

// RaiseWindow raises the display window above others.
func (s *Simulator) RaiseWindow() {
	s.out.FocusWindow()
}

// Snapshot returns the core registers as of the last completed frame; safe
// to call from any goroutine.
func (s *Simulator) Snapshot() vid.State {
	return *s.state.Load()
}

func (s *Simulator) Output() *vid.Output { return s.out }

// SetMode and SetAmplitude write the control registers, from any goroutine.

func (s *Simulator) SetMode(v uint8)      { s.Ctrl.SetMode(v) }
func (s *Simulator) SetAmplitude(v uint8) { s.Ctrl.SetAmp(v) }

// Screenshot returns the last presented frame.
func (s *Simulator) Screenshot() *image.RGBA { return s.out.Screenshot() }

// SetPause, Reset and Stop control the simulation loop in a
// concurrent-safe way.

func (s *Simulator) SetPause(pause bool) { s.paused.CompareAndSwap(!pause, pause) }
func (s *Simulator) Reset()              { s.reset.Store(true) }
func (s *Simulator) Stop()               { s.quit.Store(true) }

func (s *Simulator) handleReset() {
	if s.reset.CompareAndSwap(true, false) {
		log.ModSim.InfoZ("performing reset").End()
		s.Core.Step(vid.Inputs{Reset: true})
		s.gen.Reset()
		s.outIdx = 0
	}
}
