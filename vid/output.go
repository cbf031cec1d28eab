package vid

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"visynth/sim/log"
)

type OutputConfig struct {
	Width          int
	Height         int
	NumBackBuffers int
	Title          string
	ScaleFactor    int
	DisableVSync   bool
	Monitor        int32
	Shader         string
}

// Output owns the video back buffers and, when video is enabled, the window
// presenting them. Without video it just recycles buffers, which is all the
// headless paths need.
type Output struct {
	framebufidx int
	framebuf    [][]byte
	framecount  int
	last        []byte

	win *window
	cfg OutputConfig
}

func NewOutput(cfg OutputConfig) *Output {
	vb := make([][]byte, cfg.NumBackBuffers)
	for i := range vb {
		vb[i] = make([]byte, cfg.Width*cfg.Height*4)
	}
	return &Output{
		framebuf: vb,
		cfg:      cfg,
	}
}

func (o *Output) EnableVideo(enable bool) error {
	if !enable || o.win != nil {
		return nil
	}
	win, err := newWindow(o.cfg.Title,
		o.cfg.Width, o.cfg.Height, o.cfg.ScaleFactor,
		o.cfg.Monitor, !o.cfg.DisableVSync, o.cfg.Shader)
	if err != nil {
		return err
	}
	o.win = win
	log.ModVid.InfoZ("video output enabled").
		Int("w", o.cfg.Width).
		Int("h", o.cfg.Height).
		String("shader", o.cfg.Shader).
		End()
	return nil
}

// BeginFrame returns the next RGBA back buffer to fill.
func (o *Output) BeginFrame() []byte {
	o.framebufidx++
	if o.framebufidx == o.cfg.NumBackBuffers {
		o.framebufidx = 0
	}
	return o.framebuf[o.framebufidx]
}

// EndFrame presents a filled buffer.
func (o *Output) EndFrame(video []byte) {
	o.framecount++
	o.last = video
	if o.win != nil {
		o.win.blit(video)
	}
}

// Poll pumps window events. It returns false once the user asked to quit.
func (o *Output) Poll() bool {
	if o.win == nil {
		return true
	}
	quit := false
	sdl.Do(func() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					quit = true
				}
			}
		}
	})
	return !quit
}

func (o *Output) FocusWindow() {
	if o.win == nil {
		return
	}
	sdl.Do(func() {
		o.win.Raise()
	})
}

// Screenshot returns a copy of the last presented frame.
func (o *Output) Screenshot() *image.RGBA {
	if o.last == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, o.cfg.Width, o.cfg.Height))
	copy(img.Pix, o.last)
	return img
}

func (o *Output) FrameCount() int { return o.framecount }

func (o *Output) Close() {
	if o.win != nil {
		if err := o.win.Close(); err != nil {
			log.ModVid.WarnZ("window close").Error("err", err).End()
		}
		o.win = nil
	}
}
