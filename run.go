package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"visynth/sim"
	"visynth/sim/control"
	"visynth/sim/rpc"
	"visynth/vid"
)

// runMain runs the display window until the user closes it.
func runMain(args Run) {
	var exitcode int
	sdl.Main(func() {
		cfg := sim.LoadConfigOrDefault()

		var traceout io.WriteCloser
		if args.Trace != nil {
			traceout = args.Trace
			defer traceout.Close()
		}

		cfg.TraceOut = traceout
		cfg.Video.Monitor = args.Monitor
		applyLevels(&cfg, args.Mode, args.Amp)
		if args.CommandFile != "" {
			cfg.Control.CommandFile = args.CommandFile
		}
		if args.WSAddr != "" {
			cfg.Control.WSAddr = args.WSAddr
		}
		if args.Port != 0 {
			cfg.Control.RPCPort = args.Port
		}

		display, err := sim.Launch(cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start display: %v\n", err)
			exitcode = 1
			return
		}

		if args.CPUProfile != "" {
			f, err := os.Create(args.CPUProfile)
			checkf(err, "failed to create cpu profile file")
			checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
			defer func() {
				pprof.StopCPUProfile()
				f.Close()
				fmt.Println("CPU profile written to", args.CPUProfile)
			}()
		}

		if cfg.Control.RPCPort != 0 {
			server, err := rpc.NewServer(cfg.Control.RPCPort, display)
			if err != nil {
				fmt.Fprintf(os.Stderr, "RPC error: %v", err)
				exitcode = 1
				return
			}
			defer server.Close()
		}

		ctx, cancel := context.WithCancel(context.Background())
		g, ctx := errgroup.WithContext(ctx)
		if cfg.Control.CommandFile != "" {
			w := control.NewWatcher(cfg.Control.CommandFile, display.Ctrl)
			g.Go(func() error { return w.Run(ctx) })
		}
		if cfg.Control.WSAddr != "" {
			ws := control.NewWSServer(cfg.Control.WSAddr, display.Ctrl, display.Snapshot)
			g.Go(func() error { return ws.Run(ctx) })
		}

		display.Run()

		cancel()
		if err := g.Wait(); err != nil {
			fmt.Fprintf(os.Stderr, "control driver error: %v\n", err)
			exitcode = 1
		}
	})
	os.Exit(exitcode)
}

// headlessMain runs a fixed number of frames without opening a window.
func headlessMain(args Headless) {
	cfg := sim.LoadConfigOrDefault()

	var traceout io.WriteCloser
	if args.Trace != nil {
		traceout = args.Trace
		defer traceout.Close()
	}

	cfg.TraceOut = traceout
	applyLevels(&cfg, args.Mode, args.Amp)

	display, err := sim.Launch(cfg, false)
	checkf(err, "failed to start display")

	for range args.Frames {
		display.RunOneFrame()
	}

	if args.Screenshot != "" {
		img := display.Screenshot()
		if img == nil {
			fatalf("no frame to screenshot")
		}
		checkf(vid.SaveAsPNG(img, args.Screenshot), "failed to write screenshot")
		fmt.Println("screenshot written to", args.Screenshot)
	}
}

func applyLevels(cfg *sim.Config, mode, amp *uint8) {
	if mode != nil {
		cfg.Display.Mode = *mode
	}
	if amp != nil {
		cfg.Display.Amplitude = *amp
	}
}
