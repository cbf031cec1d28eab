package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"visynth/sim/log"
)

type mode byte

const (
	runMode      mode = iota // Run the display window
	headlessMode             // Run frames without a window
	versionMode              // Show visynth version
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run the display window. (default command)" default:"true"`
		Headless Headless `cmd:"" help:"Run a fixed number of frames without a window."`
		Version  Version  `cmd:"" help:"Show visynth version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		Monitor     int32    `name:"monitor" help:"Monitor index to use." default:"0"`
		CPUProfile  string   `name:"cpuprofile" help:"${cpuprofile_help}" type:"path"`
		Trace       *outfile `name:"trace" help:"Write per-frame state trace." placeholder:"FILE|stdout|stderr"`
		CommandFile string   `name:"cmdfile" help:"${cmdfile_help}" type:"path"`
		WSAddr      string   `name:"ws" help:"${ws_help}" placeholder:"HOST:PORT"`
		Mode        *uint8   `name:"mode" help:"Initial display state (0-5)."`
		Amp         *uint8   `name:"amp" help:"Initial amplitude (0-255)."`
		Port        int      `name:"port" hidden:"true"`
	}

	Headless struct {
		Frames     int      `name:"frames" help:"Number of frames to run." default:"60"`
		Screenshot string   `name:"screenshot" help:"Write the last frame to a PNG file." type:"path"`
		Trace      *outfile `name:"trace" help:"Write per-frame state trace." placeholder:"FILE|stdout|stderr"`
		Mode       *uint8   `name:"mode" help:"Initial display state (0-5)."`
		Amp        *uint8   `name:"amp" help:"Initial amplitude (0-255)."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"cpuprofile_help": "Write CPU profile to file.",
	"cmdfile_help":    "Watch a command file for 'state N' and 'amp N' lines.",
	"ws_help":         "Serve the websocket control endpoint on this address.",
	"log_help":        "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("visynth"),
		kong.Description("Audio-reactive mood display."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "headless":
		cfg.mode = headlessMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") || strings.HasPrefix(ctx.Command(), "headless") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
