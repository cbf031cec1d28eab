package control

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"visynth/sim/log"
)

const pollInterval = 50 * time.Millisecond

// Watcher polls a command file for host commands, one per line:
//
//	state <0-7>
//	amp <0-255>
//
// The file is re-read whenever its content changes. This is the protocol
// the original host controller speaks, kept so existing tooling works
// unchanged.
type Watcher struct {
	path  string
	block *Block

	last string
}

func NewWatcher(path string, block *Block) *Watcher {
	return &Watcher{path: path, block: block}
}

func (w *Watcher) Run(ctx context.Context) error {
	log.ModCtrl.InfoZ("watching command file").String("path", w.path).End()

	tick := time.NewTicker(pollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			w.poll()
		}
	}
}

func (w *Watcher) poll() {
	buf, err := os.ReadFile(w.path)
	if err != nil {
		// The file may not exist yet, or be mid-write. Try again later.
		return
	}
	content := string(buf)
	if content == w.last {
		return
	}
	w.last = content

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w.apply(line)
	}
}

func (w *Watcher) apply(cmd string) {
	verb, arg, ok := strings.Cut(cmd, " ")
	if !ok {
		log.ModCtrl.WarnZ("malformed command").String("cmd", cmd).End()
		return
	}
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 8)
	if err != nil {
		log.ModCtrl.WarnZ("malformed command argument").
			String("cmd", cmd).
			Error("err", err).
			End()
		return
	}

	switch verb {
	case "state":
		w.block.SetMode(uint8(n))
	case "amp":
		w.block.SetAmp(uint8(n))
	default:
		log.ModCtrl.WarnZ("unknown command").String("cmd", cmd).End()
	}
}
