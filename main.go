package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case runMode:
		runMain(cli.Run)
	case headlessMode:
		headlessMain(cli.Headless)
	case versionMode:
		fmt.Println("visynth", version())
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
