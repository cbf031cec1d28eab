// Package rpc lets a host process drive the display: set the control
// registers, pause or reset the simulation and grab screenshots, over
// net/rpc so the host side stays a plain Go client.
package rpc

import (
	"net"

	"visynth/sim/log"
)

var modRPC = log.NewModule("rpc")

// UnusedPort returns a free localhost TCP port.
func UnusedPort() int {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		panic("pickUnusedPort failed: " + err.Error())
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		panic("pickUnusedPort failed: " + err.Error())
	}
	return port
}
