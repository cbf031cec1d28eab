package rpc

import (
	"image"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"strconv"

	"visynth/vid"
)

// Display is the surface exposed over rpc.
type Display interface {
	SetMode(v uint8)
	SetAmplitude(v uint8)
	Reset()
	SetPause(pause bool)
	Stop()
	Snapshot() vid.State
	Screenshot() *image.RGBA
}

type displayProxy struct {
	d Display
}

func (dp *displayProxy) SetMode(v uint8, _ *struct{}) error      { dp.d.SetMode(v); return nil }
func (dp *displayProxy) SetAmplitude(v uint8, _ *struct{}) error { dp.d.SetAmplitude(v); return nil }
func (dp *displayProxy) Reset(_, _ *struct{}) error              { dp.d.Reset(); return nil }
func (dp *displayProxy) SetPause(pause bool, _ *struct{}) error  { dp.d.SetPause(pause); return nil }
func (dp *displayProxy) Stop(_ *struct{}, _ *struct{}) error     { dp.d.Stop(); return nil }

func (dp *displayProxy) State(_ *struct{}, reply *vid.State) error {
	*reply = dp.d.Snapshot()
	return nil
}

func (dp *displayProxy) Screenshot(_ *struct{}, reply *image.RGBA) error {
	if img := dp.d.Screenshot(); img != nil {
		*reply = *img
	}
	return nil
}

func (dp *displayProxy) IsReady(_ *struct{}, reply *bool) error {
	*reply = true
	return nil
}

type Server struct {
	io.Closer
}

func NewServer(port int, d Display) (*Server, error) {
	proxy := &displayProxy{d: d}
	if err := rpc.RegisterName("display", proxy); err != nil {
		panic("failed to register RPC server: " + err.Error())
	}
	rpc.HandleHTTP()
	l, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, err
	}

	modRPC.InfoZ("rpc server listening").Int("port", port).End()
	go http.Serve(l, nil)
	return &Server{Closer: l}, nil
}
