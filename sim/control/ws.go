package control

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"visynth/sim/log"
	"visynth/vid"
)

// A host and the display communicate over a websocket connection with a
// simple protocol. On connect the display pushes its current state, after
// which it answers every host request (WSRequest) with a WSResponse.

// WSRequest is a host->display request.
type WSRequest struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSResponse is a display->host response.
type WSResponse struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

var upgrader = websocket.Upgrader{
	// The control endpoint binds to localhost, same-origin checks would
	// only get in the way of local tooling.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSServer exposes the control block over a websocket endpoint.
type WSServer struct {
	addr  string
	block *Block
	state func() vid.State
}

func NewWSServer(addr string, block *Block, state func() vid.State) *WSServer {
	return &WSServer{addr: addr, block: block, state: state}
}

func (s *WSServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/control", s.handle)

	srv := &http.Server{Addr: s.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()

	log.ModCtrl.InfoZ("websocket control listening").String("addr", s.addr).End()
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WSServer) handle(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ModCtrl.WarnZ("websocket upgrade failed").Error("err", err).End()
		return
	}
	defer ws.Close()

	if err := s.drive(ws); err != nil {
		log.ModCtrl.DebugZ("websocket connection closed").Error("err", err).End()
	}
}

func (s *WSServer) drive(ws *websocket.Conn) error {
	log.ModCtrl.DebugZ("control connection initiated").End()

	// First message is always the current state.
	if err := ws.WriteJSON(WSResponse{Event: "state", Data: s.state()}); err != nil {
		return err
	}

	for {
		var req WSRequest
		if err := ws.ReadJSON(&req); err != nil {
			return err
		}

		log.ModCtrl.DebugZ("received control message").
			String("event", req.Event).
			String("data", string(req.Data)).
			End()

		resp := s.dispatch(req)
		if err := ws.WriteJSON(resp); err != nil {
			return err
		}
	}
}

func (s *WSServer) dispatch(req WSRequest) WSResponse {
	switch req.Event {
	case "set-state":
		var v uint8
		if err := json.Unmarshal(req.Data, &v); err != nil {
			return errResponse(err)
		}
		s.block.SetMode(v)
		return WSResponse{Event: "ok"}

	case "set-amplitude":
		var v uint8
		if err := json.Unmarshal(req.Data, &v); err != nil {
			return errResponse(err)
		}
		s.block.SetAmp(v)
		return WSResponse{Event: "ok"}

	case "get-state":
		return WSResponse{Event: "state", Data: s.state()}
	}

	return errResponse(fmt.Errorf("unknown event %q", req.Event))
}

func errResponse(err error) WSResponse {
	return WSResponse{Event: "error", Data: err.Error()}
}
