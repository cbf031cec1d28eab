package control

import (
	"encoding/json"
	"testing"

	"visynth/vid"
)

func TestWSDispatch(t *testing.T) {
	b := NewBlock(0, 0)
	s := NewWSServer("", b, func() vid.State {
		return vid.State{Mode: vid.ModeListen}
	})

	resp := s.dispatch(WSRequest{Event: "set-state", Data: json.RawMessage("3")})
	if resp.Event != "ok" {
		t.Errorf("set-state response = %q, want ok", resp.Event)
	}
	if b.Mode() != 3 {
		t.Errorf("Mode() = %d, want 3", b.Mode())
	}

	resp = s.dispatch(WSRequest{Event: "set-amplitude", Data: json.RawMessage("120")})
	if resp.Event != "ok" {
		t.Errorf("set-amplitude response = %q, want ok", resp.Event)
	}
	if b.Amp() != 120 {
		t.Errorf("Amp() = %d, want 120", b.Amp())
	}

	resp = s.dispatch(WSRequest{Event: "get-state"})
	if resp.Event != "state" {
		t.Fatalf("get-state response = %q, want state", resp.Event)
	}
	if st, ok := resp.Data.(vid.State); !ok || st.Mode != vid.ModeListen {
		t.Errorf("get-state data = %+v", resp.Data)
	}

	resp = s.dispatch(WSRequest{Event: "self-destruct"})
	if resp.Event != "error" {
		t.Errorf("unknown event response = %q, want error", resp.Event)
	}

	resp = s.dispatch(WSRequest{Event: "set-state", Data: json.RawMessage(`"high"`)})
	if resp.Event != "error" {
		t.Errorf("bad payload response = %q, want error", resp.Event)
	}
}
