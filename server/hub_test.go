package server

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"stripload/config"
	"stripload/model"
)

func TestApplyEnvMergesOverDefaults(t *testing.T) {
	h := NewHub(nil)
	h.applyEnv(model.Env{B: 3, S: 50})

	if h.env.B != 3 || h.env.S != 50 {
		t.Errorf("explicit fields not applied: %+v", h.env)
	}
	if h.env.Q <= 0 || h.env.W <= 0 || h.env.H <= 0 {
		t.Errorf("zero fields lost their defaults: %+v", h.env)
	}
}

func TestStartSnapshotsParameters(t *testing.T) {
	h := NewHub(nil)
	go h.handleRequest()
	defer close(h.msg)

	// an env frame arriving after a start must not affect that start's build
	h.msg <- model.Msg{Type: "start"}
	h.msg <- model.Msg{Type: "env", Content: `{"b":3,"s":50}`}

	first := <-h.started
	if first.B != config.Cfg.B || first.S != config.Cfg.Subdivisions {
		t.Errorf("first snapshot = %+v, want the defaults in effect at start", first)
	}
	<-h.envSet

	h.msg <- model.Msg{Type: "start"}
	second := <-h.started
	if second.B != 3 || second.S != 50 {
		t.Errorf("second snapshot = %+v, want the updated parameters", second)
	}
}

func TestWorkersExitWhenRequestsEnd(t *testing.T) {
	h := NewHub(nil)
	requestDone := make(chan struct{})
	responseDone := make(chan struct{})
	go func() {
		h.handleRequest()
		close(requestDone)
	}()
	go func() {
		h.handleResponse()
		close(responseDone)
	}()

	close(h.msg)

	for name, ch := range map[string]chan struct{}{
		"handleRequest":  requestDone,
		"handleResponse": responseDone,
	} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("%s still running after the request channel closed", name)
		}
	}
}

func TestBuildPayload(t *testing.T) {
	h := NewHub(nil)
	h.applyEnv(model.Env{B: 5, Q: 10, S: 5, W: 1, H: 1, CanvasWidth: 200, CanvasHeight: 200})

	data, err := h.buildPayload(h.env)
	if err != nil {
		t.Fatal(err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatal(err)
	}
	if p.Field.Rows != 5 || p.Field.Cols != 10 {
		t.Errorf("payload field is %dx%d, want 5x10", p.Field.Rows, p.Field.Cols)
	}
	if p.Q != 10 {
		t.Errorf("payload q = %v, want 10", p.Q)
	}
	if _, err := base64.StdEncoding.DecodeString(p.Image); err != nil || p.Image == "" {
		t.Errorf("payload image is not valid base64 PNG data")
	}
}
