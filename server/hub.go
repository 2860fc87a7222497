package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"stripload/config"
	"stripload/model"
	"stripload/render"
	"stripload/stress"
)

// Hub owns one client connection: it consumes parameter frames and answers
// "start" with a freshly computed and rendered field. Every run recomputes
// from scratch; nothing is cached between parameter changes.
//
// env belongs to the handleRequest goroutine alone; a "start" passes a copy
// of it through the started channel, so a build never reads the mutable
// struct while later env frames land.
type Hub struct {
	conn *websocket.Conn
	env  model.Env

	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Env
	stopped chan model.Msg
	done    chan struct{}
}

func NewHub(conn *websocket.Conn) *Hub {
	return &Hub{
		conn:    conn,
		env:     defaultEnv(),
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Env, 10),
		stopped: make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func defaultEnv() model.Env {
	return model.Env{
		B:             config.Cfg.B,
		Q:             config.Cfg.Q,
		S:             config.Cfg.Subdivisions,
		W:             config.Cfg.WidthInB,
		H:             config.Cfg.HeightInB,
		GraphDistance: config.Cfg.GraphDistance,
		CanvasWidth:   config.Cfg.CanvasWidth,
		CanvasHeight:  config.Cfg.CanvasHeight,
	}
}

// applyEnv merges a client frame over the current parameters; zero fields
// keep their previous value.
func (h *Hub) applyEnv(env model.Env) {
	if env.B > 0 {
		h.env.B = env.B
	}
	if env.Q > 0 {
		h.env.Q = env.Q
	}
	if env.S > 0 {
		h.env.S = env.S
	}
	if env.W > 0 {
		h.env.W = env.W
	}
	if env.H > 0 {
		h.env.H = env.H
	}
	if env.GraphDistance > 0 {
		h.env.GraphDistance = env.GraphDistance
	}
	if env.CanvasWidth > 0 {
		h.env.CanvasWidth = env.CanvasWidth
	}
	if env.CanvasHeight > 0 {
		h.env.CanvasHeight = env.CanvasHeight
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		switch msg.Type {
		case "env":
			var env model.Env
			if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
				log.WithField("err", err).Error("bad env frame")
				continue
			}
			h.applyEnv(env)
			log.WithFields(log.Fields{
				"b": h.env.B,
				"q": h.env.Q,
				"s": h.env.S,
				"w": h.env.W,
				"h": h.env.H,
			}).Info("parameters set")
			h.envSet <- model.Msg{Type: "envSet", Content: "env is set"}
		case "start":
			h.started <- h.env
		case "stop":
			h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
		default:
			log.WithField("type", msg.Type).Warn("no such type")
		}
	}
	close(h.done)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.envSet:
			h.write(reply)
		case env := <-h.started:
			data, err := h.buildPayload(env)
			if err != nil {
				log.WithField("err", err).Error("payload build failed")
				continue
			}
			h.write(model.Msg{Type: "started", Content: string(data)})
		case reply := <-h.stopped:
			h.write(reply)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithField("err", err).Error("write failed")
	}
}

// Payload is the "started" response body: the quantized field for any
// downstream consumer plus the rendered chart as a base64 PNG.
type Payload struct {
	B     float64             `json:"b"`
	Q     float64             `json:"q"`
	Field stress.EncodedField `json:"field"`
	Image string              `json:"image"`
}

func (h *Hub) buildPayload(env model.Env) ([]byte, error) {
	load := model.LoadParameters{B: env.B, Q: env.Q}
	grid := model.GridSpec{S: env.S, W: env.W, H: env.H}
	f := stress.BuildFieldConcurrently(load, grid, config.Cfg.Workers)

	surface := render.NewImageSurface(env.CanvasWidth, env.CanvasHeight)
	spec := render.DefaultSpec()
	spec.GraphDistance = env.GraphDistance
	render.NewRenderer(surface, spec).Render(f)

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.ToImage()); err != nil {
		return nil, err
	}

	return json.Marshal(Payload{
		B:     load.B,
		Q:     load.Q,
		Field: stress.EncodeField(f),
		Image: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
