package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"stripload/config"
	"stripload/model"
	"stripload/render"
	"stripload/server"
	"stripload/stress"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	addr := flag.String("addr", config.Cfg.Addr, "listen address")
	out := flag.String("png", "", "render one chart to this file and exit")
	b := flag.Float64("b", config.Cfg.B, "load half-width basis, m")
	q := flag.Float64("q", config.Cfg.Q, "surface load, kN/m²")
	flag.Parse()

	if *out != "" {
		if err := renderStandalone(*out, *b, *q); err != nil {
			log.WithField("err", err).Fatal("standalone render failed")
		}
		log.WithField("path", *out).Info("chart written")
		return
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(*addr, upgrader)
	s.Serve()
}

// renderStandalone runs one build+render pass at standalone resolution and
// writes the chart to a PNG.
func renderStandalone(path string, b, q float64) error {
	load := model.LoadParameters{B: b, Q: q}
	grid := model.GridSpec{
		S: config.Cfg.StandaloneSubdivisions,
		W: config.Cfg.StandaloneWidthInB,
		H: config.Cfg.StandaloneHeightInB,
	}
	f := stress.BuildFieldConcurrently(load, grid, config.Cfg.Workers)

	surface := render.NewImageSurface(config.Cfg.CanvasWidth, config.Cfg.CanvasHeight)
	render.NewRenderer(surface, render.DefaultSpec()).Render(f)
	return surface.SavePNG(path)
}
