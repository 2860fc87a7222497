package config

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"stripload/model"
)

var Cfg Config

type Config struct {
	Addr string

	B float64
	Q float64

	Subdivisions  int
	WidthInB      int
	HeightInB     int
	GraphDistance int

	StandaloneSubdivisions int
	StandaloneWidthInB     int
	StandaloneHeightInB    int

	CanvasWidth  int
	CanvasHeight int

	Workers int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.WithField("err", err).Warn("config file not found, using defaults")
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	server := file.Section("server")
	field := file.Section("field")
	render := file.Section("render")

	Cfg = Config{
		Addr: server.Key("Addr").MustString(":9000"),

		B: field.Key("B").MustFloat64(model.DefaultB),
		Q: field.Key("Q").MustFloat64(model.DefaultQ),

		Subdivisions:  field.Key("Subdivisions").MustInt(model.DefaultSubdivisions),
		WidthInB:      field.Key("WidthInB").MustInt(model.DefaultWidthInB),
		HeightInB:     field.Key("HeightInB").MustInt(model.DefaultHeightInB),
		GraphDistance: render.Key("GraphDistance").MustInt(model.DefaultGraphDistance),

		StandaloneSubdivisions: field.Key("StandaloneSubdivisions").MustInt(model.StandaloneSubdivisions),
		StandaloneWidthInB:     field.Key("StandaloneWidthInB").MustInt(model.StandaloneWidthInB),
		StandaloneHeightInB:    field.Key("StandaloneHeightInB").MustInt(model.StandaloneHeightInB),

		CanvasWidth:  render.Key("CanvasWidth").MustInt(model.DefaultCanvasWidth),
		CanvasHeight: render.Key("CanvasHeight").MustInt(model.DefaultCanvasHeight),

		Workers: field.Key("Workers").MustInt(4),
	}
}
