package model

// Default parameters, overridable per key in conf/config.ini and per
// connection through the "env" message.

const (
	// interactive (websocket) resolution
	DefaultSubdivisions = 200
	DefaultWidthInB     = 7
	DefaultHeightInB    = 8

	// standalone (PNG) resolution
	StandaloneSubdivisions = 5000
	StandaloneWidthInB     = 2
	StandaloneHeightInB    = 4

	DefaultGraphDistance = 2
	DefaultCanvasWidth   = 1200
	DefaultCanvasHeight  = 800

	DefaultB = 5.0  // m
	DefaultQ = 10.0 // kN/m²
)
