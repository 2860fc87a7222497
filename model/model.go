package model

// Shared types crossing the core / UI-collaborator boundary.

// LoadParameters describes the strip load. The load spans from -B/2 to +B/2
// on the surface. Immutable per computation run.
type LoadParameters struct {
	B float64 `json:"b"` // load half-width basis, m, > 0
	Q float64 `json:"q"` // surface load magnitude, kN/m², > 0
}

// GridSpec controls discretization of the stress field.
// Matrix dimensions: rows = H*S, columns = 2*W*S, symmetric about the
// load centerline.
type GridSpec struct {
	S int `json:"s"` // subdivisions per unit of b
	W int `json:"w"` // half-width of the grid, multiples of b
	H int `json:"h"` // depth of the grid, multiples of b
}

// Env is the parameter frame the UI sends on "env". Zero fields fall back
// to the configured defaults.
type Env struct {
	B             float64 `json:"b"`
	Q             float64 `json:"q"`
	S             int     `json:"s"`
	W             int     `json:"w"`
	H             int     `json:"h"`
	GraphDistance int     `json:"graph_distance"`
	CanvasWidth   int     `json:"canvas_width"`
	CanvasHeight  int     `json:"canvas_height"`
}

// Msg is the websocket frame exchanged with the UI.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
