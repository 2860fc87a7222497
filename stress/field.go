package stress

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"stripload/model"
)

// surfaceEpsilon stands in for z = 0 in the surface row. The angle terms
// divide by z, so the surface itself is singular; at this depth the formula
// is within float rounding of its z -> 0 limit (q under the load, 0 outside).
const surfaceEpsilon = 1e-9

// Field is the computed grid of vertical stress values, indexed
// [depthIndex][horizontalIndex]. Depth grows downward from the surface,
// horizontal index 0 sits at the leftmost extent and Cols/2 on the load
// centerline. A Field is built once per parameter set and read-only
// afterwards; any parameter change rebuilds it from scratch.
type Field struct {
	Load model.LoadParameters
	Grid model.GridSpec

	Rows  int
	Cols  int
	Cells [][]float32
}

func newField(load model.LoadParameters, grid model.GridSpec) *Field {
	f := &Field{
		Load: load,
		Grid: grid,
		Rows: grid.H * grid.S,
		Cols: 2 * grid.W * grid.S,
	}
	f.Cells = make([][]float32, f.Rows)
	for iz := range f.Cells {
		f.Cells[iz] = make([]float32, f.Cols)
	}
	return f
}

// CellSize returns the physical edge length of one grid cell, b/s.
func (f *Field) CellSize() float64 {
	return f.Load.B / float64(f.Grid.S)
}

// Depth maps a depth index to meters below the surface.
func (f *Field) Depth(iz int) float64 {
	if iz == 0 {
		return surfaceEpsilon
	}
	return float64(iz) * f.CellSize()
}

// Offset maps a horizontal index to a signed offset from the load
// centerline in meters.
func (f *Field) Offset(ix int) float64 {
	return float64(ix-f.Cols/2) * f.CellSize()
}

// BuildField evaluates the stress at every grid cell in row-major order.
// This is an O(h·w·s²) dense evaluation and the dominant cost of the whole
// system, so the loop-invariant factors (cell size, b/2, q/π) are hoisted
// out of the inner loop.
func BuildField(load model.LoadParameters, grid model.GridSpec) *Field {
	start := time.Now()
	f := newField(load, grid)
	f.fillRows(0, f.Rows)
	log.WithFields(log.Fields{
		"b":    load.B,
		"q":    load.Q,
		"rows": f.Rows,
		"cols": f.Cols,
		"took": time.Since(start),
	}).Info("stress field built")
	return f
}

func (f *Field) fillRows(first, last int) {
	cell := f.CellSize()
	halfB := f.Load.B / 2
	qOverPi := f.Load.Q / math.Pi
	half := f.Cols / 2

	for iz := first; iz < last; iz++ {
		z := float64(iz) * cell
		if iz == 0 {
			z = surfaceEpsilon
		}
		row := f.Cells[iz]
		for ix := 0; ix < f.Cols; ix++ {
			x := float64(ix-half) * cell
			row[ix] = float32(stressAt(x, z, halfB, qOverPi))
		}
	}
}
