package render

import (
	"image"
	"math"
	"strconv"

	"stripload/model"
	"stripload/stress"
)

// RenderSpec holds the display-only parameters of a render pass. It is not
// part of the physical model.
type RenderSpec struct {
	GraphDistance int // tick-density divisor: grid lines every 1/GraphDistance of b

	// gradient anchors: Low at percent 0, High at percent 1
	Low  RGB
	High RGB

	// Threshold is the visibility cutoff: cells whose stress ratio does not
	// exceed it are not filled. A rendering policy, not a numeric contract;
	// it suppresses visual noise far from the load and cuts fill work on
	// dense grids.
	Threshold float64

	// Indicator is an optional decorative bitmap drawn over the loaded part
	// of the surface line. Not numerically meaningful.
	Indicator image.Image
}

func DefaultSpec() RenderSpec {
	return RenderSpec{
		GraphDistance: model.DefaultGraphDistance,
		Low:           RGB{R: 255, G: 0, B: 0},
		High:          RGB{R: 0, G: 0, B: 255},
		Threshold:     0.085,
	}
}

var (
	black = RGB{R: 0, G: 0, B: 0}
	gray  = RGB{R: 170, G: 170, B: 170}
	dark  = RGB{R: 80, G: 80, B: 80}
)

// Renderer converts a stress field plus display parameters into draw calls
// against a Surface. It keeps no state between Render passes beyond the
// layout derived from the last field.
type Renderer struct {
	surface Surface
	spec    RenderSpec
	layout  Layout
}

func NewRenderer(surface Surface, spec RenderSpec) *Renderer {
	return &Renderer{surface: surface, spec: spec}
}

// Render runs a full pass: clear, field fill, grid outline, legend, load
// indicator.
func (r *Renderer) Render(f *stress.Field) {
	w, h := r.surface.Size()
	r.layout = ComputeLayout(w, h, f.Grid.H, f.Grid.S)
	r.surface.ClearRect(0, 0, float64(w), float64(h))
	r.DrawField(f)
	r.DrawOutline(f)
	r.DrawGradientLegend(f.Load.Q)
	r.drawLoadIndicator(f)
}

// DrawField fills one unit-scaled rectangle per cell, colored by the linear
// gradient over the normalized stress ratio. Cells at or below the
// visibility threshold are skipped.
func (r *Renderer) DrawField(f *stress.Field) {
	l := r.layout
	half := f.Cols / 2
	for iz := 0; iz < f.Rows; iz++ {
		row := f.Cells[iz]
		for ix := 0; ix < f.Cols; ix++ {
			percent := float64(row[ix]) / f.Load.Q
			if percent <= r.spec.Threshold {
				continue
			}
			px, py := l.CoordToPixel(float64(ix-half), float64(iz))
			r.surface.FillRect(px, py, l.UnitScale, l.UnitScale, Lerp(r.spec.Low, r.spec.High, percent))
		}
	}
}

// DrawOutline strokes the plot bounding rectangle and draws the grid lines,
// a light line every 1/GraphDistance of b and a heavier, labeled one at
// every integer-b boundary. Lines falling outside the plot rectangle are
// clipped away.
func (r *Renderer) DrawOutline(f *stress.Field) {
	l := r.layout
	px0, py0, pw, ph := l.PlotRect()
	r.surface.StrokeRect(px0, py0, pw, ph, black, 1)

	s := f.Grid.S
	step := s / r.spec.GraphDistance
	if step < 1 {
		step = 1
	}

	for ix := -f.Grid.W * s; ix <= f.Grid.W*s; ix += step {
		px, _ := l.CoordToPixel(float64(ix), 0)
		if px < px0 || px > px0+pw {
			continue
		}
		if ix%s == 0 {
			label := formatMeters(math.Abs(float64(ix)/float64(s)) * f.Load.B)
			r.surface.DrawText(label, px-7, py0+ph+16, 12, black)
			r.surface.FillRect(px, py0, 1, ph, black)
		} else {
			r.surface.FillRect(px, py0, 0.5, ph, gray)
		}
	}

	for iz := 0; iz <= f.Grid.H*s; iz += step {
		_, py := l.CoordToPixel(0, float64(iz))
		if py < py0 || py > py0+ph {
			continue
		}
		if iz%s == 0 {
			label := formatMeters(float64(iz) / float64(s) * f.Load.B)
			r.surface.DrawText(label, px0-32, py+4, 12, black)
			r.surface.FillRect(px0, py, pw, 1, black)
		} else {
			r.surface.FillRect(px0, py, pw, 0.5, gray)
		}
	}
}

// DrawGradientLegend renders a vertical color bar from percent 100 at the
// top down to 0, colored by the same gradient as the field cells, with a
// tick label every 10%. The topmost tick carries the physical unit.
func (r *Renderer) DrawGradientLegend(q float64) {
	l := r.layout
	_, py0, _, ph := l.PlotRect()
	barX := 0.88 * float64(l.Width)
	barW := 0.02 * float64(l.Width)

	steps := int(ph)
	for i := 0; i < steps; i++ {
		percent := 1 - float64(i)/float64(steps)
		r.surface.FillRect(barX, py0+float64(i), barW, 1, Lerp(r.spec.Low, r.spec.High, percent))
	}
	r.surface.StrokeRect(barX, py0, barW, ph, black, 1)

	for p := 100; p >= 0; p -= 10 {
		y := py0 + (1-float64(p)/100)*ph
		label := strconv.FormatFloat(float64(p)/100*q, 'f', 1, 64)
		if p == 100 {
			label += " kN/m²"
		}
		r.surface.DrawText(label, barX+barW+5, y+4, 12, black)
	}
}

// drawLoadIndicator marks the loaded span [-b/2, b/2] of the surface line.
func (r *Renderer) drawLoadIndicator(f *stress.Field) {
	l := r.layout
	s := float64(f.Grid.S)
	px, _ := l.CoordToPixel(-s/2, 0)
	w := s * l.UnitScale
	r.surface.FillRect(px, l.BaseY-6, w, 6, dark)
	if r.spec.Indicator != nil {
		r.surface.DrawImage(r.spec.Indicator, px, l.BaseY-30, w, 22)
	}
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
