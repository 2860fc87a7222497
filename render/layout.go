package render

// Layout anchors the plot in pixel space. Center is the horizontal center of
// the graph (45% of the canvas width), BaseY its top edge (10% of the canvas
// height), and UnitScale the pixel edge length of one grid cell, chosen so
// the full grid depth spans 80% of the canvas height.
type Layout struct {
	Center    float64
	BaseY     float64
	UnitScale float64

	Width  int
	Height int
}

func ComputeLayout(canvasWidth, canvasHeight, gridHeightInB, subdivisions int) Layout {
	w := float64(canvasWidth)
	h := float64(canvasHeight)
	return Layout{
		Center:    0.45 * w,
		BaseY:     0.10 * h,
		UnitScale: 0.8 * h / float64(gridHeightInB*subdivisions),
		Width:     canvasWidth,
		Height:    canvasHeight,
	}
}

// CoordToPixel maps a grid coordinate (x cells from the load centerline,
// z cells below the surface) to pixel space.
func (l Layout) CoordToPixel(x, z float64) (px, py float64) {
	return l.Center + x*l.UnitScale, l.BaseY + z*l.UnitScale
}

// PixelToCoord is the inverse of CoordToPixel.
func (l Layout) PixelToCoord(px, py float64) (x, z float64) {
	return (px - l.Center) / l.UnitScale, (py - l.BaseY) / l.UnitScale
}

// PlotRect returns the plot bounding rectangle in pixels: 80% of the canvas
// width centered on Center, 80% of the canvas height below BaseY.
func (l Layout) PlotRect() (x, y, w, h float64) {
	return l.Center - 0.4*float64(l.Width), l.BaseY, 0.8 * float64(l.Width), 0.8 * float64(l.Height)
}
