package render

import "image"

// Surface is the abstract raster the renderer draws against. The browser UI
// supplies one backed by an HTML canvas; ImageSurface implements it
// offscreen for the standalone mode and for tests. Coordinates are pixels,
// origin top-left.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64, c RGB, lineWidth float64)
	FillRect(x, y, w, h float64, c RGB)
	DrawText(text string, x, y, size float64, c RGB)
	DrawImage(img image.Image, x, y, w, h float64)
}
