package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is an offscreen Surface backed by an image.RGBA buffer.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a white-cleared surface of the given pixel size.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.ClearRect(0, 0, float64(width), float64(height))
	return s
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (s *ImageSurface) fill(x, y, w, h float64, c color.RGBA) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	b := s.img.Bounds()
	for py := y0; py < y1; py++ {
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for px := x0; px < x1; px++ {
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			s.img.SetRGBA(px, py, c)
		}
	}
}

func toRGBA(c RGB) color.RGBA {
	return color.RGBA{R: clamp255(c.R), G: clamp255(c.G), B: clamp255(c.B), A: 255}
}

func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	s.fill(x, y, w, h, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c RGB) {
	s.fill(x, y, w, h, toRGBA(c))
}

func (s *ImageSurface) StrokeRect(x, y, w, h float64, c RGB, lineWidth float64) {
	rgba := toRGBA(c)
	s.fill(x, y, w, lineWidth, rgba)
	s.fill(x, y+h-lineWidth, w, lineWidth, rgba)
	s.fill(x, y, lineWidth, h, rgba)
	s.fill(x+w-lineWidth, y, lineWidth, h, rgba)
}

// DrawText renders text with its baseline at (x, y). The face is a fixed
// 7x13 bitmap font, so size only exists for Surface parity with the canvas
// implementation.
func (s *ImageSurface) DrawText(text string, x, y, size float64, c RGB) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(toRGBA(c)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(text)
}

func (s *ImageSurface) DrawImage(img image.Image, x, y, w, h float64) {
	dst := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.ApproxBiLinear.Scale(s.img, dst, img, img.Bounds(), draw.Over, nil)
}

// ToImage exposes the underlying buffer.
func (s *ImageSurface) ToImage() *image.RGBA {
	return s.img
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s.img)
}
