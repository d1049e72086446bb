package sketch

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixelAlpha blends c over the existing pixel using the given
// coverage alpha (0-255), source-over compositing.
func (p *Pixmap) BlendPixelAlpha(x, y int, c RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if alpha == 255 && c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}

	existing := p.GetPixel(x, y)

	srcAlpha := c.A * float64(alpha) / 255.0
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA <= 0 {
		return
	}
	outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
	outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
	outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
	p.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage returns a copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// view returns the pixmap's buffer as an image.NRGBA sharing the same
// memory. Writes through the view mutate the pixmap.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SetImage overwrites the full pixel buffer from img. Pixels outside
// img's bounds are left untouched; callers restoring a snapshot pass an
// image of matching dimensions.
func (p *Pixmap) SetImage(img image.Image) {
	draw.Draw(p.view(), p.view().Rect, img, img.Bounds().Min, draw.Src)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
