package texpaint

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
)

// CanvasSize is the canonical edge length of a paint raster.
const CanvasSize = 2048

// Raster is the paint color authority: a fixed-size RGBA8 pixel buffer.
// It is always fully opaque; paint depth lives in the parallel
// ThicknessMap, never in the alpha channel.
type Raster struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewRaster creates a raster of the given dimensions, cleared to opaque
// white (a blank canvas).
func NewRaster(width, height int) *Raster {
	r := &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	r.Clear(White)
	return r
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (RGBA format).
func (r *Raster) Data() []uint8 {
	return r.data
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates
// are ignored.
func (r *Raster) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.data[i+0] = uint8(clamp255(c.R * 255))
	r.data[i+1] = uint8(clamp255(c.G * 255))
	r.data[i+2] = uint8(clamp255(c.B * 255))
	r.data[i+3] = uint8(clamp255(c.A * 255))
}

// SetRGBA sets a pixel from raw byte components, bypassing float
// conversion. Island fill uses this so filled texels match the fill
// color exactly. Out-of-range coordinates are ignored.
func (r *Raster) SetRGBA(x, y int, cr, cg, cb, ca uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.data[i+0] = cr
	r.data[i+1] = cg
	r.data[i+2] = cb
	r.data[i+3] = ca
}

// GetPixel returns the color of a single pixel.
func (r *Raster) GetPixel(x, y int) RGBA {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Transparent
	}
	i := (y*r.width + x) * 4
	return RGBA{
		R: float64(r.data[i+0]) / 255,
		G: float64(r.data[i+1]) / 255,
		B: float64(r.data[i+2]) / 255,
		A: float64(r.data[i+3]) / 255,
	}
}

// Clear fills the entire raster with a color.
func (r *Raster) Clear(c RGBA) {
	cr := uint8(clamp255(c.R * 255))
	cg := uint8(clamp255(c.G * 255))
	cb := uint8(clamp255(c.B * 255))
	ca := uint8(clamp255(c.A * 255))

	for i := 0; i < len(r.data); i += 4 {
		r.data[i+0] = cr
		r.data[i+1] = cg
		r.data[i+2] = cb
		r.data[i+3] = ca
	}
}

// Clone returns a deep copy of the raster. Used for history snapshots.
func (r *Raster) Clone() *Raster {
	c := &Raster{
		width:  r.width,
		height: r.height,
		data:   make([]uint8, len(r.data)),
	}
	copy(c.data, r.data)
	return c
}

// CopyFrom overwrites this raster's pixels with those of src.
// Both rasters must have the same dimensions.
func (r *Raster) CopyFrom(src *Raster) {
	if r.width != src.width || r.height != src.height {
		return
	}
	copy(r.data, src.data)
}

// Equal reports whether two rasters have identical dimensions and pixels.
func (r *Raster) Equal(other *Raster) bool {
	return r.width == other.width && r.height == other.height &&
		bytes.Equal(r.data, other.data)
}

// ToImage converts the raster to an image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.data)
	return img
}

// FromImage creates a raster from an image. Alpha is forced to fully
// opaque; a raster never carries transparency.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	r := NewRaster(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			c.A = 1
			r.SetPixel(x, y, c)
		}
	}

	return r
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToImage())
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}
