package paintstore

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // legacy payloads may be PNG-encoded
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/texpaint"
)

// Thickness payload tags. The decoder dispatches on these prefixes; an
// unprefixed payload is the legacy flat float-buffer encoding.
const (
	sparsePrefix = "sparse:"
	rlePrefix    = "rle:"
)

// sparseThreshold is the occupancy ratio below which the sparse encoding
// wins over run-length encoding.
const sparseThreshold = 0.25

// nearZero is the thickness value below which a texel counts as unpainted.
const nearZero = 0.001

// ErrDimensionMismatch reports a decoded thickness buffer whose length
// does not match the live canvas.
var ErrDimensionMismatch = errors.New("paintstore: thickness dimension mismatch")

// EncodeRaster compresses a raster to base64 JPEG at the given quality
// (1-100). JPEG is lossy; color drift stays within the quality budget
// and alpha is irrelevant because rasters are always opaque.
func EncodeRaster(r *texpaint.Raster, quality int) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, r.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("paintstore: jpeg encode: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeRaster decodes a base64 image payload into a raster of the given
// edge length. Payloads recorded at a different canvas size are rescaled
// with Catmull-Rom interpolation.
func DecodeRaster(payload string, size int) (*texpaint.Raster, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("paintstore: raster base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("paintstore: raster decode: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	return texpaint.FromImage(img), nil
}

// EncodeThickness serializes a thickness map. When fewer than 25% of
// texels carry paint, it emits a sparse [index, value] list; otherwise a
// run-length encoding of values. Either way values are quantized to two
// decimals, so decoding reproduces the original within ±0.005.
func EncodeThickness(t *texpaint.ThicknessMap) string {
	data := t.Data()
	painted := 0
	for _, v := range data {
		if v > nearZero {
			painted++
		}
	}

	if float64(painted) < sparseThreshold*float64(len(data)) {
		pairs := make([][2]float64, 0, painted)
		for i, v := range data {
			if v > nearZero {
				pairs = append(pairs, [2]float64{float64(i), quantize(v)})
			}
		}
		return sparsePrefix + mustJSON(pairs)
	}

	runs := make([][2]float64, 0)
	i := 0
	for i < len(data) {
		v := quantize(data[i])
		n := 1
		for i+n < len(data) && quantize(data[i+n]) == v {
			n++
		}
		runs = append(runs, [2]float64{v, float64(n)})
		i += n
	}
	return rlePrefix + mustJSON(runs)
}

// DecodeThickness parses a thickness payload into a map of the given
// dimensions. The payload's tag selects the decoder; an unprefixed
// payload falls back to the legacy flat float-buffer encoding. A decoded
// buffer whose length disagrees with width*height is a dimension
// mismatch error; callers treat any error here as "no saved state".
func DecodeThickness(payload string, width, height int) (*texpaint.ThicknessMap, error) {
	t := texpaint.NewThicknessMap(width, height)
	data := t.Data()

	switch {
	case strings.HasPrefix(payload, sparsePrefix):
		var pairs [][2]float64
		if err := json.Unmarshal([]byte(payload[len(sparsePrefix):]), &pairs); err != nil {
			return nil, fmt.Errorf("paintstore: sparse thickness: %w", err)
		}
		for _, p := range pairs {
			idx := int(p[0])
			if idx < 0 || idx >= len(data) {
				return nil, fmt.Errorf("paintstore: sparse index %d out of range: %w", idx, ErrDimensionMismatch)
			}
			data[idx] = float32(p[1])
		}
		return t, nil

	case strings.HasPrefix(payload, rlePrefix):
		var runs [][2]float64
		if err := json.Unmarshal([]byte(payload[len(rlePrefix):]), &runs); err != nil {
			return nil, fmt.Errorf("paintstore: rle thickness: %w", err)
		}
		i := 0
		for _, run := range runs {
			n := int(run[1])
			if n < 0 || i+n > len(data) {
				return nil, fmt.Errorf("paintstore: rle run overflows buffer: %w", ErrDimensionMismatch)
			}
			v := float32(run[0])
			for j := 0; j < n; j++ {
				data[i+j] = v
			}
			i += n
		}
		if i != len(data) {
			return nil, fmt.Errorf("paintstore: rle covers %d of %d texels: %w", i, len(data), ErrDimensionMismatch)
		}
		return t, nil

	default:
		// Legacy: an unprefixed flat float buffer.
		var flat []float32
		if err := json.Unmarshal([]byte(payload), &flat); err != nil {
			return nil, fmt.Errorf("paintstore: legacy thickness: %w", err)
		}
		if len(flat) != len(data) {
			return nil, fmt.Errorf("paintstore: legacy buffer has %d of %d texels: %w", len(flat), len(data), ErrDimensionMismatch)
		}
		copy(data, flat)
		return t, nil
	}
}

// quantize rounds a thickness value to two decimals.
func quantize(v float32) float64 {
	return math.Round(float64(v)*100) / 100
}

// mustJSON marshals values that cannot fail (plain number slices).
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// rescaleThickness resamples a thickness map to new dimensions with
// nearest-neighbor sampling. Used when a persisted state was recorded at
// a different canvas size than the live surface.
func rescaleThickness(src *texpaint.ThicknessMap, width, height int) *texpaint.ThicknessMap {
	if src.Width() == width && src.Height() == height {
		return src
	}
	dst := texpaint.NewThicknessMap(width, height)
	for y := 0; y < height; y++ {
		sy := y * src.Height() / height
		for x := 0; x < width; x++ {
			sx := x * src.Width() / width
			dst.Data()[y*width+x] = src.At(sx, sy)
		}
	}
	return dst
}
