// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/linxgo/linx/linx"
)

// ColorMap maps a normalized value in [0, 1] to a color.
type ColorMap func(t float64) colorful.Color

// Gradient builds a color map which blends linearly between evenly
// spaced stops, in Lab space to keep perceived lightness smooth. It
// panics with fewer than two stops.
func Gradient(stops ...colorful.Color) ColorMap {
	if len(stops) < 2 {
		panic("imageio: gradient needs at least two stops")
	}
	return func(t float64) colorful.Color {
		if t <= 0 {
			return stops[0]
		}
		if t >= 1 {
			return stops[len(stops)-1]
		}
		scaled := t * float64(len(stops)-1)
		k := int(scaled)
		return stops[k].BlendLab(stops[k+1], scaled-float64(k)).Clamped()
	}
}

// HeatGradient is the default cold-to-hot map: blue through cyan and
// yellow to red.
var HeatGradient = Gradient(
	colorful.Color{R: 0.0, G: 0.0, B: 0.6},
	colorful.Color{R: 0.0, G: 0.8, B: 0.9},
	colorful.Color{R: 1.0, G: 0.9, B: 0.1},
	colorful.Color{R: 0.8, G: 0.0, B: 0.0},
)

// HeatMap renders a float raster to a false-color image, stretching the
// value range linearly onto the color map. A constant raster maps to
// the middle of the map.
func HeatMap[T linx.Float](r *linx.Raster[T], cm ColorMap) (*image.RGBA, error) {
	if err := check2D(r.Dimension()); err != nil {
		return nil, err
	}
	data := r.Data()
	lo, hi := data[0], data[0]
	for _, v := range data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	scale := 0.0
	if hi > lo {
		scale = 1 / float64(hi-lo)
	}

	w, h := r.Length(0), r.Length(1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	i := 0
	for y := range h {
		for x := range w {
			t := 0.5
			if scale != 0 {
				t = float64(data[i]-lo) * scale
			}
			img.Set(x, y, cm(t).Clamped())
			i++
		}
	}
	return img, nil
}

// WriteHeatMap renders a float raster through the color map and saves
// it as a PNG file.
func WriteHeatMap[T linx.Float](path string, r *linx.Raster[T], cm ColorMap) error {
	img, err := HeatMap(r, cm)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heat map: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode heat map: %w", err)
	}
	return f.Close()
}
