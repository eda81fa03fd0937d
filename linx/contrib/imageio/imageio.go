// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package imageio converts 2-d rasters to and from images on disk.
//
// The first raster axis is the image x coordinate and the second the
// image y coordinate, so a raster of shape {w, h} maps to a w by h
// image. 8-bit rasters go through PNG, 16-bit rasters through TIFF, and
// float rasters can be rendered to false-color heat maps.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/tiff"

	"github.com/linxgo/linx/linx"
)

// FromGray converts an image to an 8-bit raster of shape
// {width, height}, collapsing color images to luma.
func FromGray(img image.Image) *linx.Raster[uint8] {
	b := img.Bounds()
	out := linx.New[uint8](b.Dx(), b.Dy())
	data := out.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data[i] = gray8(img, x, y)
			i++
		}
	}
	return out
}

// FromGray16 converts an image to a 16-bit raster of shape
// {width, height}.
func FromGray16(img image.Image) *linx.Raster[uint16] {
	b := img.Bounds()
	out := linx.New[uint16](b.Dx(), b.Dy())
	data := out.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data[i] = color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
			i++
		}
	}
	return out
}

func gray8(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

// ToGray converts an 8-bit raster to a grayscale image.
func ToGray(r *linx.Raster[uint8]) (*image.Gray, error) {
	if err := check2D(r.Dimension()); err != nil {
		return nil, err
	}
	w, h := r.Length(0), r.Length(1)
	img := image.NewGray(image.Rect(0, 0, w, h))
	data := r.Data()
	for i, v := range data {
		img.Pix[i] = v
	}
	return img, nil
}

// ToGray16 converts a 16-bit raster to a grayscale image.
func ToGray16(r *linx.Raster[uint16]) (*image.Gray16, error) {
	if err := check2D(r.Dimension()); err != nil {
		return nil, err
	}
	w, h := r.Length(0), r.Length(1)
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for i, v := range r.Data() {
		img.Pix[2*i] = uint8(v >> 8)
		img.Pix[2*i+1] = uint8(v)
	}
	return img, nil
}

func check2D(dim int) error {
	if dim != 2 {
		return &linx.SizeMismatchError{Name: "image raster dimension", Expected: 2, Actual: dim}
	}
	return nil
}

// ReadPNG loads a PNG file as an 8-bit raster.
func ReadPNG(path string) (*linx.Raster[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open png: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromGray(img), nil
}

// WritePNG saves an 8-bit raster as a grayscale PNG file.
func WritePNG(path string, r *linx.Raster[uint8]) error {
	img, err := ToGray(r)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// ReadTIFF loads a TIFF file as a 16-bit raster.
func ReadTIFF(path string) (*linx.Raster[uint16], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tiff: %w", err)
	}
	defer f.Close()
	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tiff: %w", err)
	}
	return FromGray16(img), nil
}

// WriteTIFF saves a 16-bit raster as a grayscale TIFF file with
// deflate compression.
func WriteTIFF(path string, r *linx.Raster[uint16]) error {
	img, err := ToGray16(r)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tiff: %w", err)
	}
	defer f.Close()
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(f, img, opts); err != nil {
		return fmt.Errorf("encode tiff: %w", err)
	}
	return f.Close()
}
