// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/linxgo/linx/linx"
	"github.com/linxgo/linx/linx/contrib/filters"
	"github.com/linxgo/linx/linx/contrib/imageio"
)

func newFilterCmd() *cobra.Command {
	var (
		kernel string
		radius int
		output string
		check  bool
		thumb  string
	)

	cmd := &cobra.Command{
		Use:   "filter input.png",
		Short: "apply a spatial filter to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := imageio.ReadPNG(args[0])
			if err != nil {
				return err
			}
			raw := toFloat(in)
			ext := linx.ExtrapolateNearest(raw)
			window := linx.BoxFromCenter(radius, linx.Position{0, 0})

			var out *linx.Raster[float64]
			switch kernel {
			case "mean":
				out = filters.Mean[float64](window).Run(ext)
			case "median":
				out = filters.Median[float64](window).Run(ext)
			case "erode":
				out = filters.Erosion[float64](window).Run(ext)
			case "dilate":
				out = filters.Dilation[float64](window).Run(ext)
			case "sobel":
				out = filters.SobelGradient[float64](2, 0, 1).Run(ext)
			case "laplacian":
				out = filters.Laplacian[float64](2, 1).Run(ext)
			default:
				return fmt.Errorf("unknown kernel %q", kernel)
			}

			if check {
				if kernel != "mean" {
					return fmt.Errorf("--check only validates the mean kernel")
				}
				if err := checkAgainstBild(in, out, radius); err != nil {
					return err
				}
			}

			gray := toGray(out)
			if err := imageio.WritePNG(output, gray); err != nil {
				return err
			}
			if thumb != "" {
				img, err := imageio.ToGray(gray)
				if err != nil {
					return err
				}
				preview := imaging.Thumbnail(img, 128, 128, imaging.Lanczos)
				if err := imaging.Save(preview, thumb); err != nil {
					return fmt.Errorf("save thumbnail: %w", err)
				}
			}
			slog.Debug("filter applied", "kernel", kernel, "radius", radius, "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kernel, "kernel", "k", "mean", "kernel: mean, median, erode, dilate, sobel, laplacian")
	cmd.Flags().IntVarP(&radius, "radius", "r", 1, "window radius")
	cmd.Flags().StringVarP(&output, "output", "o", "filtered.png", "output PNG path")
	cmd.Flags().BoolVar(&check, "check", false, "cross-validate the mean kernel against bild's box blur")
	cmd.Flags().StringVar(&thumb, "thumb", "", "write a 128px preview thumbnail to this path")
	return cmd
}

// checkAgainstBild compares the interior of the mean-filtered raster
// with bild's box blur of the same radius. The borders differ because
// bild clamps its kernel at the edges while the raster side
// extrapolates, so only positions a full window away from the edge are
// compared.
func checkAgainstBild(in *linx.Raster[uint8], out *linx.Raster[float64], radius int) error {
	img, err := imageio.ToGray(in)
	if err != nil {
		return err
	}
	blurred := blur.Box(img, float64(radius))

	inner := out.Domain().ShrunkBy(linx.BoxFromCenter(radius, linx.Position{0, 0}))
	worst := 0.0
	for p := range inner.Positions() {
		ref := color.GrayModel.Convert(blurred.At(p[0], p[1])).(color.Gray).Y
		worst = math.Max(worst, math.Abs(out.At(p)-float64(ref)))
	}
	slog.Info("cross-validation against bild box blur", "radius", radius, "max deviation", worst)
	if worst > 1.5 {
		return fmt.Errorf("mean filter deviates from bild box blur by %.2f gray levels", worst)
	}
	return nil
}
