// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/linxgo/linx/linx"
	"github.com/linxgo/linx/linx/contrib/geometry"
	"github.com/linxgo/linx/linx/contrib/imageio"
)

func newWarpCmd() *cobra.Command {
	var (
		rotate float64
		scale  float64
		shift  []float64
		method string
		output string
	)

	cmd := &cobra.Command{
		Use:   "warp input.png",
		Short: "rotate, scale or shift an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(shift) != 2 {
				return fmt.Errorf("--shift wants two components, got %d", len(shift))
			}
			if scale == 0 {
				return fmt.Errorf("--scale must be nonzero")
			}

			in, err := imageio.ReadPNG(args[0])
			if err != nil {
				return err
			}
			raw := toFloat(in)

			var interp linx.InterpolationMethod
			switch method {
			case "nearest":
				interp = linx.NearestInterp
			case "linear":
				interp = linx.LinearInterp
			case "cubic":
				interp = linx.CubicInterp
			default:
				return fmt.Errorf("unknown interpolation %q", method)
			}

			domain := raw.Domain()
			center := make(linx.Vector[float64], 2)
			for i := range center {
				center[i] = float64(domain.Front()[i]+domain.Back()[i]) / 2
			}
			a := geometry.NewAffinity(center).
				RotateDegrees(rotate, 0, 1).
				ScaleScalar(scale).
				Translate(shift)

			ext := linx.ExtrapolateConstant(raw, 0)
			out := geometry.Warp(linx.Interpolate[float64](ext, interp), a)
			slog.Debug("warp applied", "rotate", rotate, "scale", scale, "shift", shift)
			return imageio.WritePNG(output, toGray(out))
		},
	}

	cmd.Flags().Float64Var(&rotate, "rotate", 0, "rotation angle in degrees")
	cmd.Flags().Float64Var(&scale, "scale", 1, "isotropic scale factor")
	cmd.Flags().Float64SliceVar(&shift, "shift", []float64{0, 0}, "translation in pixels, x,y")
	cmd.Flags().StringVarP(&method, "interp", "i", "linear", "interpolation: nearest, linear, cubic")
	cmd.Flags().StringVarP(&output, "output", "o", "warped.png", "output PNG path")
	return cmd
}
