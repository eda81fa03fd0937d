// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/linxgo/linx/linx"
	"github.com/linxgo/linx/linx/contrib/imageio"
)

func newNoiseCmd() *cobra.Command {
	var (
		kind   string
		seed   uint64
		mean   float64
		stdev  float64
		lo     float64
		hi     float64
		prob   float64
		shape  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "noise [input.png]",
		Short: "generate a noise image or add noise to an input image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var base *linx.Raster[float64]
			if len(args) == 1 {
				in, err := imageio.ReadPNG(args[0])
				if err != nil {
					return err
				}
				base = toFloat(in)
			} else {
				s, err := parseShape(shape)
				if err != nil {
					return err
				}
				base = linx.New[float64](s...).Fill(mean)
			}

			var gen linx.NoiseGenerator[float64]
			switch kind {
			case "gaussian":
				gen = linx.NewGaussianNoise[float64](seed, 0, stdev)
			case "poisson":
				gen = linx.NewStablePoissonNoise[float64](seed, 0)
			case "uniform":
				gen = linx.NewUniformNoise[float64](seed, lo, hi)
			case "saltpepper":
				gen = linx.SaltAndPepper[float64](seed, 0, 255, prob)
			default:
				return fmt.Errorf("unknown noise type %q", kind)
			}

			linx.AddNoise(base, gen)
			slog.Debug("noise applied", "type", kind, "shape", base.Shape(), "seed", seed)
			return imageio.WritePNG(output, toGray(base))
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "gaussian", "noise type: gaussian, poisson, uniform, saltpepper")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().Float64Var(&mean, "mean", 128, "background level when generating from scratch")
	cmd.Flags().Float64Var(&stdev, "stdev", 16, "gaussian standard deviation")
	cmd.Flags().Float64Var(&lo, "min", -16, "uniform noise lower bound")
	cmd.Flags().Float64Var(&hi, "max", 16, "uniform noise upper bound")
	cmd.Flags().Float64Var(&prob, "prob", 0.05, "salt-and-pepper probability per polarity")
	cmd.Flags().StringVar(&shape, "shape", "256x256", "output shape when no input is given")
	cmd.Flags().StringVarP(&output, "output", "o", "noise.png", "output PNG path")
	return cmd
}
