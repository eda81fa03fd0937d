// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/linxgo/linx/linx"
	"github.com/linxgo/linx/linx/contrib/imageio"
)

func newStatsCmd() *cobra.Command {
	var quantiles []float64

	cmd := &cobra.Command{
		Use:   "stats input.png",
		Short: "print value statistics of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := imageio.ReadPNG(args[0])
			if err != nil {
				return err
			}
			raw := toFloat(in)
			d := linx.DistributionOf(raw)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape:  %v\n", raw.Shape())
			fmt.Fprintf(out, "size:   %d\n", d.Size())
			fmt.Fprintf(out, "min:    %g\n", d.Min())
			fmt.Fprintf(out, "max:    %g\n", d.Max())
			fmt.Fprintf(out, "mean:   %.3f\n", d.Mean())
			fmt.Fprintf(out, "stdev:  %.3f\n", d.Stdev(true))
			fmt.Fprintf(out, "median: %g\n", d.Median())
			fmt.Fprintf(out, "mad:    %g\n", d.Mad())

			cells := lo.Map(quantiles, func(q float64, _ int) string {
				return fmt.Sprintf("q%g=%g", q, d.Quantile(q))
			})
			fmt.Fprintf(out, "quantiles: %s\n", strings.Join(cells, " "))
			return nil
		},
	}

	cmd.Flags().Float64SliceVarP(&quantiles, "quantiles", "q", []float64{0.25, 0.5, 0.75}, "quantiles to report")
	return cmd
}
