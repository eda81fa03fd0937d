// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Command linx processes 2-d images with the raster toolbox: noise
// generation, spatial filtering, statistics and geometrical warping.
//
// Usage:
//
//	linx noise --type gaussian --stdev 20 --shape 256x256 -o noise.png
//	linx filter input.png --kernel mean --radius 2 -o smooth.png --check
//	linx stats input.png
//	linx warp input.png --rotate 30 --scale 1.5 -o warped.png
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linxgo/linx/linx"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "linx",
		Short:         "raster processing toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newNoiseCmd(), newFilterCmd(), newStatsCmd(), newWarpCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// parseShape parses a WxH flag value such as "256x128".
func parseShape(s string) (linx.Position, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return nil, fmt.Errorf("shape %q: want WxH", s)
	}
	out := make(linx.Position, 2)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("shape %q: bad extent %q", s, p)
		}
		out[i] = n
	}
	return out, nil
}

// toFloat widens an 8-bit raster for processing.
func toFloat(r *linx.Raster[uint8]) *linx.Raster[float64] {
	out := linx.New[float64](r.Shape()...)
	data := out.Data()
	for i, v := range r.Data() {
		data[i] = float64(v)
	}
	return out
}

// toGray quantizes a float raster back to 8 bits, clamping out-of-range
// values.
func toGray(r *linx.Raster[float64]) *linx.Raster[uint8] {
	out := linx.New[uint8](r.Shape()...)
	data := out.Data()
	for i, v := range r.Data() {
		data[i] = uint8(math.Round(min(max(v, 0), 255)))
	}
	return out
}
