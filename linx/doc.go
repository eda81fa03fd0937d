// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package linx provides dense N-dimensional arrays (rasters) and the region
// and view algebra needed for numeric image and signal processing.
//
// The data model is built from a handful of small types:
//
//   - Vector and Position: coordinate tuples with element-wise arithmetic.
//   - Box, Grid, Line, Mask, Sequence: regions, i.e. enumerable sets of
//     positions. All iterate in row-major order (axis 0 varies fastest).
//   - Raster: a dense row-major container of any numeric element type,
//     with owning, borrowing, or SIMD-aligned storage.
//   - Patch: a non-owning view of a raster (or of an extrapolator)
//     restricted to a region. Patches translate in O(1) and pick their
//     iteration strategy from the parent and region kinds.
//   - Extrapolator and Interpolator: read-only decorators which define
//     values outside the raster domain and at non-integral positions.
//
// Spatial filters, Fourier transforms, geometric warping, parallel tiling
// and image adapters live in the contrib packages and are thin clients of
// these abstractions.
//
// Basic usage:
//
//	r := linx.New[int32](3, 2)
//	r.Range(0, 1)                   // 0, 1, 2, 3, 4, 5
//	v := r.At(linx.Position{2, 1})  // 5
//
//	ex := linx.ExtrapolateConstant(r, 0)
//	_ = ex.At(linx.Position{-1, -1}) // 0
package linx
