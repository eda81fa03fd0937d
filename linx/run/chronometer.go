// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package run provides benchmarking helpers for raster pipelines.
package run

import (
	"time"

	"github.com/linxgo/linx/linx"
)

// Chronometer measures a sequence of time increments. Each Start/Stop
// pair records one increment and grows the total elapsed time; the
// recorded increments feed simple statistics. An offset seeds the
// elapsed time without affecting the increments.
type Chronometer struct {
	now        func() time.Time
	tic        time.Time
	running    bool
	increments []time.Duration
	elapsed    time.Duration
}

// NewChronometer creates a stopped chronometer whose elapsed time
// starts at offset.
func NewChronometer(offset time.Duration) *Chronometer {
	return &Chronometer{now: time.Now, elapsed: offset}
}

// Reset empties the increments and sets the elapsed time to offset.
func (c *Chronometer) Reset(offset time.Duration) {
	c.running = false
	c.increments = c.increments[:0]
	c.elapsed = offset
}

// Start starts or restarts the chronometer.
func (c *Chronometer) Start() {
	c.tic = c.now()
	c.running = true
}

// Stop stops the chronometer and returns the increment since Start.
func (c *Chronometer) Stop() time.Duration {
	inc := c.now().Sub(c.tic)
	c.running = false
	c.elapsed += inc
	c.increments = append(c.increments, inc)
	return inc
}

// Running reports whether the chronometer is started and not stopped.
func (c *Chronometer) Running() bool { return c.running }

// Last returns the most recent increment.
func (c *Chronometer) Last() time.Duration {
	return c.increments[len(c.increments)-1]
}

// Elapsed returns the total elapsed time, including the offset.
func (c *Chronometer) Elapsed() time.Duration { return c.elapsed }

// Count returns the number of recorded increments.
func (c *Chronometer) Count() int { return len(c.increments) }

// Increments returns the recorded increments.
func (c *Chronometer) Increments() []time.Duration { return c.increments }

// Min returns the smallest increment.
func (c *Chronometer) Min() time.Duration {
	out := c.increments[0]
	for _, inc := range c.increments[1:] {
		out = min(out, inc)
	}
	return out
}

// Max returns the largest increment.
func (c *Chronometer) Max() time.Duration {
	out := c.increments[0]
	for _, inc := range c.increments[1:] {
		out = max(out, inc)
	}
	return out
}

// Distribution returns the distribution of the increments in seconds,
// for quantiles and moments beyond Min and Max.
func (c *Chronometer) Distribution() *linx.DataDistribution[float64] {
	seconds := make([]float64, len(c.increments))
	for i, inc := range c.increments {
		seconds[i] = inc.Seconds()
	}
	return linx.NewDistribution(seconds)
}

// Time runs fn between Start and Stop and returns the increment.
func (c *Chronometer) Time(fn func()) time.Duration {
	c.Start()
	fn()
	return c.Stop()
}
