/*
Copyright The EpiData Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package progress

import (
	"io"
	"os"
	"time"
)

// Option adjusts how an indicator is constructed.
type Option func(*config)

type config struct {
	delay      time.Duration
	out        io.Writer
	width      int
	dotCount   int
	dot        string
	blank      string
	bar        bool
	keep       bool
	background bool
	progress   float64
}

func newConfig(opts []Option) *config {
	cfg := &config{
		out:        os.Stdout,
		dotCount:   3,
		dot:        ".",
		blank:      " ",
		keep:       true,
		background: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// delayOr resolves the frame delay, favoring WithDelay over the preset
// default.
func (c *config) delayOr(preset time.Duration) time.Duration {
	if c.delay != 0 {
		return c.delay
	}
	return preset
}

// WithDelay overrides the default frame delay of a preset.
func WithDelay(delay time.Duration) Option {
	return func(c *config) {
		c.delay = delay
	}
}

// WithOutput renders to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithWidth overrides the detected terminal width. Values below 1 keep
// the detected width.
func WithWidth(columns int) Option {
	return func(c *config) {
		c.width = columns
	}
}

// WithDotCount sets how many dots a Dots animation accumulates before
// starting over.
func WithDotCount(n int) Option {
	return func(c *config) {
		c.dotCount = n
	}
}

// WithDotStyle replaces the dot and placeholder strings of a Dots
// animation. Both must have the same length.
func WithDotStyle(dot, blank string) Option {
	return func(c *config) {
		c.dot = dot
		c.blank = blank
	}
}

// WithBar adds a bar plotting the current progress to a Percentage
// indicator.
func WithBar() Option {
	return func(c *config) {
		c.bar = true
	}
}

// WithKeepOutput controls whether Percentage.Stop keeps the final frame
// on screen followed by a newline, or clears the line.
func WithKeepOutput(keep bool) Option {
	return func(c *config) {
		c.keep = keep
	}
}

// WithoutBackground disables the background goroutine of a Percentage
// indicator. Start becomes a no-op and every SetProgress call renders
// one frame synchronously, so the caller drives the timing.
func WithoutBackground() Option {
	return func(c *config) {
		c.background = false
	}
}

// WithInitialProgress sets the starting progress of a Percentage
// indicator, expected in [0, 1].
func WithInitialProgress(v float64) Option {
	return func(c *config) {
		c.progress = v
	}
}
