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
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"
)

// Percentage is an indicator displaying a progress value as a live
// percentage, updated through SetProgress.
//
// By default the display is redrawn by a background goroutine once per
// delay. With WithoutBackground no goroutine is spawned and the display
// refreshes synchronously on every SetProgress call instead.
type Percentage struct {
	ind        *Indicator
	value      atomic.Uint64 // progress stored as math.Float64bits
	keep       bool
	background bool
}

// NewPercentage creates a Percentage with message as frame prefix,
// redrawn every second. Consider ending message with a space as
// separator. The zero progress value, the delay, bar mode and the stop
// behavior are adjusted with WithInitialProgress, WithDelay, WithBar,
// WithKeepOutput and WithoutBackground.
//
// The terminal width guard of NewSpinner applies here as well.
func NewPercentage(message string, opts ...Option) *Percentage {
	cfg := newConfig(opts)
	p := &Percentage{
		keep:       cfg.keep,
		background: cfg.background,
	}
	p.value.Store(math.Float64bits(cfg.progress))

	width := cfg.terminalWidth()
	var prefix func() string
	if cfg.bar {
		if width < len(message)+12 {
			fmt.Fprintln(cfg.out, message)
			message = ""
		}
		// barWidth fills the line up to the percentage and the
		// brackets drawn around the bar.
		barWidth := width - len(message) - 11
		prefix = func() string {
			return message + bar(barWidth, p.Progress())
		}
	} else {
		if width < len(message)+8 {
			fmt.Fprintln(cfg.out, message)
			message = ""
		}
		prefix = func() string {
			return message
		}
	}
	animator := func() string {
		return fmt.Sprintf("%s%6.2f%%", prefix(), 100*p.Progress())
	}
	p.ind = New(animator, cfg.delayOr(time.Second), opts...)
	return p
}

// bar plots progress as a fixed-width bar. Fill and padding are clamped
// at the bounds so out-of-range progress values cannot yield negative
// repeat counts.
func bar(width int, progress float64) string {
	n := int(float64(width) * progress)
	fill, pad := n, width-n
	if fill < 0 {
		fill = 0
	}
	if pad < 0 {
		pad = 0
	}
	return "[" + strings.Repeat("#", fill) + strings.Repeat(" ", pad) + "] "
}

// Start launches the background animation, if any. Start returns p, so
// a scoped animation reads
//
//	defer p.Start().Stop()
func (p *Percentage) Start() *Percentage {
	if p.background {
		p.ind.Start()
	}
	return p
}

// Stop renders one final frame so the last reported progress is what
// remains on screen, keeps or clears it per WithKeepOutput, and shuts
// down the background goroutine, if any.
func (p *Percentage) Stop() {
	p.ind.Show()
	if p.keep {
		p.ind.write("\n")
	}
	if p.background {
		p.ind.Stop()
	} else {
		p.ind.write(clearLine)
	}
}

// SetProgress updates the displayed progress value, expected in [0, 1].
// While no background goroutine is running the frame is redrawn
// immediately, so updates stay visible without one.
func (p *Percentage) SetProgress(v float64) {
	p.value.Store(math.Float64bits(v))
	if !p.ind.Running() {
		p.ind.Show()
	}
}

// Progress returns the progress value last passed to SetProgress.
func (p *Percentage) Progress() float64 {
	return math.Float64frombits(p.value.Load())
}
