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

// Package progress prints single-line terminal animations to show that
// something is happening.
//
// An Indicator owns a background goroutine that repeatedly renders
// frames produced by an Animator, separated by a fixed delay, until
// stopped. NewSpinner, NewDots and NewPercentage provide the usual
// animations:
//
//	defer progress.NewSpinner("finishing ").Start().Stop()
//
// or, with live updates:
//
//	p := progress.NewPercentage("download ", progress.WithBar())
//	defer p.Start().Stop()
//	for i := 0; i < n; i++ {
//		work(i)
//		p.SetProgress(float64(i+1) / float64(n))
//	}
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// clearLine erases the terminal line under the cursor.
const clearLine = "\x1b[K"

// Animator produces animation frames. Every call advances the animation
// and returns the next frame. Animators are infinite and cannot be
// rewound; reconstruct the indicator to restart an animation.
type Animator func() string

// Indicator renders an animation on the current terminal line.
//
// Frames are drawn by a background goroutine launched by Start and
// joined by Stop, so a forgotten indicator never delays process exit.
// A stopped Indicator may be started again; the animation resumes where
// it left off.
type Indicator struct {
	animator Animator
	delay    time.Duration

	mu      sync.Mutex
	out     io.Writer
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New creates an Indicator drawing a frame of animator every delay.
// It panics if animator is nil or delay is not positive.
func New(animator Animator, delay time.Duration, opts ...Option) *Indicator {
	if animator == nil {
		panic("progress: nil animator")
	}
	if delay <= 0 {
		panic("progress: non-positive delay " + delay.String())
	}
	cfg := newConfig(opts)
	return &Indicator{
		animator: animator,
		delay:    delay,
		out:      cfg.out,
	}
}

// Start launches the background rendering goroutine. Starting a running
// Indicator is a no-op. Start returns ind, so a scoped animation reads
//
//	defer ind.Start().Stop()
func (ind *Indicator) Start() *Indicator {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	if ind.running {
		return ind
	}
	ind.running = true
	ind.stop = make(chan struct{})
	ind.done = make(chan struct{})
	go ind.render(ind.stop, ind.done)
	return ind
}

// render loops over the animation frames until stop is closed.
func (ind *Indicator) render(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(ind.delay)
	defer ticker.Stop()
	for {
		ind.Show()
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop ends the animation, waits for the rendering goroutine to exit
// and clears the current line. Stopping a stopped Indicator is a no-op.
func (ind *Indicator) Stop() {
	ind.mu.Lock()
	if !ind.running {
		ind.mu.Unlock()
		return
	}
	ind.running = false
	close(ind.stop)
	done := ind.done
	ind.mu.Unlock()

	<-done
	ind.write(clearLine)
}

// Show renders a single frame and advances the animation. It can be
// called on its own while no background goroutine is running.
func (ind *Indicator) Show() {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	fmt.Fprintf(ind.out, " %s\r", ind.animator())
}

// Running reports whether the background goroutine is active.
func (ind *Indicator) Running() bool {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	return ind.running
}

// SetOutput redirects rendering to w.
func (ind *Indicator) SetOutput(w io.Writer) {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	ind.out = w
}

func (ind *Indicator) write(s string) {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	io.WriteString(ind.out, s)
}
