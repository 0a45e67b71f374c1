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
	"strings"
	"time"
)

var spinnerFrames = []rune(`|/-\`)

// NewSpinner creates an Indicator with a rotating line animation after
// message. Frames are drawn every 100ms unless WithDelay says
// otherwise. Consider ending message with a space as separator.
//
// If the terminal is too narrow for message plus the animation, the
// message is printed once on a line of its own and the animation runs
// without it.
func NewSpinner(message string, opts ...Option) *Indicator {
	cfg := newConfig(opts)
	if cfg.terminalWidth() < len(message)+2 {
		fmt.Fprintln(cfg.out, message)
		message = ""
	}
	i := 0
	animator := func() string {
		frame := message + string(spinnerFrames[i%len(spinnerFrames)])
		i++
		return frame
	}
	return New(animator, cfg.delayOr(100*time.Millisecond), opts...)
}

// NewDots creates an Indicator with a 'dot, dot, dot' animation after
// message. Frame n shows n dots padded with blanks up to the dot count,
// starting over after the last one. The default is three dots, one
// more every second; see WithDotCount, WithDotStyle and WithDelay.
// NewDots panics when the dot count is not positive or the dot and
// blank strings differ in length.
//
// The terminal width guard of NewSpinner applies here as well.
func NewDots(message string, opts ...Option) *Indicator {
	cfg := newConfig(opts)
	if cfg.dotCount <= 0 {
		panic("progress: non-positive dot count")
	}
	if len(cfg.dot) != len(cfg.blank) {
		panic("progress: dot and blank must have equal length")
	}
	if cfg.terminalWidth() < cfg.dotCount+len(message)+1 {
		fmt.Fprintln(cfg.out, message)
		message = ""
	}
	dot, blank, count := cfg.dot, cfg.blank, cfg.dotCount
	n := 0
	animator := func() string {
		n = n%count + 1
		return message + strings.Repeat(dot, n) + strings.Repeat(blank, count-n)
	}
	return New(animator, cfg.delayOr(time.Second), opts...)
}
