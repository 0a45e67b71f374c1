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

package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexgit0/memilio/pkg/progress"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Demo of the progress indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	fmt.Println("This is only a usage example, and does not actually do anything.")

	// start/stop
	p := progress.NewDots("waiting", progress.WithDelay(500*time.Millisecond))
	p.Start()
	time.Sleep(1600 * time.Millisecond)
	p.Stop()

	// scoped use
	func() {
		p := progress.NewPercentage("download 1 ", progress.WithBar(), progress.WithDelay(400*time.Millisecond))
		defer p.Start().Stop()
		for i := 0; i < 13; i++ {
			time.Sleep(147 * time.Millisecond)
			p.SetProgress(float64(i+1) / 13)
		}
	}()

	// caller-driven rendering without the background goroutine
	func() {
		p := progress.NewPercentage("download 2 ", progress.WithoutBackground(), progress.WithKeepOutput(false))
		defer p.Start().Stop()
		for i := 0; i < 97; i++ {
			time.Sleep(37 * time.Millisecond)
			p.SetProgress(float64(i+1) / 97)
		}
	}()

	func() {
		defer progress.NewSpinner("finish ").Start().Stop()
		time.Sleep(2 * time.Second)
	}()
	return nil
}
