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
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/alexgit0/memilio/internal/version"
)

func TestNewCommandTree(t *testing.T) {
	cmd := New()
	if cmd.Use != "epidata [command]" {
		t.Errorf("unexpected use line %q", cmd.Use)
	}
	if !cmd.SilenceUsage {
		t.Error("expected usage to be silenced on errors")
	}
	registered := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range []string{"clean", "demo", "version"} {
		if !registered[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := versionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	out := buf.String()
	if want := "Version:    " + version.GetVersion(); !strings.Contains(out, want) {
		t.Errorf("expected %q, got:\n%s", want, out)
	}
	if want := "Go version: " + runtime.Version(); !strings.Contains(out, want) {
		t.Errorf("expected %q, got:\n%s", want, out)
	}
}
