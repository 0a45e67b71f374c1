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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexgit0/memilio/internal/cleaner"
)

// isolateConfig keeps the host configuration out of the test run.
func isolateConfig(t *testing.T) {
	t.Helper()
	for _, key := range []string{"EPIDATA_CONFIG", "EPIDATA_OUT_FOLDER", "EPIDATA_COUNTRIES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// seed writes empty data files below root and returns their paths.
func seed(t *testing.T, root string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

func runCleanCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)
	cmd := cleanCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCleanNothingSelected(t *testing.T) {
	_, err := runCleanCommand(t, "--out-path", t.TempDir())
	if !errors.Is(err, cleaner.ErrNothingSelected) {
		t.Fatalf("expected ErrNothingSelected, got %v", err)
	}
	if !strings.Contains(err.Error(), "specify --all-data, --rki, --john-hopkins and/or --population") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestCleanAllData(t *testing.T) {
	root := t.TempDir()
	files := seed(t, root,
		"Germany/cases_rki.json",
		"Germany/PopulData.h5",
		"US/cases_jh.json",
		"all_countries_jh.json",
	)
	kept := seed(t, root, "notes.txt")

	out, err := runCleanCommand(t, "--all-data", "--out-path", root)
	if err != nil {
		t.Fatalf("clean --all-data: %v", err)
	}
	for _, path := range files {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected %s to be deleted", path)
		}
		if !strings.Contains(out, "Deleting file "+path) {
			t.Errorf("expected a deletion line for %s, got:\n%s", path, out)
		}
	}
	if _, err := os.Stat(kept[0]); err != nil {
		t.Errorf("expected %s to survive: %v", kept[0], err)
	}
	for _, dir := range []string{"Germany", "US"} {
		if _, err := os.Stat(filepath.Join(root, dir)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected the emptied directory %s to be removed", dir)
		}
	}
	if want := "Deleted 4 files and 2 directories, freed 16 B"; !strings.Contains(out, want) {
		t.Errorf("expected summary %q, got:\n%s", want, out)
	}
}

func TestCleanDryRun(t *testing.T) {
	root := t.TempDir()
	files := seed(t, root, "Germany/cases_rki.json")

	out, err := runCleanCommand(t, "--rki", "--dry-run", "--out-path", root)
	if err != nil {
		t.Fatalf("clean --rki --dry-run: %v", err)
	}
	if _, err := os.Stat(files[0]); err != nil {
		t.Errorf("expected %s to survive a dry run: %v", files[0], err)
	}
	if strings.Contains(out, "Deleting file") {
		t.Errorf("expected no deletion lines, got:\n%s", out)
	}
	for _, want := range []string{"└── Germany/", "cases_rki.json (4 B)", "Would delete 1 files (4 B)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q, got:\n%s", want, out)
		}
	}
}

func TestCleanDryRunNothingFound(t *testing.T) {
	out, err := runCleanCommand(t, "--rki", "--dry-run", "--out-path", t.TempDir())
	if err != nil {
		t.Fatalf("clean --rki --dry-run: %v", err)
	}
	if !strings.Contains(out, "Nothing to delete") {
		t.Errorf("expected %q, got:\n%s", "Nothing to delete", out)
	}
}

func TestCleanFormatJSON(t *testing.T) {
	root := t.TempDir()
	seed(t, root, "Germany/cases_rki.json")

	out, err := runCleanCommand(t, "--rki", "--format", "json", "--out-path", root)
	if err != nil {
		t.Fatalf("clean --rki --format json: %v", err)
	}
	for _, want := range []string{`"files": 1`, `"dirs": 1`, `"bytes": 4`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected JSON report with %s, got:\n%s", want, out)
		}
	}
}

func TestCleanDryRunFormatJSON(t *testing.T) {
	root := t.TempDir()
	files := seed(t, root, "Germany/cases_rki.json")

	out, err := runCleanCommand(t, "--rki", "--dry-run", "--format", "json", "--out-path", root)
	if err != nil {
		t.Fatalf("clean --rki --dry-run --format json: %v", err)
	}
	if _, err := os.Stat(files[0]); err != nil {
		t.Errorf("expected %s to survive a dry run: %v", files[0], err)
	}
	if !strings.Contains(out, `"path": "`+files[0]+`"`) {
		t.Errorf("expected the plan to list %s, got:\n%s", files[0], out)
	}
	if strings.Contains(out, "Would delete") {
		t.Errorf("expected no plain summary in JSON mode, got:\n%s", out)
	}
}

func TestCleanConfigFile(t *testing.T) {
	root := t.TempDir()
	files := seed(t, root, "Germany/cases_rki.json")
	configPath := filepath.Join(t.TempDir(), "epidata.yaml")
	if err := os.WriteFile(configPath, []byte("out_folder: "+root+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCleanCommand(t, "--rki", "--config", configPath)
	if err != nil {
		t.Fatalf("clean --rki --config: %v", err)
	}
	if _, err := os.Stat(files[0]); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %s below the configured folder to be deleted", files[0])
	}
}

func TestCleanMissingConfigFile(t *testing.T) {
	_, err := runCleanCommand(t, "--rki", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("expected a config error, got %v", err)
	}
}

func TestCleanFlags(t *testing.T) {
	cmd := cleanCmd()
	flags := map[string]string{
		"all-data":     "a",
		"rki":          "r",
		"john-hopkins": "j",
		"population":   "p",
		"out-path":     "o",
		"hdf5":         "",
		"config":       "",
		"dry-run":      "",
		"format":       "",
		"debug":        "d",
		"verbose":      "v",
	}
	for name, shorthand := range flags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected flag --%s to be registered", name)
			continue
		}
		if flag.Shorthand != shorthand {
			t.Errorf("flag --%s: expected shorthand %q, got %q", name, shorthand, flag.Shorthand)
		}
	}
}
