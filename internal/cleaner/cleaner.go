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

// Package cleaner deletes data files previously written by the epidata
// download pipeline.
//
// Downloads are grouped in one directory per country under a common
// output root, with file names following fixed conventions: a source
// tag such as "_rki" or "_jh" and a ".json" or ".h5" ending. Cleaning
// selects files by those conventions, deletes them, and then removes
// any country directory left empty. The root itself is never removed.
package cleaner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNothingSelected is returned by Scan when Options selects no data
// category.
var ErrNothingSelected = errors.New("no data category selected")

// defaultCountries mirrors the directory layout written by the download
// pipeline.
var defaultCountries = []string{"Germany", "Spain", "France", "Italy", "US", "SouthKorea", "China"}

// DefaultCountries returns the country directories the download
// pipeline writes by default.
func DefaultCountries() []string {
	return append([]string(nil), defaultCountries...)
}

// Options selects the data files a Scan collects.
type Options struct {
	// All selects every data file regardless of source, with both the
	// .json and .h5 endings. It takes precedence over the other
	// categories and ignores HDF5.
	All bool
	// RKI selects Robert Koch-Institut files, found in Germany only.
	RKI bool
	// JohnHopkins selects Johns Hopkins University files, found in
	// every country directory and in the output root.
	JohnHopkins bool
	// Population selects population data files, found in Germany only.
	Population bool
	// HDF5 selects the .h5 ending instead of .json.
	HDF5 bool
	// OutPath is the output root the download pipeline wrote to.
	OutPath string
	// Countries overrides the per-country directory list. Empty names
	// are ignored; a list without any usable name falls back to the
	// default.
	Countries []string
}

// File is a single file scheduled for deletion.
type File struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Plan is the ordered set of deletions produced by Scan. Dirs are
// candidates only; Apply removes them solely when they end up empty.
type Plan struct {
	Files []File   `json:"files"`
	Dirs  []string `json:"dirs,omitempty"`
}

// Report summarizes an applied Plan.
type Report struct {
	Files int   `json:"files"`
	Dirs  int   `json:"dirs"`
	Bytes int64 `json:"bytes"`
}

// matcher reports whether a file name belongs to the selected data set.
type matcher func(name string) bool

// isData selects any data file written by the pipeline.
func isData(name string) bool {
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".h5")
}

// match selects names with the given ending that contain any of the
// tags.
func match(ending string, tags ...string) matcher {
	return func(name string) bool {
		if !strings.HasSuffix(name, ending) {
			return false
		}
		for _, tag := range tags {
			if strings.Contains(name, tag) {
				return true
			}
		}
		return false
	}
}

// Scan walks the output layout and collects the deletions selected by
// opts. Missing directories are skipped; any other filesystem error
// aborts the scan.
func Scan(opts Options) (*Plan, error) {
	if !opts.All && !opts.RKI && !opts.JohnHopkins && !opts.Population {
		return nil, ErrNothingSelected
	}
	countries := make([]string, 0, len(opts.Countries))
	for _, country := range opts.Countries {
		if country == "" {
			continue
		}
		countries = append(countries, country)
	}
	if len(countries) == 0 {
		countries = defaultCountries
	}
	ending := ".json"
	if opts.HDF5 {
		ending = ".h5"
	}

	plan := &Plan{}
	if opts.All {
		for _, country := range countries {
			if err := plan.scan(filepath.Join(opts.OutPath, country), isData, true); err != nil {
				return nil, err
			}
		}
		if err := plan.scan(opts.OutPath, isData, false); err != nil {
			return nil, err
		}
		return plan, nil
	}
	if opts.RKI {
		dir := filepath.Join(opts.OutPath, "Germany")
		if err := plan.scan(dir, match(ending, "_rki", "RKI"), true); err != nil {
			return nil, err
		}
	}
	if opts.Population {
		dir := filepath.Join(opts.OutPath, "Germany")
		if err := plan.scan(dir, match(ending, "Popul", "FullDataB", "FullDataL"), true); err != nil {
			return nil, err
		}
	}
	if opts.JohnHopkins {
		for _, country := range countries {
			if err := plan.scan(filepath.Join(opts.OutPath, country), match(ending, "_jh"), true); err != nil {
				return nil, err
			}
		}
		if err := plan.scan(opts.OutPath, match(ending, "_jh", "JohnHopkins"), false); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// scan plans deletion of the files in dir selected by the matcher and,
// when removeEmpty is set and dir exists, schedules dir for removal if
// it ends up empty.
func (p *Plan) scan(dir string, selected matcher, removeEmpty bool) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !selected(entry.Name()) {
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		p.Files = append(p.Files, File{Path: filepath.Join(dir, entry.Name()), Size: size})
	}
	if removeEmpty {
		p.Dirs = append(p.Dirs, dir)
	}
	return nil
}

// Empty reports whether the plan deletes nothing.
func (p *Plan) Empty() bool {
	return len(p.Files) == 0 && len(p.Dirs) == 0
}

// Bytes returns the total size of the planned files.
func (p *Plan) Bytes() int64 {
	var total int64
	for _, f := range p.Files {
		total += f.Size
	}
	return total
}

// Apply deletes the planned files, then removes planned directories
// that remain empty. Every deletion is reported line by line on w.
// Files already gone are skipped; any other error aborts the deletion
// and the returned report covers what was deleted up to that point.
func (p *Plan) Apply(w io.Writer) (*Report, error) {
	report := &Report{}
	for _, f := range p.Files {
		fmt.Fprintln(w, "Deleting file", f.Path)
		if err := os.Remove(f.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return report, fmt.Errorf("deleting %s: %w", f.Path, err)
		}
		report.Files++
		report.Bytes += f.Size
	}
	for _, dir := range p.Dirs {
		if err := os.Remove(dir); err != nil {
			continue
		}
		fmt.Fprintln(w, "Deleting directory", dir)
		report.Dirs++
	}
	return report, nil
}

// Clean scans with opts and applies the resulting plan.
func Clean(opts Options, w io.Writer) (*Report, error) {
	plan, err := Scan(opts)
	if err != nil {
		return nil, err
	}
	return plan.Apply(w)
}

// Summary renders the report as a single human-readable line.
func (r *Report) Summary() string {
	return fmt.Sprintf("Deleted %d files and %d directories, freed %s",
		r.Files, r.Dirs, humanize.Bytes(uint64(r.Bytes)))
}
