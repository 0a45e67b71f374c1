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
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	tree "github.com/need-being/go-tree"
	"github.com/spf13/cobra"

	"github.com/alexgit0/memilio/cmd/epidata/internal/option"
	"github.com/alexgit0/memilio/internal/cleaner"
	"github.com/alexgit0/memilio/internal/config"
)

type cleanOptions struct {
	option.Common
	option.Format

	allData     bool
	rki         bool
	johnHopkins bool
	population  bool
	hdf5        bool
	outPath     string
	configPath  string
	dryRun      bool
}

func cleanCmd() *cobra.Command {
	var opts cleanOptions
	cmd := &cobra.Command{
		Use:   "clean [flags]",
		Short: "Delete generated data files",
		Long: `Delete generated data files from the output folder

Example - Delete all generated files, including the per-country folders left empty:
  epidata clean --all-data

Example - Delete HDF5 files written by the Robert Koch Institute download:
  epidata clean --rki --hdf5

Example - Preview which John Hopkins files would be deleted:
  epidata clean --john-hopkins --dry-run

Example - Delete population files from a custom output folder:
  epidata clean --population --out-path /tmp/data

Example - Delete all generated files and report the result as JSON:
  epidata clean --all-data --format json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.allData, "all-data", "a", false, "delete all generated data files")
	cmd.Flags().BoolVarP(&opts.rki, "rki", "r", false, "delete data downloaded from the Robert Koch Institute")
	cmd.Flags().BoolVarP(&opts.johnHopkins, "john-hopkins", "j", false, "delete data downloaded from John Hopkins University")
	cmd.Flags().BoolVarP(&opts.population, "population", "p", false, "delete population data")
	cmd.Flags().BoolVarP(&opts.hdf5, "hdf5", "", false, "select HDF5 files instead of JSON files")
	cmd.Flags().StringVarP(&opts.outPath, "out-path", "o", "", "folder holding the generated data")
	cmd.Flags().StringVarP(&opts.configPath, "config", "", "", "path to the configuration file")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "", false, "list matching files without deleting them")
	option.ApplyFlags(&opts, cmd.Flags())
	return cmd
}

func runClean(cmd *cobra.Command, opts *cleanOptions) error {
	_, logger := opts.WithContext(cmd.Context())
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	outPath := opts.outPath
	if outPath == "" {
		outPath = cfg.OutFolder
	}
	logger.Debugf("cleaning data beneath %s", outPath)

	plan, err := cleaner.Scan(cleaner.Options{
		All:         opts.allData,
		RKI:         opts.rki,
		JohnHopkins: opts.johnHopkins,
		Population:  opts.population,
		HDF5:        opts.hdf5,
		OutPath:     outPath,
		Countries:   cfg.Countries,
	})
	if err != nil {
		if errors.Is(err, cleaner.ErrNothingSelected) {
			return fmt.Errorf("%w: specify --all-data, --rki, --john-hopkins and/or --population", err)
		}
		return err
	}
	logger.Debugf("planned %d files for deletion", len(plan.Files))

	out := cmd.OutOrStdout()
	if opts.dryRun {
		return printPlan(opts, out, outPath, plan)
	}
	report, err := plan.Apply(out)
	if err != nil {
		return err
	}
	if printed, err := opts.Print(out, report); printed || err != nil {
		return err
	}
	fmt.Fprintln(out, report.Summary())
	return nil
}

func printPlan(opts *cleanOptions, w io.Writer, outPath string, plan *cleaner.Plan) error {
	if printed, err := opts.Print(w, plan); printed || err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Fprintln(w, "Nothing to delete")
		return nil
	}
	root := tree.New(outPath)
	nodes := map[string]*tree.Node{outPath: root}
	for _, dir := range plan.Dirs {
		nodes[dir] = root.Add(filepath.Base(dir) + "/")
	}
	for _, f := range plan.Files {
		parent, ok := nodes[filepath.Dir(f.Path)]
		if !ok {
			parent = root
		}
		parent.Add(fmt.Sprintf("%s (%s)", filepath.Base(f.Path), humanize.Bytes(uint64(f.Size))))
	}
	if err := tree.NewPrinter(w, nil).Print(root); err != nil {
		return err
	}
	fmt.Fprintf(w, "Would delete %d files (%s)\n", len(plan.Files), humanize.Bytes(uint64(plan.Bytes())))
	return nil
}
