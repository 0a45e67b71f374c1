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

package option

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/alexgit0/memilio/cmd/epidata/internal/output/format"
)

// Format option struct.
type Format struct {
	format.Flag
}

// ApplyFlags applies flags to a command flag set.
func (opts *Format) ApplyFlags(fs *pflag.FlagSet) {
	fs.Var(&opts.Flag, "format", fmt.Sprintf("output format (default %q)", format.Plain))
}

// Print writes v to w as indented JSON when the JSON format is
// selected. The boolean reports whether anything was printed, so the
// caller knows to fall back to plain output.
func (opts *Format) Print(w io.Writer, v interface{}) (bool, error) {
	if opts.Flag != format.Json {
		return false, nil
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintln(w, string(content))
	return true, err
}
