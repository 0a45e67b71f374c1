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
	"github.com/spf13/cobra"
)

// New assembles the epidata command tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "epidata [command]",
		Short:        "Manage generated epidemiological data files",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		cleanCmd(),
		demoCmd(),
		versionCmd(),
	)
	return cmd
}
