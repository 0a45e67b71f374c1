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

package version

var (
	// Version is the current epidata version, overridden at build time
	// via -ldflags.
	Version = "0.1.0"
	// BuildMetadata is the extra build-time metadata.
	BuildMetadata = "unreleased"
	// GitCommit is the commit the binary was built from.
	GitCommit = ""
)

// GetVersion returns the version string including build metadata.
func GetVersion() string {
	v := Version
	if BuildMetadata != "" {
		v += "+" + BuildMetadata
	}
	return v
}
