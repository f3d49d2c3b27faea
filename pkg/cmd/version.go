// Copyright 2025 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scylladb/variates/pkg/bitgen"
)

const gonumPackage = "gonum.org/v1/gonum"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type (
	ComponentInfo struct {
		Version    string `json:"version"`
		CommitDate string `json:"commit_date,omitempty"`
		CommitSHA  string `json:"commit_sha,omitempty"`
	}

	VersionInfo struct {
		Variates  ComponentInfo `json:"variates"`
		Gonum     ComponentInfo `json:"gonum"`
		GoVersion string        `json:"go_version"`
		Backends  []string      `json:"backends"`
	}
)

func Version() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information in JSON format")

	return cmd
}

func NewVersionInfo() VersionInfo {
	backends := bitgen.Backends()
	names := make([]string, 0, len(backends))
	for _, b := range backends {
		names = append(names, b.String())
	}

	return VersionInfo{
		Variates:  getMainBuildInfo(),
		Gonum:     getDependencyInfo(gonumPackage),
		GoVersion: runtime.Version(),
		Backends:  names,
	}
}

func (v VersionInfo) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "variates version: %s, commit: %s, date: %s\n",
		v.Variates.Version, v.Variates.CommitSHA, v.Variates.CommitDate)
	_, _ = fmt.Fprintf(&sb, "gonum version: %s\n", v.Gonum.Version)
	_, _ = fmt.Fprintf(&sb, "go version: %s\n", v.GoVersion)
	_, _ = fmt.Fprintf(&sb, "backends: %s", strings.Join(v.Backends, ", "))
	return sb.String()
}

func printVersion(w io.Writer, asJSON bool) error {
	info := NewVersionInfo()

	if !asJSON {
		_, err := fmt.Fprintln(w, info.String())
		return err
	}

	data, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "failed to marshal version info")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func getMainBuildInfo() ComponentInfo {
	ver, sha, buildDate := version, commit, date

	if ver != "dev" && sha != "unknown" && buildDate != "unknown" {
		return ComponentInfo{
			Version:    ver,
			CommitDate: buildDate,
			CommitSHA:  sha,
		}
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			ver = info.Main.Version
		} else {
			ver = "(devel)"
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && sha == "unknown" {
				sha = setting.Value
			}

			if setting.Key == "vcs.time" && buildDate == "unknown" {
				buildDate = setting.Value
			}
		}
	}

	return ComponentInfo{
		Version:    ver,
		CommitDate: buildDate,
		CommitSHA:  sha,
	}
}

// getDependencyInfo reports the linked version of module path, following
// replace directives.
func getDependencyInfo(path string) ComponentInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ComponentInfo{Version: "unknown"}
	}

	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		return ComponentInfo{Version: dep.Version}
	}

	return ComponentInfo{Version: "unknown"}
}
