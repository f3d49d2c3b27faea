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
	"strings"

	"github.com/spf13/cobra"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/random"
)

var (
	distribution     string
	params           []string
	count            uint64
	seed             string
	shardCount       int
	parallelism      int
	backend          string
	outFileArg       string
	compression      string
	failFast         bool
	metricsBind      string
	profilingPort    int
	level            string
	logFile          string
	maxErrorsToStore int
	versionFlag      bool
)

//nolint:lll
func setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&versionFlag, "version", "", false, "Print version information")
	cmd.PersistentFlags().
		BoolP("version-json", "", false, "Print version information in JSON format")
	cmd.PersistentFlags().
		StringVarP(&level, "level", "", "info", "Specify the logging level, debug|info|warn|error|dpanic|panic|fatal")
	cmd.PersistentFlags().
		StringVarP(&logFile, "log-file", "", "", "File to append logs to, 'stdout' or 'stderr'. Logs go to stderr by default")
	cmd.PersistentFlags().
		StringVarP(&metricsBind, "bind", "b", "", "Interface and port to serve prometheus metrics on, for example ':2112'. Disabled when empty")
	cmd.PersistentFlags().
		IntVarP(&profilingPort, "profiling-port", "", 0, "If non-zero starts pprof profiler on given port at 'http://0.0.0.0:<port>/debug/pprof/'")
	cmd.PersistentFlags().
		IntVarP(&parallelism, "parallelism", "", 0, "Maximum number of shards running at once, 0 means GOMAXPROCS")
	cmd.PersistentFlags().
		BoolVarP(&failFast, "fail-fast", "f", false, "Stop the remaining shards on the first failure")
	cmd.PersistentFlags().
		IntVarP(&maxErrorsToStore, "max-errors-to-store", "", 1000, "Maximum number of errors to store and output at the end")

	cmd.Flags().
		StringVarP(&distribution, "distribution", "d", "normal", "Distribution to sample from: "+strings.Join(distributions.Names(), "|"))
	cmd.Flags().
		StringArrayVarP(&params, "param", "p", []string{}, "Repeatable distribution parameter in the form key=value, for example --param n=100 --param p=0.3")
	cmd.Flags().
		Uint64VarP(&count, "count", "n", 1000, "Number of variates to draw, split across shards")
	cmd.Flags().
		StringVarP(&seed, "seed", "s", random.RandomSeed, "Seed value, an unsigned integer or 'random'")
	cmd.Flags().
		IntVarP(&shardCount, "shards", "", 1, "Number of independent shards, each with its own generator")
	cmd.Flags().
		StringVarP(&backend, "backend", "", bitgen.DefaultBackend.String(), "Bit generator backend: mt19937|mt19937-64|pcg|chacha8")
	cmd.Flags().
		StringVarP(&outFileArg, "outfile", "o", "", "File to write every variate to as 'shard,index,value' lines, 'stdout' allowed")
	cmd.Flags().
		StringVarP(&compression, "compression", "", "none", "Compression for --outfile: none|gzip|zstd")
}
