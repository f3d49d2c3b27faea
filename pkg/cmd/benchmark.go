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
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scylladb/variates/pkg/benchmarks"
	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/random"
)

var (
	benchHistoryFile         string
	benchDistributions       []string
	benchTime                time.Duration
	benchBackend             string
	benchSeed                string
	benchImport              string
	benchCompareWith         string
	benchRegressionThreshold float64
	benchTags                string
	benchNotes               string
	benchCPUInfo             string
)

func Benchmark() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure per-distribution throughput and track it over time",
		Long: `Measure nanoseconds per draw for every distribution and append the results to
a history file. Results of 'go test -bench' can be imported instead with --import.
With --compare the run is checked against the previous one for regressions.`,
		RunE: runBenchmark,
	}

	cmd.Flags().StringVar(&benchHistoryFile, "history", "benchmark_history.json", "Path to benchmark history file")
	cmd.Flags().StringSliceVar(&benchDistributions, "only", nil, "Distributions to measure (default: all)")
	cmd.Flags().DurationVar(&benchTime, "benchtime", benchmarks.DefaultBenchTime, "Time spent measuring each distribution")
	cmd.Flags().StringVar(&benchBackend, "backend", bitgen.DefaultBackend.String(), "Bit generator backend")
	cmd.Flags().StringVar(&benchSeed, "seed", "42", "Seed for every benchmark handle")
	cmd.Flags().StringVar(&benchImport, "import", "", "Record results parsed from a 'go test -bench' output file, '-' for stdin")
	cmd.Flags().StringVar(&benchCompareWith, "compare", "", "Compare with the previous run ('last')")
	cmd.Flags().Float64Var(&benchRegressionThreshold, "threshold", 10.0, "Regression threshold percentage")
	cmd.Flags().StringVar(&benchTags, "tags", "", "Comma-separated key=value tags for this run")
	cmd.Flags().StringVar(&benchNotes, "notes", "", "Optional notes about this benchmark run")
	cmd.Flags().StringVar(&benchCPUInfo, "cpu", "", "CPU info (auto-detected if not provided)")

	return cmd
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	b, err := bitgen.ParseBackend(benchBackend)
	if err != nil {
		return err
	}
	s, err := random.ParseSeed(benchSeed)
	if err != nil {
		return err
	}

	results, err := benchmarkResults(cmd, b, s)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errors.New("no benchmark results found")
	}

	cpu := benchCPUInfo
	if cpu == "" {
		cpu = getCPUInfo()
	}

	benchRun := benchmarks.Run{
		Timestamp: time.Now(),
		Version:   version + "-" + commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPU:       cpu,
		Results:   results,
		Tags:      parseTags(benchTags),
		Notes:     benchNotes,
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		_, _ = fmt.Fprintf(out, "%-20s %10.2f ns/draw %14.0f draws/s\n", r.Name, r.NsPerDraw, r.DrawsPerSec)
	}

	if err = benchRun.Save(benchHistoryFile); err != nil {
		return errors.Wrap(err, "failed to save benchmark results")
	}

	if benchCompareWith == "" {
		return nil
	}

	history, err := benchmarks.LoadHistory(benchHistoryFile)
	if err != nil {
		return err
	}
	previous, ok := history.Previous()
	if !ok {
		_, _ = fmt.Fprintln(out, "\nNot enough history for comparison (need at least 2 runs)")
		return nil
	}

	comparisons := benchmarks.CompareRuns(previous, &benchRun, benchRegressionThreshold)
	benchmarks.PrintComparison(out, comparisons)
	if benchmarks.HasRegressions(comparisons) {
		return errors.New("performance regressions detected")
	}

	return nil
}

func benchmarkResults(cmd *cobra.Command, b bitgen.Backend, s uint64) ([]benchmarks.Result, error) {
	switch benchImport {
	case "":
		return benchmarks.Measure(cmd.Context(), benchmarks.Config{
			Distributions: benchDistributions,
			BenchTime:     benchTime,
			Seed:          s,
			Backend:       b,
		})
	case "-":
		return benchmarks.ParseBenchmarkOutput(cmd.InOrStdin())
	default:
		f, err := os.Open(benchImport)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open benchmark output")
		}
		defer f.Close()
		return benchmarks.ParseBenchmarkOutput(f)
	}
}

func parseTags(tags string) map[string]string {
	out := make(map[string]string)
	if tags == "" {
		return out
	}
	for _, tag := range strings.Split(tags, ",") {
		if k, v, ok := strings.Cut(tag, "="); ok {
			out[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return out
}

func getCPUInfo() string {
	switch runtime.GOOS {
	case "linux":
		f, err := os.Open("/proc/cpuinfo")
		if err != nil {
			return "unknown"
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if key, value, ok := strings.Cut(scanner.Text(), ":"); ok && strings.TrimSpace(key) == "model name" {
				return strings.TrimSpace(value)
			}
		}
	case "darwin":
		output, err := exec.Command("sysctl", "-n", "machdep.cpu.brand_string").Output()
		if err == nil {
			return strings.TrimSpace(string(output))
		}
	}
	return "unknown"
}
