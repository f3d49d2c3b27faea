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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/output"
	"github.com/scylladb/variates/pkg/plan"
	"github.com/scylladb/variates/pkg/random"
	"github.com/scylladb/variates/pkg/status"
)

type printedResult struct {
	Status struct {
		Draws        uint64 `json:"draws"`
		ShardsFailed uint64 `json:"shards_failed"`
	} `json:"status"`
	Jobs []struct {
		Job struct {
			Name  string `json:"name"`
			Count uint64 `json:"count"`
		} `json:"job"`
		Shards []struct {
			Summary struct {
				Count uint64 `json:"count"`
			} `json:"summary"`
			Shard int `json:"shard"`
		} `json:"shards"`
		Merged struct {
			Count uint64  `json:"count"`
			Mean  float64 `json:"mean"`
		} `json:"merged"`
	} `json:"jobs"`
}

// execute runs the root command. Flags are package state, so callers pass
// every flag they depend on and tests using it never run in parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Slice flags keep appending to the previous run's values otherwise.
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				require.NoError(t, sv.Replace(nil))
			}
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "variates.log")))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeResult(t *testing.T, out string) printedResult {
	t.Helper()

	start := strings.Index(out, "{")
	require.GreaterOrEqual(t, start, 0, out)

	var res printedResult
	require.NoError(t, json.NewDecoder(strings.NewReader(out[start:])).Decode(&res))
	return res
}

func TestShareOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		count  uint64
		shards int
	}{
		{count: 10, shards: 3},
		{count: 2, shards: 5},
		{count: 1000, shards: 1},
		{count: 0, shards: 4},
	} {
		var total uint64
		for i := range tc.shards {
			share := shareOf(tc.count, tc.shards, i)
			assert.LessOrEqual(t, share, tc.count/uint64(tc.shards)+1)
			total += share
		}
		assert.Equal(t, tc.count, total)
	}

	assert.Equal(t, uint64(4), shareOf(10, 3, 0))
	assert.Equal(t, uint64(3), shareOf(10, 3, 2))
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	got, err := parseParams([]string{"n=100", " P = 0.3 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": "100", "p": "0.3"}, got)

	for _, bad := range [][]string{{"n"}, {"=3"}, {"n=1", "N=2"}} {
		_, err = parseParams(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunJobSingleShardMatchesHandle(t *testing.T) {
	t.Parallel()

	params, err := distributions.DecodeParams("binomial", map[string]any{"n": 100, "p": 0.3})
	require.NoError(t, err)

	job := plan.Resolved{
		Name:         "flips",
		Distribution: distributions.BinomialDistribution,
		Params:       params,
		Count:        10000,
		Seed:         42,
		Shards:       1,
		Backend:      bitgen.MT19937,
		Compression:  output.NoCompression,
	}

	st := status.NewRunStatus(10)
	report, err := runJob(context.Background(), job, st)
	require.NoError(t, err)
	require.Len(t, report.Shards, 1)
	assert.Empty(t, report.Shards[0].Error)

	h, err := random.Allocate(bitgen.MT19937)
	require.NoError(t, err)
	defer h.Release()
	h.Seed(42)

	var want status.Summary
	for range 10000 {
		want.Add(float64(h.Binomial(0.3, 100)))
	}

	assert.Equal(t, want.Count(), report.Merged.Count())
	assert.InDelta(t, want.Mean(), report.Merged.Mean(), 1e-9)
	assert.InDelta(t, want.Variance(), report.Merged.Variance(), 1e-9)
	assert.Equal(t, uint64(10000), st.Draws.Load())
}

func TestRunJobBadOutput(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	job := plan.Resolved{
		Name:         "normal",
		Distribution: distributions.NormalDistribution,
		Params:       distributions.DefaultParams(),
		Count:        10,
		Shards:       1,
		Output:       filepath.Join(blocker, "out.csv"),
	}

	_, err := runJob(context.Background(), job, status.NewRunStatus(10))
	require.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.csv.zst")

	out, err := execute(t,
		"--distribution", "binomial",
		"--param", "n=100",
		"--param", "p=0.3",
		"--count", "1000",
		"--seed", "42",
		"--shards", "4",
		"--backend", "mt19937",
		"--outfile", outFile,
		"--compression", "zstd",
	)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Distribution:")
	assert.Contains(t, out, "n=100 p=0.3")

	res := decodeResult(t, out)
	assert.Equal(t, uint64(1000), res.Status.Draws)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, uint64(1000), res.Jobs[0].Merged.Count)
	assert.InDelta(t, 30.0, res.Jobs[0].Merged.Mean, 1.5)
	require.Len(t, res.Jobs[0].Shards, 4)
	for _, s := range res.Jobs[0].Shards {
		assert.Equal(t, uint64(250), s.Summary.Count)
	}

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()

	lines := 0
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		assert.Len(t, strings.Split(scanner.Text(), ","), 3)
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 1000, lines)
}

func TestRootCommandInvalidConfiguration(t *testing.T) {
	for name, args := range map[string][]string{
		"distribution": {"--distribution", "nope"},
		"parameter":    {"--distribution", "normal", "--param", "scale=-1"},
		"unknown key":  {"--distribution", "normal", "--param", "lambda=2"},
		"seed":         {"--distribution", "normal", "--seed", "abc"},
		"backend":      {"--distribution", "normal", "--backend", "xorshift"},
	} {
		t.Run(name, func(t *testing.T) {
			defaults := []string{
				"--param", "loc=0", "--seed", "1", "--backend", "mt19937",
				"--count", "10", "--shards", "1", "--outfile", "", "--compression", "none",
			}
			_, err := execute(t, append(defaults, args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed: 7
shards: 2
jobs:
  - name: waits
    distribution: exponential
    count: 500
    params: {scale: 2}
  - name: arrivals
    distribution: poisson
    count: 300
    output: `+filepath.Join(dir, "arrivals.csv")+`
    params: {lambda: 4}
`), 0o600))

	out, err := execute(t, "plan", path, "--validate=false")
	require.NoError(t, err, out)

	res := decodeResult(t, out)
	require.Len(t, res.Jobs, 2)
	assert.Equal(t, "waits", res.Jobs[0].Job.Name)
	assert.Equal(t, uint64(500), res.Jobs[0].Merged.Count)
	assert.Equal(t, "arrivals", res.Jobs[1].Job.Name)
	assert.Equal(t, uint64(300), res.Jobs[1].Merged.Count)
	assert.Equal(t, uint64(800), res.Status.Draws)

	data, err := os.ReadFile(filepath.Join(dir, "arrivals.csv"))
	require.NoError(t, err)
	assert.Equal(t, 300, strings.Count(string(data), "\n"))

	out, err = execute(t, "plan", path, "--validate=true")
	require.NoError(t, err)
	assert.NotContains(t, out, "{")
	assert.Contains(t, out, "arrivals")
}

func TestPlanCommandReportsEveryError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  - name: a
    distribution: gamma
    count: 1
    params: {shape: -1}
  - name: b
    distribution: nope
    count: 1
`), 0o600))

	_, err := execute(t, "plan", path, "--validate=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `job "a"`)
	assert.Contains(t, err.Error(), `job "b"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.Variates.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Equal(t, []string{"mt19937", "mt19937-64", "pcg", "chacha8"}, info.Backends)

	out, err = execute(t, "version", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "variates version:")
}

func TestBenchmarkCommand(t *testing.T) {
	dir := t.TempDir()
	history := filepath.Join(dir, "history.json")
	imported := filepath.Join(dir, "bench.txt")
	require.NoError(t, os.WriteFile(imported, []byte(
		"BenchmarkSample/normal-8   1000000   12.5 ns/op   0 B/op   0 allocs/op\n",
	), 0o600))

	args := []string{"benchmark", "--history", history, "--import", imported, "--compare", "last", "--threshold", "10"}

	out, err := execute(t, args...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Not enough history")

	out, err = execute(t, args...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "No regressions detected")

	out, err = execute(t, "benchmark", "--history", history, "--import", "", "--compare", "",
		"--only", "uniform", "--benchtime", "5ms")
	require.NoError(t, err, out)
	assert.Contains(t, out, "uniform")
}
