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

package benchmarks

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scylladb/variates/pkg/bitgen"
)

const goTestOutput = `goos: linux
goarch: amd64
pkg: github.com/scylladb/variates/pkg/distributions
BenchmarkSample/normal-8         	98765432	        12.50 ns/op	       0 B/op	       0 allocs/op
BenchmarkSample/binomial-8       	12345678	        80.00 ns/op
BenchmarkStandardGamma           	 5000000	       250 ns/op	      16 B/op	       1 allocs/op
PASS
ok  	github.com/scylladb/variates/pkg/distributions	3.2s
`

func TestParseBenchmarkOutput(t *testing.T) {
	t.Parallel()

	results, err := ParseBenchmarkOutput(strings.NewReader(goTestOutput))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, Result{
		Name:        "normal",
		NsPerDraw:   12.5,
		DrawsPerSec: 8e7,
		Iterations:  98765432,
		Parallelism: 8,
	}, results[0])
	assert.Equal(t, "binomial", results[1].Name)
	assert.Equal(t, "BenchmarkStandardGamma", results[2].Name)
	assert.Equal(t, 0, results[2].Parallelism)
	assert.Equal(t, int64(16), results[2].BytesPerOp)
	assert.Equal(t, int64(1), results[2].AllocsPerOp)
}

func TestCompareRuns(t *testing.T) {
	t.Parallel()

	oldRun := &Run{Results: []Result{
		{Name: "normal", NsPerDraw: 10},
		{Name: "gamma", NsPerDraw: 20},
		{Name: "beta", NsPerDraw: 30},
	}}
	newRun := &Run{Results: []Result{
		{Name: "normal", NsPerDraw: 8},
		{Name: "gamma", NsPerDraw: 25},
		{Name: "beta", NsPerDraw: 30, AllocsPerOp: 1},
		{Name: "poisson", NsPerDraw: 40},
	}}

	comparisons := CompareRuns(oldRun, newRun, 10)
	require.Len(t, comparisons, 3)

	assert.InDelta(t, 20.0, comparisons[0].SpeedupPercent, 1e-9)
	assert.False(t, comparisons[0].IsRegression)
	assert.InDelta(t, -25.0, comparisons[1].SpeedupPercent, 1e-9)
	assert.True(t, comparisons[1].IsRegression)
	assert.True(t, comparisons[2].IsRegression)
	assert.True(t, HasRegressions(comparisons))

	var out bytes.Buffer
	PrintComparison(&out, comparisons)
	assert.Contains(t, out.String(), "REGRESSION DETECTED")
	assert.Contains(t, out.String(), "20.00% faster")

	out.Reset()
	PrintComparison(&out, nil)
	assert.Contains(t, out.String(), "No comparable benchmarks")
}

func TestHistory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")

	history, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Empty(t, history.Runs)
	_, ok := history.Previous()
	assert.False(t, ok)

	first := Run{Version: "a", Results: []Result{{Name: "normal", NsPerDraw: 1}}}
	second := Run{Version: "b", Results: []Result{{Name: "normal", NsPerDraw: 2}}}
	require.NoError(t, first.Save(path))
	require.NoError(t, second.Save(path))

	history, err = LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, history.Runs, 2)
	previous, ok := history.Previous()
	require.True(t, ok)
	assert.Equal(t, "a", previous.Version)
}

// Not parallel: Measure sets the process-wide benchmark time.
func TestMeasure(t *testing.T) {

	results, err := Measure(context.Background(), Config{
		Distributions: []string{"normal", "binomial"},
		BenchTime:     10 * time.Millisecond,
		Seed:          42,
		Backend:       bitgen.MT19937,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Positive(t, r.Iterations, r.Name)
		assert.Positive(t, r.NsPerDraw, r.Name)
		assert.Zero(t, r.AllocsPerOp, r.Name)
		assert.Equal(t, "mt19937", r.Backend)
	}
}

func TestMeasureErrors(t *testing.T) {

	_, err := Measure(context.Background(), Config{Distributions: []string{"nope"}, BenchTime: time.Millisecond})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Measure(ctx, Config{BenchTime: time.Millisecond})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
