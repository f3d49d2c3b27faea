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

package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/output"
)

const samplePlan = `
seed: 42
backend: pcg
shards: 4
compression: zstd
jobs:
  - name: coin-flips
    distribution: binomial
    count: 10000
    params: {n: 100, p: 0.3}
  - distribution: normal
    count: 500
    seed: 7
    shards: 1
    backend: mt19937
    params:
      loc: "2.5"
      scale: 3
`

func TestParseAndResolve(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte(samplePlan))
	require.NoError(t, err)
	require.Len(t, p.Jobs, 2)

	jobs, err := p.Resolve()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	flips := jobs[0]
	assert.Equal(t, "coin-flips", flips.Name)
	assert.Equal(t, distributions.BinomialDistribution, flips.Distribution)
	assert.Equal(t, uint64(10000), flips.Count)
	assert.Equal(t, uint64(42), flips.Seed)
	assert.Equal(t, 4, flips.Shards)
	assert.Equal(t, bitgen.PCG, flips.Backend)
	assert.Equal(t, output.ZSTDCompression, flips.Compression)
	assert.InDelta(t, 100.0, flips.Params.N, 0)
	assert.InDelta(t, 0.3, flips.Params.P, 0)

	normal := jobs[1]
	assert.Equal(t, "normal-1", normal.Name)
	assert.Equal(t, uint64(7), normal.Seed)
	assert.Equal(t, 1, normal.Shards)
	assert.Equal(t, bitgen.MT19937, normal.Backend)
	assert.InDelta(t, 2.5, normal.Params.Loc, 0)
	assert.InDelta(t, 3.0, normal.Params.Scale, 0)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte("seed: 1\njobs:\n  - distribution: poisson\n    count: 3\n"))
	require.NoError(t, err)

	jobs, err := p.Resolve()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, DefaultShards, jobs[0].Shards)
	assert.Equal(t, bitgen.DefaultBackend, jobs[0].Backend)
	assert.Equal(t, output.NoCompression, jobs[0].Compression)
	assert.InDelta(t, 1.0, jobs[0].Params.Lambda, 0)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":         "seed: 1\n",
		"unknown field": "seed: 1\nworkers: 3\njobs:\n  - distribution: normal\n    count: 1\n",
		"not yaml":      "jobs: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestResolveCollectsEveryError(t *testing.T) {
	t.Parallel()

	doc := `
seed: 1
compression: brotli
jobs:
  - name: a
    distribution: normal
    count: 0
  - name: a
    distribution: normal
    count: 1
  - name: b
    distribution: nope
    count: 1
  - name: c
    distribution: gamma
    count: 1
    seed: minus-one
    backend: xorshift
    params: {shape: -1, rate: 2}
`
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	jobs, err := p.Resolve()
	require.Error(t, err)
	assert.Nil(t, jobs)

	errs := multierr.Errors(err)
	// one per broken job plus the compression
	assert.Len(t, errs, 5)
	assert.ErrorContains(t, err, "xorshift")
	assert.ErrorContains(t, err, `duplicate name`)
	assert.ErrorIs(t, err, distributions.ErrUnknownDistribution)
	assert.ErrorIs(t, err, distributions.ErrInvalidParameter)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "42", p.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
