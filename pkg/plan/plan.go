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

// Package plan loads batch sampling plans from YAML.
//
//	seed: 42
//	backend: mt19937
//	shards: 4
//	jobs:
//	  - name: coin-flips
//	    distribution: binomial
//	    count: 10000
//	    params: {n: 100, p: 0.3}
package plan

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/output"
	"github.com/scylladb/variates/pkg/random"
)

const DefaultShards = 1

type (
	Plan struct {
		Seed        string `yaml:"seed"`
		Backend     string `yaml:"backend"`
		Compression string `yaml:"compression"`
		Jobs        []Job  `yaml:"jobs"`
		Shards      int    `yaml:"shards"`
	}

	// Job fields left empty inherit the plan's values.
	Job struct {
		Params       map[string]any `yaml:"params"`
		Name         string         `yaml:"name"`
		Distribution string         `yaml:"distribution"`
		Seed         string         `yaml:"seed"`
		Backend      string         `yaml:"backend"`
		Output       string         `yaml:"output"`
		Count        uint64         `yaml:"count"`
		Shards       int            `yaml:"shards"`
	}

	// Resolved is a job with every field parsed and validated.
	Resolved struct {
		Name         string                     `json:"name"`
		Distribution distributions.Distribution `json:"distribution"`
		Output       string                     `json:"output,omitempty"`
		Params       distributions.Params       `json:"params"`
		Count        uint64                     `json:"count"`
		Seed         uint64                     `json:"seed"`
		Shards       int                        `json:"shards"`
		Backend      bitgen.Backend             `json:"-"`
		Compression  output.Compression         `json:"-"`
	}
)

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read plan %s", path)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}

	zap.L().Named("plan").Debug("plan loaded", zap.String("path", path), zap.Int("jobs", len(p.Jobs)))
	return p, nil
}

func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, errors.Wrap(err, "invalid plan")
	}
	if len(p.Jobs) == 0 {
		return nil, errors.New("plan has no jobs")
	}
	return &p, nil
}

// Resolve validates every job and reports all problems at once.
func (p *Plan) Resolve() ([]Resolved, error) {
	var errs error

	compression, err := output.ParseCompression(p.Compression)
	errs = multierr.Append(errs, err)

	names := strset.NewWithSize(len(p.Jobs))
	out := make([]Resolved, 0, len(p.Jobs))
	for i, job := range p.Jobs {
		name := strings.TrimSpace(job.Name)
		if name == "" {
			name = job.Distribution + "-" + strconv.Itoa(i)
		}
		if names.Has(name) {
			errs = multierr.Append(errs, errors.Errorf("job %q: duplicate name", name))
			continue
		}
		names.Add(name)

		r, err := p.resolve(name, job)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "job %q", name))
			continue
		}
		r.Compression = compression
		out = append(out, r)
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (p *Plan) resolve(name string, job Job) (Resolved, error) {
	var errs error

	d, err := distributions.ParseDistribution(job.Distribution)
	if err != nil {
		return Resolved{}, err
	}

	params, err := distributions.DecodeParams(string(d), job.Params)
	if err != nil {
		errs = multierr.Append(errs, err)
	} else {
		errs = multierr.Append(errs, distributions.Validate(string(d), params))
	}

	if job.Count == 0 {
		errs = multierr.Append(errs, errors.New("count must be positive"))
	}

	shards := firstPositive(job.Shards, p.Shards, DefaultShards)
	if job.Shards < 0 || p.Shards < 0 {
		errs = multierr.Append(errs, errors.New("shards must not be negative"))
	}

	seed, err := random.ParseSeed(firstNonEmpty(job.Seed, p.Seed, random.RandomSeed))
	errs = multierr.Append(errs, err)

	backend, err := bitgen.ParseBackend(firstNonEmpty(job.Backend, p.Backend))
	errs = multierr.Append(errs, err)

	return Resolved{
		Name:         name,
		Distribution: d,
		Output:       job.Output,
		Params:       params,
		Count:        job.Count,
		Seed:         seed,
		Shards:       shards,
		Backend:      backend,
	}, errs
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
