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

// Package random owns the sampling handle: a bit generator paired with the
// binomial coefficient cache. A handle belongs to one goroutine at a time.
package random

import (
	"github.com/pkg/errors"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
)

// ErrAllocation is returned in place of a handle that could not be created.
var ErrAllocation = errors.New("random: handle allocation failed")

var _ distributions.Source = (*Handle)(nil)

// Handle is a seeded bit generator and the binomial cache that goes with it.
// Handles are not safe for concurrent use; give every goroutine its own.
// Using a handle after Release panics.
type Handle struct {
	gen      bitgen.Generator
	binomial distributions.BinomialCache
	backend  bitgen.Backend
}

// Allocate creates a handle backed by backend. The generator starts in the
// backend's default state until Seed is called.
func Allocate(backend bitgen.Backend) (*Handle, error) {
	gen, err := bitgen.New(backend)
	if err != nil {
		return nil, errors.Wrapf(ErrAllocation, "%v", err)
	}

	return &Handle{gen: gen, backend: backend}, nil
}

// Release drops the generator and the cached coefficients. Releasing a nil
// or already released handle does nothing.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.gen = nil
	h.binomial.Reset()
}

func (h *Handle) Released() bool {
	return h == nil || h.gen == nil
}

func (h *Handle) Backend() bitgen.Backend {
	return h.backend
}

// Seed restarts the generator at a deterministic state. The binomial cache is
// kept: its coefficients depend only on (n, p).
func (h *Handle) Seed(seed uint64) {
	h.gen.Seed(seed)
}

// Uniform draws a double in [0, 1).
func (h *Handle) Uniform() float64 {
	return h.gen.Float64()
}

// Binomial draws from Binomial(n, p) through the handle's cache.
func (h *Handle) Binomial(p float64, n int64) int64 {
	return distributions.Binomial(h.gen, p, n, &h.binomial)
}

func (h *Handle) CacheStats() distributions.BinomialCacheStats {
	return h.binomial.Stats()
}

func (h *Handle) Uint32() uint32 {
	return h.gen.Uint32()
}

func (h *Handle) Uint64() uint64 {
	return h.gen.Uint64()
}

func (h *Handle) Float64() float64 {
	return h.gen.Float64()
}
