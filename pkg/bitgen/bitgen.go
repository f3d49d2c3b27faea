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

// Package bitgen provides the deterministic uniform bit sources the samplers
// draw from. Every implementation produces the same sequence for the same
// seed and is not safe for concurrent use.
package bitgen

import (
	"strings"

	"github.com/pkg/errors"
)

type (
	// Generator is the capability every bit source exposes.
	Generator interface {
		Seed(seed uint64)
		Uint32() uint32
		Uint64() uint64
		// Float64 returns a value in [0, 1) with 53 bits of resolution.
		Float64() float64
	}

	Backend int
)

const (
	MT19937 Backend = iota
	MT19937x64
	PCG
	ChaCha8
)

// DefaultBackend is the built-in engine.
const DefaultBackend = MT19937

const (
	float53Scale = 1.0 / (1 << 53)
	float26Scale = 1 << 26
)

func (b Backend) String() string {
	switch b {
	case MT19937:
		return "mt19937"
	case MT19937x64:
		return "mt19937-64"
	case PCG:
		return "pcg"
	case ChaCha8:
		return "chacha8"
	default:
		panic("unknown backend")
	}
}

func ParseBackend(value string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mt19937", "":
		return MT19937, nil
	case "mt19937-64", "mt19937_64":
		return MT19937x64, nil
	case "pcg":
		return PCG, nil
	case "chacha8":
		return ChaCha8, nil
	default:
		return DefaultBackend, errors.Errorf("unknown bit generator backend %q", value)
	}
}

func MustParseBackend(value string) Backend {
	b, err := ParseBackend(value)
	if err != nil {
		panic(err)
	}

	return b
}

// Backends lists every supported backend, the default first.
func Backends() []Backend {
	return []Backend{MT19937, MT19937x64, PCG, ChaCha8}
}

// New returns an unseeded generator for the backend. Callers seed it before
// the first draw.
func New(b Backend) (Generator, error) {
	switch b {
	case MT19937:
		return NewMT19937(), nil
	case MT19937x64:
		return NewMT19937x64(), nil
	case PCG:
		return NewPCG(), nil
	case ChaCha8:
		return NewChaCha8(), nil
	default:
		return nil, errors.Errorf("unsupported bit generator backend %d", int(b))
	}
}

// float64From53 maps the top 53 bits of a 64-bit draw onto [0, 1).
func float64From53(v uint64) float64 {
	return float64(v>>11) * float53Scale
}
