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

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/twmb/murmur3"
)

// RandomSeed is the seed string that asks for a fresh seed from Source.
const RandomSeed = "random"

// Source supplies fresh seeds. It reads the operating system's entropy pool
// and falls back to a clock mixed PCG when that is unavailable.
var Source rand.Source

type crandSource struct{}

func (c *crandSource) Uint64() uint64 {
	var out [8]byte
	_, _ = crand.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

type TimeSource struct {
	source rand.Source
}

func NewTimeSource() *TimeSource {
	now := time.Now()
	val := uint64(now.Nanosecond() * now.Second())

	return &TimeSource{
		source: rand.NewPCG(val, val),
	}
}

func (c *TimeSource) Uint64() uint64 {
	now := time.Now()
	val := c.source.Uint64()
	return bits.RotateLeft64(val^uint64(now.Nanosecond()*now.Second()), -int(val>>58))
}

func init() {
	var b [8]byte
	_, err := crand.Read(b[:])
	if err == nil {
		Source = &crandSource{}
	} else {
		Source = NewTimeSource()
	}
}

func NewSeed() uint64 {
	return rand.New(Source).Uint64()
}

// ParseSeed accepts a decimal uint64 or RandomSeed.
func ParseSeed(seed string) (uint64, error) {
	seed = strings.TrimSpace(seed)
	if strings.EqualFold(seed, RandomSeed) {
		return NewSeed(), nil
	}

	val, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "seed must be %q or an unsigned integer", RandomSeed)
	}
	return val, nil
}

// DeriveSeed gives shard its own seed. Shard 0 keeps base so a single shard
// run reproduces a plain handle seeded with base. The result never changes
// across releases for the same inputs.
func DeriveSeed(base uint64, shard int) uint64 {
	if shard == 0 {
		return base
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(shard))
	return murmur3.SeedSum64(base, buf[:])
}
