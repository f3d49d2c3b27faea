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

package bitgen

import (
	"gonum.org/v1/gonum/mathext/prng"
)

var (
	_ Generator = (*Mersenne)(nil)
	_ Generator = (*Mersenne64)(nil)
)

// Mersenne is the 32-bit Mersenne Twister. Only the low 32 bits of the seed
// are used.
type Mersenne struct {
	src *prng.MT19937
}

func NewMT19937() *Mersenne {
	return &Mersenne{src: prng.NewMT19937()}
}

func (m *Mersenne) Seed(seed uint64) {
	m.src.Seed(uint64(uint32(seed)))
}

func (m *Mersenne) Uint32() uint32 {
	return m.src.Uint32()
}

// Uint64 joins two consecutive 32-bit outputs, high word first.
func (m *Mersenne) Uint64() uint64 {
	hi := uint64(m.src.Uint32())
	lo := uint64(m.src.Uint32())
	return hi<<32 | lo
}

// Float64 builds a 53-bit double from 27 bits of one output and 26 bits of
// the next.
func (m *Mersenne) Float64() float64 {
	a := m.src.Uint32() >> 5
	b := m.src.Uint32() >> 6
	return (float64(a)*float26Scale + float64(b)) * float53Scale
}

// Mersenne64 is the 64-bit Mersenne Twister.
type Mersenne64 struct {
	src *prng.MT19937_64
}

func NewMT19937x64() *Mersenne64 {
	return &Mersenne64{src: prng.NewMT19937_64()}
}

func (m *Mersenne64) Seed(seed uint64) {
	m.src.Seed(seed)
}

func (m *Mersenne64) Uint32() uint32 {
	return uint32(m.src.Uint64() >> 32)
}

func (m *Mersenne64) Uint64() uint64 {
	return m.src.Uint64()
}

func (m *Mersenne64) Float64() float64 {
	return float64From53(m.src.Uint64())
}
