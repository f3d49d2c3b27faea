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
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

var (
	_ Generator = (*PermutedCongruential)(nil)
	_ Generator = (*Stream)(nil)
)

const pcgIncrement = 0xda3e39cb94b95bdb

// PermutedCongruential wraps the PCG-DXSM engine from math/rand/v2.
type PermutedCongruential struct {
	src *rand.PCG
}

func NewPCG() *PermutedCongruential {
	return &PermutedCongruential{src: rand.NewPCG(0, pcgIncrement)}
}

func (p *PermutedCongruential) Seed(seed uint64) {
	p.src.Seed(seed, pcgIncrement)
}

func (p *PermutedCongruential) Uint32() uint32 {
	return uint32(p.src.Uint64() >> 32)
}

func (p *PermutedCongruential) Uint64() uint64 {
	return p.src.Uint64()
}

func (p *PermutedCongruential) Float64() float64 {
	return float64From53(p.src.Uint64())
}

// Stream wraps the ChaCha8 engine from math/rand/v2. The 32-byte key is the
// SHA-256 digest of the seed.
type Stream struct {
	src *rand.ChaCha8
}

func NewChaCha8() *Stream {
	return &Stream{src: rand.NewChaCha8(chachaKey(0))}
}

func (s *Stream) Seed(seed uint64) {
	s.src.Seed(chachaKey(seed))
}

func (s *Stream) Uint32() uint32 {
	return uint32(s.src.Uint64() >> 32)
}

func (s *Stream) Uint64() uint64 {
	return s.src.Uint64()
}

func (s *Stream) Float64() float64 {
	return float64From53(s.src.Uint64())
}

func chachaKey(seed uint64) [32]byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	return sha256.Sum256(buf[:])
}
