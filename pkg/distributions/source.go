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

package distributions

// Source is the uniform bit stream every sampler consumes. A Source is owned
// by a single goroutine; samplers never synchronise access to it.
type Source interface {
	Uint32() uint32
	Uint64() uint64
	// Float64 returns a value in [0, 1).
	Float64() float64
}

const float24Scale = 1.0 / (1 << 24)

// StandardUniform returns a double in [0, 1).
func StandardUniform(src Source) float64 {
	return src.Float64()
}

// StandardUniformF32 returns a float in [0, 1) built from the top 24 bits of
// a 32-bit draw.
func StandardUniformF32(src Source) float32 {
	return float32(src.Uint32()>>8) * float24Scale
}
