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

// PositiveInt64 returns a non-negative 63-bit integer.
func PositiveInt64(src Source) int64 {
	return int64(src.Uint64() >> 1)
}

// PositiveInt32 returns a non-negative 31-bit integer.
func PositiveInt32(src Source) int32 {
	return int32(src.Uint32() >> 1)
}

func Uint(src Source) uint64 {
	return src.Uint64()
}
