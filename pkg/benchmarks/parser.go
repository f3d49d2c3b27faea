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
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SamplePrefix is the sub-benchmark family the distributions package uses,
// one sub-benchmark per distribution name.
const SamplePrefix = "BenchmarkSample/"

var benchmarkRegex = regexp.MustCompile(`^(Benchmark\S+?)(?:-(\d+))?\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+MB/s)?(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

// ParseBenchmarkOutput reads `go test -bench` output so that benchmarks run
// outside the CLI can be recorded in the same history.
func ParseBenchmarkOutput(reader io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}

		result, ok := parseBenchmarkLine(line)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading benchmark output")
	}

	return results, nil
}

func parseBenchmarkLine(line string) (Result, bool) {
	matches := benchmarkRegex.FindStringSubmatch(line)
	if matches == nil {
		return Result{}, false
	}

	result := Result{Name: strings.TrimPrefix(matches[1], SamplePrefix)}

	if matches[2] != "" {
		result.Parallelism, _ = strconv.Atoi(matches[2])
	}
	if matches[3] != "" {
		result.Iterations, _ = strconv.Atoi(matches[3])
	}
	if matches[4] != "" {
		if ns, err := strconv.ParseFloat(matches[4], 64); err == nil {
			result.NsPerDraw = ns
			if ns > 0 {
				result.DrawsPerSec = 1e9 / ns
			}
		}
	}
	if matches[6] != "" {
		result.BytesPerOp, _ = strconv.ParseInt(matches[6], 10, 64)
	}
	if matches[7] != "" {
		result.AllocsPerOp, _ = strconv.ParseInt(matches[7], 10, 64)
	}

	return result, true
}
