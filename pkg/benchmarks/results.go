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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

type Result struct {
	Name        string  `json:"name"`
	Backend     string  `json:"backend,omitempty"`
	NsPerDraw   float64 `json:"ns_per_draw"`
	DrawsPerSec float64 `json:"draws_per_sec"`
	AllocsPerOp int64   `json:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	Iterations  int     `json:"iterations"`
	Parallelism int     `json:"parallelism"`
}

type Run struct {
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	OS        string            `json:"os"`
	Arch      string            `json:"arch"`
	CPU       string            `json:"cpu"`
	Notes     string            `json:"notes,omitempty"`
	Results   []Result          `json:"results"`
}

type History struct {
	Runs []Run `json:"runs"`
}

// Save appends the run to the history stored at path.
func (r *Run) Save(path string) error {
	history, err := LoadHistory(path)
	if err != nil {
		return err
	}

	history.Runs = append(history.Runs, *r)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal history")
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write history file")
	}

	return nil
}

// LoadHistory returns an empty history when path does not exist.
func LoadHistory(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{Runs: []Run{}}, nil
		}
		return nil, errors.Wrap(err, "failed to read history file")
	}

	var history History
	if err = json.Unmarshal(data, &history); err != nil {
		return nil, errors.Wrap(err, "failed to parse history")
	}

	return &history, nil
}

// Previous returns the run recorded before the latest one.
func (h *History) Previous() (*Run, bool) {
	if len(h.Runs) < 2 {
		return nil, false
	}
	return &h.Runs[len(h.Runs)-2], true
}

type Comparison struct {
	Name               string  `json:"name"`
	OldNsPerDraw       float64 `json:"old_ns_per_draw"`
	NewNsPerDraw       float64 `json:"new_ns_per_draw"`
	SpeedupPercent     float64 `json:"speedup_percent"` // positive is faster
	OldAllocsPerOp     int64   `json:"old_allocs_per_op"`
	NewAllocsPerOp     int64   `json:"new_allocs_per_op"`
	AllocsDeltaPercent float64 `json:"allocs_delta_percent"`
	IsRegression       bool    `json:"is_regression"`
}

// CompareRuns pairs results by name. A distribution counts as regressed when
// it got slower than threshold percent or started allocating.
func CompareRuns(oldRun, newRun *Run, threshold float64) []Comparison {
	previous := make(map[string]Result, len(oldRun.Results))
	for _, result := range oldRun.Results {
		previous[result.Name] = result
	}

	comparisons := make([]Comparison, 0, len(newRun.Results))
	for _, current := range newRun.Results {
		old, ok := previous[current.Name]
		if !ok {
			continue
		}

		c := Comparison{
			Name:           current.Name,
			OldNsPerDraw:   old.NsPerDraw,
			NewNsPerDraw:   current.NsPerDraw,
			OldAllocsPerOp: old.AllocsPerOp,
			NewAllocsPerOp: current.AllocsPerOp,
		}
		if old.NsPerDraw > 0 {
			c.SpeedupPercent = (old.NsPerDraw - current.NsPerDraw) / old.NsPerDraw * 100
		}
		switch {
		case old.AllocsPerOp > 0:
			c.AllocsDeltaPercent = float64(current.AllocsPerOp-old.AllocsPerOp) / float64(old.AllocsPerOp) * 100
		case current.AllocsPerOp > 0:
			c.AllocsDeltaPercent = math.Inf(1)
		}

		c.IsRegression = c.SpeedupPercent < -threshold || c.AllocsDeltaPercent > threshold
		comparisons = append(comparisons, c)
	}

	return comparisons
}

func HasRegressions(comparisons []Comparison) bool {
	for _, c := range comparisons {
		if c.IsRegression {
			return true
		}
	}
	return false
}

func PrintComparison(w io.Writer, comparisons []Comparison) {
	if len(comparisons) == 0 {
		_, _ = fmt.Fprintln(w, "No comparable benchmarks found.")
		return
	}

	_, _ = fmt.Fprintln(w, "\n=== Benchmark Comparison ===")
	for _, c := range comparisons {
		_, _ = fmt.Fprintf(w, "%s\n", c.Name)
		_, _ = fmt.Fprintf(w, "  Speed:       %.2f ns/draw -> %.2f ns/draw (%.2f%% %s)\n",
			c.OldNsPerDraw, c.NewNsPerDraw, math.Abs(c.SpeedupPercent), speedLabel(c.SpeedupPercent))
		if c.OldAllocsPerOp > 0 || c.NewAllocsPerOp > 0 {
			_, _ = fmt.Fprintf(w, "  Allocations: %d -> %d\n", c.OldAllocsPerOp, c.NewAllocsPerOp)
		}
		if c.IsRegression {
			_, _ = fmt.Fprintln(w, "  REGRESSION DETECTED")
		}
		_, _ = fmt.Fprintln(w)
	}

	if HasRegressions(comparisons) {
		_, _ = fmt.Fprintln(w, "WARNING: performance regressions detected")
	} else {
		_, _ = fmt.Fprintln(w, "No regressions detected")
	}
}

func speedLabel(speedupPercent float64) string {
	switch {
	case speedupPercent > 0:
		return "faster"
	case speedupPercent < 0:
		return "slower"
	default:
		return "same"
	}
}
