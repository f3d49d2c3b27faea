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

package status

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/scylladb/variates/pkg/joberror"
	"github.com/scylladb/variates/pkg/metrics"
)

// RunStatus is shared by every shard of a run and only holds counters.
type RunStatus struct {
	Errors       *joberror.ErrorList `json:"errors,omitempty"`
	Draws        atomic.Uint64       `json:"draws"`
	ShardsDone   atomic.Uint64       `json:"shards_completed"`
	ShardsFailed atomic.Uint64       `json:"shards_failed"`
}

func NewRunStatus(limit int) *RunStatus {
	return &RunStatus{
		Errors: joberror.NewErrorList(limit),
	}
}

func (rs *RunStatus) AddDraws(n uint64) {
	rs.Draws.Add(n)
}

func (rs *RunStatus) ShardDone() {
	rs.ShardsDone.Inc()
}

func (rs *RunStatus) AddShardError(err joberror.JobError) {
	rs.ShardsFailed.Inc()
	rs.Errors.AddError(err)
	metrics.ShardErrors.WithLabelValues(err.Distribution).Inc()
}

func (rs *RunStatus) HasErrors() bool {
	return rs.ShardsFailed.Load() > 0
}

func (rs *RunStatus) String() string {
	return fmt.Sprintf("draws: %v | shards completed: %v | shards failed: %v",
		rs.Draws.Load(), rs.ShardsDone.Load(), rs.ShardsFailed.Load())
}

func (rs *RunStatus) PrintResultAsJSON(w io.Writer, version string, result map[string]any) error {
	out := map[string]any{
		"status":           rs,
		"variates_version": version,
	}
	for k, v := range result {
		out[k] = v
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(" ", "    ")
	if err := encoder.Encode(out); err != nil {
		return errors.Wrap(err, "unable to create json from result")
	}

	return nil
}

//nolint:forbidigo
func (rs *RunStatus) PrintResult(w io.Writer, version string, result map[string]any) {
	if err := rs.PrintResultAsJSON(w, version, result); err != nil {
		fmt.Printf("Unable to print result as json, using plain text to stdout, error=%s\n", err)
		fmt.Printf("Variates version: %s\n", version)
		fmt.Printf("Results:\n")
		fmt.Printf("\tdraws:             %v\n", rs.Draws.Load())
		fmt.Printf("\tshards completed:  %v\n", rs.ShardsDone.Load())
		fmt.Printf("\tshards failed:     %v\n", rs.ShardsFailed.Load())
		for i, err := range rs.Errors.Errors() {
			fmt.Printf("Error %d: %s\n", i, err)
		}
	}
}
