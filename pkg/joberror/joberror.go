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

package joberror

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// JobError describes a shard that could not finish.
type JobError struct {
	Timestamp    time.Time `json:"timestamp"`
	Err          error     `json:"-"`
	Message      string    `json:"message"`
	Distribution string    `json:"distribution"`
	Shard        int       `json:"shard"`
	Seed         uint64    `json:"seed"`
}

func (j JobError) Error() string {
	return fmt.Sprintf("JobError(err=%v): %s (distribution=%s, shard=%d, seed=%d) time=%s",
		j.Err, j.Message, j.Distribution, j.Shard, j.Seed, j.Timestamp.Format(time.RFC3339))
}

func (j JobError) Unwrap() error {
	return j.Err
}

// ErrorList keeps the first limit errors reported to it.
type ErrorList struct {
	errors []JobError
	mu     sync.Mutex
	total  int
	limit  int
}

func (el *ErrorList) AddError(err JobError) {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.total++
	if len(el.errors) < el.limit {
		el.errors = append(el.errors, err)
	}
}

func (el *ErrorList) Errors() []JobError {
	el.mu.Lock()
	defer el.mu.Unlock()

	out := make([]JobError, len(el.errors))
	copy(out, el.errors)
	return out
}

// Total counts every reported error, including the ones beyond the limit.
func (el *ErrorList) Total() int {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.total
}

func (el *ErrorList) Cap() int {
	return el.limit
}

func (el *ErrorList) MarshalJSON() ([]byte, error) {
	return json.Marshal(el.Errors())
}

func NewErrorList(limit int) *ErrorList {
	return &ErrorList{
		limit:  limit,
		errors: make([]JobError, 0, limit),
	}
}
