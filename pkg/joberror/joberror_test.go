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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errShard = errors.New("shard failed")

func TestJobError_Error(t *testing.T) {
	t.Parallel()

	jobErr := JobError{
		Timestamp:    time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Err:          errShard,
		Message:      "allocation",
		Distribution: "binomial",
		Shard:        3,
		Seed:         42,
	}

	expected := "JobError(err=shard failed): allocation (distribution=binomial, shard=3, seed=42) time=2023-01-01T12:00:00Z"
	assert.Equal(t, expected, jobErr.Error())
	assert.ErrorIs(t, jobErr, errShard)
}

func TestNewErrorList(t *testing.T) {
	t.Parallel()

	el := NewErrorList(5)
	require.NotNil(t, el)
	assert.Equal(t, 5, el.Cap())
	assert.Empty(t, el.Errors())
	assert.Zero(t, el.Total())
}

func TestErrorList_AddErrorExceedsLimit(t *testing.T) {
	t.Parallel()

	el := NewErrorList(2)
	for i := range 4 {
		el.AddError(JobError{Shard: i, Err: errShard})
	}

	errs := el.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, 0, errs[0].Shard)
	assert.Equal(t, 1, errs[1].Shard)
	assert.Equal(t, 4, el.Total())
}

func TestErrorList_Concurrent(t *testing.T) {
	t.Parallel()

	el := NewErrorList(100)
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				el.AddError(JobError{Shard: i})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, el.Errors(), 100)
	assert.Equal(t, 200, el.Total())
}

func TestErrorList_MarshalJSON(t *testing.T) {
	t.Parallel()

	el := NewErrorList(2)
	el.AddError(JobError{
		Timestamp:    time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		Err:          errShard,
		Message:      "m",
		Distribution: "normal",
		Shard:        1,
		Seed:         7,
	})

	data, err := json.Marshal(el)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"timestamp":"2020-02-01T00:00:00Z","message":"m","distribution":"normal","shard":1,"seed":7}]`,
		string(data))
}
