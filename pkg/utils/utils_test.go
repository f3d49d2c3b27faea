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

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: finalizers are process wide.
func TestFinalizers(t *testing.T) {
	var order []int
	AddFinalizer(func() { order = append(order, 1) })
	AddFinalizer(func() { order = append(order, 2) })

	ExecuteFinalizers()
	ExecuteFinalizers()

	assert.Equal(t, []int{2, 1}, order)
}

func TestCreateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.log")

	w, err := CreateFile(path, false)
	require.NoError(t, err)
	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = CreateFile(path, true)
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))

	w, err = CreateFile(path, false)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCreateFileFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, err := CreateFile("", false, &buf)
	require.NoError(t, err)
	_, err = w.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "x", buf.String())

	_, err = CreateFile("", false)
	require.Error(t, err)

	w, err = CreateFile(Stdout, false)
	require.NoError(t, err)
	_, isFile := w.(*os.File)
	assert.False(t, isFile)
	require.NoError(t, w.Close())
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()

	root := pkgerrors.New("root")
	wrapped := pkgerrors.Wrap(pkgerrors.Wrap(root, "middle"), "outer")

	assert.Equal(t, root.Error(), UnwrapErr(wrapped).Error())
	assert.NoError(t, UnwrapErr(nil))

	called := false
	IgnoreError(func() error {
		called = true
		return root
	})
	assert.True(t, called)
}
