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
	"errors"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
)

const (
	Stdout = "stdout"
	Stderr = "stderr"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// CreateFile opens name for writing. An empty name falls back to the first
// of fallback, and the names "stdout" and "stderr" select those streams.
// Standard streams are never closed by the returned writer.
func CreateFile(name string, appendMode bool, fallback ...io.Writer) (io.WriteCloser, error) {
	switch name {
	case "":
		if len(fallback) == 0 {
			return nil, pkgerrors.New("no file name given")
		}
		return nopCloser{fallback[0]}, nil
	case Stdout:
		return nopCloser{os.Stdout}, nil
	case Stderr:
		return nopCloser{os.Stderr}, nil
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open %s", name)
	}
	return f, nil
}

func IgnoreError(fn func() error) {
	_ = fn()
}

// UnwrapErr returns the innermost error of the chain.
func UnwrapErr(err error) error {
	nextErr := err
	for nextErr != nil {
		err = nextErr
		nextErr = errors.Unwrap(err)
	}
	return err
}
