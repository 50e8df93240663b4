// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"github.com/walteh/fsbatch/pkg/filesystem"
	"gitlab.com/tozd/go/errors"
)

// 📢 Logger receives progress and failure lines from every operation
type Logger interface {
	// Info logs a message; args are applied with fmt.Sprintf when present
	Info(format string, args ...any)
	// Fail logs a failure
	Fail(msg string)
	// Bold and Green only style text for humans
	Bold(v any) string
	Green(v any) string
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// FileSystem defaults to filesystem.NewOS()
	FileSystem filesystem.FileSystem
	// Logger is required
	Logger Logger
	// Limit bounds parallel batches (unlink, write, read, copy); 0 is unbounded
	Limit int
}

// 🎮 Operator runs file system batch operations
type Operator struct {
	fs     filesystem.FileSystem
	logger Logger
	runner *Runner
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Limit < 0 {
		return nil, errors.Errorf("limit must not be negative")
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	return &Operator{
		fs:     opts.FileSystem,
		logger: opts.Logger,
		runner: NewRunner(opts.Limit),
	}, nil
}

// fail logs err and hands it back so call sites can `return o.fail(err)`
func (o *Operator) fail(err error) error {
	o.logger.Fail(err.Error())
	return err
}
