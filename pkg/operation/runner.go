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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Task is a single unit of work run by a Runner
type Task func(ctx context.Context) error

// 🏃 Runner executes task lists either in parallel or in order
type Runner struct {
	limit int
}

// 🏗️ NewRunner creates a new runner. A limit of 0 or less means unbounded parallelism.
func NewRunner(limit int) *Runner {
	return &Runner{
		limit: limit,
	}
}

// ⚡ Parallel starts every task and waits for all of them. It returns the first
// error any task returned. A failing task does not stop the others.
func (r *Runner) Parallel(ctx context.Context, tasks []Task) error {
	zerolog.Ctx(ctx).Trace().Int("tasks", len(tasks)).Int("limit", r.limit).Msg("running parallel")

	var g errgroup.Group
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}
	for _, task := range tasks {
		g.Go(func() error {
			return task(ctx)
		})
	}
	return g.Wait()
}

// 🔄 Serial runs tasks one at a time in list order and stops at the first error.
func (r *Runner) Serial(ctx context.Context, tasks []Task) error {
	zerolog.Ctx(ctx).Trace().Int("tasks", len(tasks)).Msg("running serial")

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("serial task %d cancelled: %w", i, err)
		}
		if err := task(ctx); err != nil {
			return err
		}
	}
	return nil
}
