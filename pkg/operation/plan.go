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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/fsbatch/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 📊 PlanResult collects the outputs of a plan run
type PlanResult struct {
	Copies []CopyResult      // in plan.Copy order
	Reads  map[string][]byte // keyed by path

	mu sync.Mutex
}

// 🚀 RunPlan runs the stages of plan in order: mkdir, write, copy, read,
// unlink. Copies and reads inside a stage run concurrently. The first failing
// stage stops the run.
func (o *Operator) RunPlan(ctx context.Context, plan *config.Plan) (*PlanResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, o.fail(errors.Errorf("validating plan: %w", err))
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("plan", plan.String()).Str("location", plan.Location()).Msg("running plan")

	result := &PlanResult{
		Copies: make([]CopyResult, len(plan.Copy)),
		Reads:  make(map[string][]byte, len(plan.Read)),
	}

	stage := func(name string, run Task) Task {
		return func(ctx context.Context) error {
			logger.Debug().Str("stage", name).Msg("starting stage")
			if err := run(ctx); err != nil {
				return errors.Errorf("%s stage: %w", name, err)
			}
			return nil
		}
	}

	err := o.runner.Serial(ctx, []Task{
		stage("mkdir", func(ctx context.Context) error {
			return o.Mkdir(ctx, plan.Mkdir)
		}),
		stage("write", func(ctx context.Context) error {
			files := make([]FileSpec, 0, len(plan.Write))
			for _, w := range plan.Write {
				files = append(files, FileSpec{Name: w.Name, Data: []byte(w.Data)})
			}
			return o.Write(ctx, files)
		}),
		stage("copy", func(ctx context.Context) error {
			tasks := make([]Task, 0, len(plan.Copy))
			for i, c := range plan.Copy {
				tasks = append(tasks, func(ctx context.Context) error {
					res, err := o.Copy(ctx, CopyConfig{Source: c.Source, Target: c.Target, Ignore: c.Ignore})
					result.Copies[i] = res
					return err
				})
			}
			return o.runner.Parallel(ctx, tasks)
		}),
		stage("read", func(ctx context.Context) error {
			tasks := make([]Task, 0, len(plan.Read))
			for _, path := range plan.Read {
				tasks = append(tasks, func(ctx context.Context) error {
					data, err := o.Read(ctx, path)
					if err != nil {
						return err
					}
					result.mu.Lock()
					result.Reads[path] = data
					result.mu.Unlock()
					return nil
				})
			}
			return o.runner.Parallel(ctx, tasks)
		}),
		stage("unlink", func(ctx context.Context) error {
			return o.Unlink(ctx, plan.Unlink)
		}),
	})

	return result, err
}
