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
	"github.com/walteh/fsbatch/pkg/filesystem"
)

// 🗑️ Unlink deletes every file in paths concurrently. Missing files count as
// removed. The first other failure is returned once all deletions finished;
// files already removed stay removed.
func (o *Operator) Unlink(ctx context.Context, paths []string) error {
	tasks := make([]Task, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, func(ctx context.Context) error {
			return o.unlinkOne(ctx, path)
		})
	}
	return o.runner.Parallel(ctx, tasks)
}

func (o *Operator) unlinkOne(ctx context.Context, path string) error {
	err := o.fs.Remove(ctx, path)
	switch filesystem.KindOf(err) {
	case filesystem.KindNone:
		o.logger.Info("remove " + o.logger.Bold(path))
		return nil
	case filesystem.KindNotFound:
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("nothing to remove")
		return nil
	default:
		return o.fail(err)
	}
}
