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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/fsbatch/pkg/filesystem"
)

// 🌳 Ancestors expands every target into its ancestor chain, top-most first,
// and merges the chains into one list without duplicates in first-seen order.
// A parent always comes before its children. The file system root and "."
// are never listed.
func Ancestors(targets []string) []string {
	seen := make(map[string]struct{})
	paths := make([]string, 0, len(targets))

	for _, target := range targets {
		for _, dir := range chain(filepath.Clean(target)) {
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			paths = append(paths, dir)
		}
	}

	return paths
}

// chain returns dir and its parents, top-most first
func chain(dir string) []string {
	var out []string
	for dir != "." {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		out = append(out, dir)
		dir = parent
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// 📁 Mkdir makes sure every target and all of its parents exist. Directories
// are created one at a time, parents first. Existing directories are fine;
// any other failure stops the remaining creations.
func (o *Operator) Mkdir(ctx context.Context, targets []string) error {
	paths := Ancestors(targets)
	zerolog.Ctx(ctx).Debug().Strs("paths", paths).Msg("creating directories")

	tasks := make([]Task, 0, len(paths))
	for _, dir := range paths {
		tasks = append(tasks, func(ctx context.Context) error {
			return o.mkdirOne(ctx, dir)
		})
	}
	return o.runner.Serial(ctx, tasks)
}

func (o *Operator) mkdirOne(ctx context.Context, dir string) error {
	err := o.fs.Mkdir(ctx, dir)
	switch filesystem.KindOf(err) {
	case filesystem.KindNone:
		o.logger.Info("mkdir " + o.logger.Bold(dir))
		return nil
	case filesystem.KindExists:
		return nil
	default:
		return o.fail(err)
	}
}
