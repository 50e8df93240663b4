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

	"gitlab.com/tozd/go/errors"
)

// 📝 FileSpec is a file to write. A nil Data writes an empty file.
type FileSpec struct {
	Name string
	Data []byte
}

// 💾 Write writes every file concurrently, replacing existing content. The
// logged size comes from a stat after the write. The first error is returned
// once all writes finished; other files are left as written.
func (o *Operator) Write(ctx context.Context, files []FileSpec) error {
	tasks := make([]Task, 0, len(files))
	for _, file := range files {
		tasks = append(tasks, func(ctx context.Context) error {
			return o.writeOne(ctx, file)
		})
	}
	return o.runner.Parallel(ctx, tasks)
}

func (o *Operator) writeOne(ctx context.Context, file FileSpec) error {
	data := file.Data
	if data == nil {
		data = []byte{}
	}

	if err := o.fs.WriteFile(ctx, file.Name, data); err != nil {
		return o.fail(err)
	}

	info, err := o.fs.Stat(ctx, file.Name)
	if err != nil {
		return o.fail(errors.Errorf("checking written file %s: %w", file.Name, err))
	}

	o.logger.Info("write %s (size: %s)", o.logger.Bold(file.Name), o.logger.Green(info.Size()))
	return nil
}
