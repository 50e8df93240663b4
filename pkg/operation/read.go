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
)

// 📖 Read loads the whole file at path. On failure the error is logged and
// returned with nil data.
func (o *Operator) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := o.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, o.fail(err)
	}

	o.logger.Info("read %s (size: %s)", o.logger.Bold(path), o.logger.Green(len(data)))
	return data, nil
}
