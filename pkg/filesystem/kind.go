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

package filesystem

import (
	"io/fs"

	"gitlab.com/tozd/go/errors"
)

// 📊 Kind classifies a file system error
type Kind int

const (
	KindNone       Kind = iota // no error
	KindNotFound               // path (or a parent) does not exist
	KindExists                 // path already exists
	KindPermission             // access denied
	KindOther                  // anything else
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not found"
	case KindExists:
		return "already exists"
	case KindPermission:
		return "permission denied"
	default:
		return "other"
	}
}

// 🔍 KindOf returns the Kind of err. A nil error is KindNone.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}
