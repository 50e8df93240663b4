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
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DirMode is the mode used for every directory created through OS.
	DirMode fs.FileMode = 0o755
	// FileMode is the mode used for every file written through OS.
	FileMode fs.FileMode = 0o644
)

// FileInfo is an alias for fs.FileInfo
type FileInfo = fs.FileInfo

// 💾 FileSystem is the set of file system calls the batch operations need.
// Errors must keep the underlying fs.PathError reachable through errors.Is so
// that KindOf can classify them.
type FileSystem interface {
	// Remove deletes a single file.
	Remove(ctx context.Context, path string) error
	// ReadFile reads the whole file into memory.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile creates or truncates path and writes data to it.
	WriteFile(ctx context.Context, path string, data []byte) error
	// Stat follows symlinks.
	Stat(ctx context.Context, path string) (FileInfo, error)
	// Mkdir creates exactly one directory; the parent must exist.
	Mkdir(ctx context.Context, path string) error
	// ReadDir lists the immediate entries of a directory sorted by name.
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
}

// 🔧 OS implements FileSystem on top of the os package
type OS struct{}

var _ FileSystem = (*OS)(nil)

// 🏭 NewOS creates a new OS file system
func NewOS() *OS {
	return &OS{}
}

func (o *OS) Remove(ctx context.Context, path string) error {
	zerolog.Ctx(ctx).Trace().Str("path", path).Msg("remove")
	if err := os.Remove(path); err != nil {
		return errors.Errorf("removing file: %w", err)
	}
	return nil
}

func (o *OS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	zerolog.Ctx(ctx).Trace().Str("path", path).Msg("read file")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return data, nil
}

func (o *OS) WriteFile(ctx context.Context, path string, data []byte) error {
	zerolog.Ctx(ctx).Trace().Str("path", path).Int("size", len(data)).Msg("write file")
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

func (o *OS) Stat(ctx context.Context, path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("checking file: %w", err)
	}
	return info, nil
}

func (o *OS) Mkdir(ctx context.Context, path string) error {
	zerolog.Ctx(ctx).Trace().Str("path", path).Msg("mkdir")
	if err := os.Mkdir(path, DirMode); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}
	return nil
}

func (o *OS) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}
	return entries, nil
}
