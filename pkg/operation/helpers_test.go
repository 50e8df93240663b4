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

package operation_test

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fsbatch/pkg/filesystem"
	"github.com/walteh/fsbatch/pkg/operation"
)

// 📝 captureLogger records every line without styling
type captureLogger struct {
	mu    sync.Mutex
	infos []string
	fails []string
}

func (l *captureLogger) Info(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *captureLogger) Fail(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fails = append(l.fails, msg)
}

func (l *captureLogger) Bold(v any) string { return fmt.Sprint(v) }
func (l *captureLogger) Green(v any) string { return fmt.Sprint(v) }

func (l *captureLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

func (l *captureLogger) Fails() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.fails...)
}

// 💥 faultyFS wraps a real file system, records every call and returns
// injected errors for chosen "op path" keys
type faultyFS struct {
	filesystem.FileSystem

	mu     sync.Mutex
	calls  []string
	faults map[string]error
}

func newFaultyFS() *faultyFS {
	return &faultyFS{
		FileSystem: filesystem.NewOS(),
		faults:     map[string]error{},
	}
}

// inject makes op on path fail with a permission error
func (f *faultyFS) inject(op, path string) error {
	err := &fs.PathError{Op: op, Path: path, Err: fs.ErrPermission}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+" "+path] = err
	return err
}

func (f *faultyFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op+" "+path)
	return f.faults[op+" "+path]
}

// Calls returns the recorded calls for op whose path is under prefix
func (f *faultyFS) Calls(op, prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, call := range f.calls {
		callOp, path, _ := strings.Cut(call, " ")
		if callOp == op && strings.HasPrefix(path, prefix) {
			out = append(out, path)
		}
	}
	return out
}

func (f *faultyFS) Remove(ctx context.Context, path string) error {
	if err := f.check("remove", path); err != nil {
		return err
	}
	return f.FileSystem.Remove(ctx, path)
}

func (f *faultyFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := f.check("read", path); err != nil {
		return nil, err
	}
	return f.FileSystem.ReadFile(ctx, path)
}

func (f *faultyFS) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := f.check("write", path); err != nil {
		return err
	}
	return f.FileSystem.WriteFile(ctx, path, data)
}

func (f *faultyFS) Stat(ctx context.Context, path string) (filesystem.FileInfo, error) {
	if err := f.check("stat", path); err != nil {
		return nil, err
	}
	return f.FileSystem.Stat(ctx, path)
}

func (f *faultyFS) Mkdir(ctx context.Context, path string) error {
	if err := f.check("mkdir", path); err != nil {
		return err
	}
	return f.FileSystem.Mkdir(ctx, path)
}

func (f *faultyFS) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", path); err != nil {
		return nil, err
	}
	return f.FileSystem.ReadDir(ctx, path)
}

// 🧪 createTestEnv creates an operator backed by a recording file system
func createTestEnv(t *testing.T) (context.Context, *operation.Operator, *faultyFS, *captureLogger) {
	t.Helper()

	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	fsys := newFaultyFS()
	out := &captureLogger{}
	op, err := operation.New(operation.Options{
		FileSystem: fsys,
		Logger:     out,
	})
	require.NoError(t, err)

	return ctx, op, fsys, out
}

// writeTree creates files (relative path -> content) under root with an
// mtime one hour in the past
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		require.NoError(t, os.Chtimes(path, past, past))
	}
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
