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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fsbatch/pkg/operation"
)

// 🧪 TestCopyIncremental walks a source through the full incremental cycle
func TestCopyIncremental(t *testing.T) {
	ctx, op, _, out := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"f1.txt":     "one",
		"sub/f2.txt": "two",
	})
	cfg := operation.CopyConfig{Source: src, Target: dst}

	// first run into an empty, existing target
	res, err := op.Copy(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{Directories: 1, Files: 2}, res)
	assert.Equal(t, "one", readString(t, filepath.Join(dst, "f1.txt")))
	assert.Equal(t, "two", readString(t, filepath.Join(dst, "sub", "f2.txt")))
	assert.Contains(t, out.Infos(), fmt.Sprintf("copy %s to %s (directories: 1, files: 2)", src, dst))

	// unchanged source is a no-op
	res, err = op.Copy(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{}, res)

	// touching f1 copies only f1
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile(filepath.Join(src, "f1.txt"), []byte("one v2"), 0o644))
	require.NoError(t, os.Chtimes(filepath.Join(src, "f1.txt"), future, future))

	res, err = op.Copy(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{Directories: 0, Files: 1}, res)
	assert.Equal(t, "one v2", readString(t, filepath.Join(dst, "f1.txt")))
	assert.Empty(t, out.Fails())
}

func TestCopyCreatesMissingTarget(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "mirror")

	writeTree(t, src, map[string]string{
		"a/b/c/deep.txt": "deep",
		"a/top.txt":      "top",
		"empty/.keep":    "",
	})

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.NoError(t, err)
	// mirror, a, a/b, a/b/c, empty
	assert.Equal(t, 5, res.Directories)
	assert.Equal(t, 3, res.Files)
	assert.Equal(t, "deep", readString(t, filepath.Join(dst, "a/b/c/deep.txt")))
}

func TestCopyKeepsNewerDestination(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{"f.txt": "source"})
	require.NoError(t, os.WriteFile(filepath.Join(dst, "f.txt"), []byte("local edit"), 0o644))

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Files)
	assert.Equal(t, "local edit", readString(t, filepath.Join(dst, "f.txt")))
}

func TestCopyEqualMtimeIsSkipped(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	stamp := time.Now().Add(-time.Minute).Truncate(time.Second)
	require.NoError(t, os.WriteFile(filepath.Join(src, "f.txt"), []byte("source"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "f.txt"), []byte("dest"), 0o644))
	require.NoError(t, os.Chtimes(filepath.Join(src, "f.txt"), stamp, stamp))
	require.NoError(t, os.Chtimes(filepath.Join(dst, "f.txt"), stamp, stamp))

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Files, "only a strictly older destination is replaced")
	assert.Equal(t, "dest", readString(t, filepath.Join(dst, "f.txt")))
}

func TestCopyMissingSource(t *testing.T) {
	ctx, op, fsys, out := createTestEnv(t)
	src := filepath.Join(t.TempDir(), "nope")
	dst := filepath.Join(t.TempDir(), "target")

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrSourceMissing)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Equal(t, operation.CopyResult{}, res)

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "target must not be touched")
	assert.Empty(t, fsys.Calls("mkdir", ""))
	assert.Len(t, out.Fails(), 1)
}

func TestCopySourceIsFile(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	_, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: t.TempDir()})
	require.ErrorIs(t, err, operation.ErrNotDirectory)
}

func TestCopyTargetInsideSource(t *testing.T) {
	ctx, op, fsys, logger := createTestEnv(t)
	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "a"})

	for _, target := range []string{
		filepath.Join(src, "out"),
		filepath.Join(src, "deep", "out"),
		src,
	} {
		_, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: target})
		require.ErrorIs(t, err, operation.ErrTargetInsideSource, target)
	}

	assert.Empty(t, fsys.Calls("mkdir", src))
	assert.NoDirExists(t, filepath.Join(src, "out"))
	assert.Len(t, logger.Fails(), 3)

	// a sibling whose name only starts like the source is fine
	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: src + "-out"})
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{Directories: 1, Files: 1}, res)
}

func TestCopyIgnore(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"keep.txt":         "k",
		"scratch.tmp":      "t",
		"sub/nested.tmp":   "t",
		"sub/keep.txt":     "k",
		"cache/blob.bin":   "b",
		"cache/inner/x.go": "x",
	})

	res, err := op.Copy(ctx, operation.CopyConfig{
		Source: src,
		Target: dst,
		Ignore: []string{"**/*.tmp", "cache"},
	})
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{Directories: 1, Files: 2}, res)

	assert.FileExists(t, filepath.Join(dst, "keep.txt"))
	assert.FileExists(t, filepath.Join(dst, "sub", "keep.txt"))
	assert.NoFileExists(t, filepath.Join(dst, "scratch.tmp"))
	assert.NoFileExists(t, filepath.Join(dst, "sub", "nested.tmp"))
	assert.NoDirExists(t, filepath.Join(dst, "cache"))
}

func TestCopyInvalidIgnorePattern(t *testing.T) {
	ctx, op, fsys, _ := createTestEnv(t)

	_, err := op.Copy(ctx, operation.CopyConfig{Source: t.TempDir(), Target: t.TempDir(), Ignore: []string{"["}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
	assert.Empty(t, fsys.Calls("mkdir", ""))
}

func TestCopyWideAndDeepTree(t *testing.T) {
	ctx, op, _, _ := createTestEnv(t)
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	files := map[string]string{}
	dirs := map[string]struct{}{}
	for i := 0; i < 8; i++ {
		for j := 0; j < 4; j++ {
			rel := fmt.Sprintf("d%d/e%d/f%d/file.txt", i, j, j)
			files[rel] = rel
			dirs[fmt.Sprintf("d%d", i)] = struct{}{}
			dirs[fmt.Sprintf("d%d/e%d", i, j)] = struct{}{}
			dirs[fmt.Sprintf("d%d/e%d/f%d", i, j, j)] = struct{}{}
		}
	}
	writeTree(t, src, files)

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.NoError(t, err)
	assert.Equal(t, len(dirs)+1, res.Directories)
	assert.Equal(t, len(files), res.Files)

	for rel, content := range files {
		assert.Equal(t, content, readString(t, filepath.Join(dst, rel)))
	}

	res, err = op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.NoError(t, err)
	assert.Equal(t, operation.CopyResult{}, res, "second run is a no-op")
}

func TestCopyNestedFailure(t *testing.T) {
	ctx, op, fsys, out := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"ok/a.txt":         "a",
		"broken/deep/b.go": "b",
	})
	fsys.inject("mkdir", filepath.Join(dst, "broken", "deep"))

	_, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Len(t, out.Fails(), 1, "the failure is reported once")
	for _, line := range out.Infos() {
		assert.NotContains(t, line, "copy "+src, "no success line after a failure")
	}
}

func TestCopyReadFailure(t *testing.T) {
	ctx, op, fsys, _ := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{"secret.txt": "s"})
	fsys.inject("read", filepath.Join(src, "secret.txt"))

	res, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, 0, res.Files)
	assert.NoFileExists(t, filepath.Join(dst, "secret.txt"))
}

func TestCopyListingFailure(t *testing.T) {
	ctx, op, fsys, _ := createTestEnv(t)
	src := t.TempDir()
	dst := t.TempDir()
	writeTree(t, src, map[string]string{"sub/x.txt": "x"})
	fsys.inject("readdir", filepath.Join(src, "sub"))

	_, err := op.Copy(ctx, operation.CopyConfig{Source: src, Target: dst})
	require.ErrorIs(t, err, fs.ErrPermission)
}
