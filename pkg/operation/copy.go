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
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/fsbatch/pkg/filesystem"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSourceMissing is returned by Copy when the source path does not exist
	ErrSourceMissing = errors.Base("source does not exist")
	// ErrNotDirectory is returned by Copy when the source is not a directory
	ErrNotDirectory = errors.Base("source is not a directory")

	// ErrTargetInsideSource is returned by Copy when Target is Source or lies
	// below it, which would make the mirror copy into itself forever
	ErrTargetInsideSource = errors.Base("target is inside source")
)

// 📦 CopyConfig is the root pair of a directory mirror
type CopyConfig struct {
	Source string
	Target string
	// Ignore holds doublestar patterns matched against paths relative to
	// Source, slash separated. A matching directory is skipped whole.
	Ignore []string
}

// 📊 CopyResult counts what one Copy call changed
type CopyResult struct {
	Directories int // directories created
	Files       int // files copied
}

// 📋 Copy mirrors the Source tree into Target. Missing target directories are
// created and a file is copied when its destination is missing or has an
// older modification time than the source. Subdirectories are processed
// concurrently; Copy returns once every branch is done. The first failure
// cancels the remaining branches and is returned together with the counts
// reached so far.
func (o *Operator) Copy(ctx context.Context, cfg CopyConfig) (CopyResult, error) {
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return CopyResult{}, o.fail(errors.Errorf("invalid ignore pattern %q", pattern))
		}
	}

	inside, err := within(cfg.Source, cfg.Target)
	if err != nil {
		return CopyResult{}, o.fail(errors.Errorf("resolving copy paths: %w", err))
	}
	if inside {
		return CopyResult{}, o.fail(errors.Errorf("%s: %w", cfg.Target, ErrTargetInsideSource))
	}

	info, err := o.fs.Stat(ctx, cfg.Source)
	if err != nil {
		if filesystem.KindOf(err) == filesystem.KindNotFound {
			return CopyResult{}, o.fail(errors.Errorf("%s: %w", cfg.Source, ErrSourceMissing))
		}
		return CopyResult{}, o.fail(errors.Errorf("checking source %s: %w", cfg.Source, err))
	}
	if !info.IsDir() {
		return CopyResult{}, o.fail(errors.Errorf("%s: %w", cfg.Source, ErrNotDirectory))
	}

	group, gctx := errgroup.WithContext(ctx)
	c := &copier{
		fs:     o.fs,
		root:   cfg.Source,
		ignore: cfg.Ignore,
		group:  group,
	}

	group.Go(func() error {
		return c.process(gctx, cfg.Source, cfg.Target)
	})
	err = group.Wait()

	result := CopyResult{
		Directories: int(c.directories.Load()),
		Files:       int(c.files.Load()),
	}
	if err != nil {
		return result, o.fail(err)
	}

	o.logger.Info("copy %s to %s (directories: %s, files: %s)",
		o.logger.Bold(cfg.Source),
		o.logger.Bold(cfg.Target),
		o.logger.Bold(result.Directories),
		o.logger.Bold(result.Files))

	return result, nil
}

// copier holds the state of one Copy call. The errgroup tracks every
// directory branch still in flight.
type copier struct {
	fs     filesystem.FileSystem
	root   string
	ignore []string
	group  *errgroup.Group

	directories atomic.Int64
	files       atomic.Int64
}

// process mirrors one directory level. Subdirectories are handed to the group
// without waiting; files are handled in listing order.
func (c *copier) process(ctx context.Context, source, target string) error {
	err := c.fs.Mkdir(ctx, target)
	switch filesystem.KindOf(err) {
	case filesystem.KindNone:
		c.directories.Add(1)
	case filesystem.KindExists:
	default:
		return err
	}

	entries, err := c.fs.ReadDir(ctx, source)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		sourceItem := filepath.Join(source, entry.Name())
		targetItem := filepath.Join(target, entry.Name())

		if c.ignored(ctx, sourceItem) {
			continue
		}

		// stat follows symlinks, so a link to a directory is mirrored as one
		info, err := c.fs.Stat(ctx, sourceItem)
		if err != nil {
			return err
		}

		switch {
		case info.IsDir():
			c.group.Go(func() error {
				return c.process(ctx, sourceItem, targetItem)
			})
		case info.Mode().IsRegular():
			if err := c.copyFile(ctx, sourceItem, targetItem, info); err != nil {
				return err
			}
		default:
			zerolog.Ctx(ctx).Debug().Str("path", sourceItem).Str("mode", info.Mode().String()).Msg("skipping non regular file")
		}
	}

	return nil
}

// copyFile copies sourceItem when the destination is missing or older
func (c *copier) copyFile(ctx context.Context, sourceItem, targetItem string, sourceInfo filesystem.FileInfo) error {
	targetInfo, err := c.fs.Stat(ctx, targetItem)
	switch filesystem.KindOf(err) {
	case filesystem.KindNone:
		if !targetInfo.ModTime().Before(sourceInfo.ModTime()) {
			return nil
		}
	case filesystem.KindNotFound:
	default:
		return err
	}

	data, err := c.fs.ReadFile(ctx, sourceItem)
	if err != nil {
		return err
	}
	if err := c.fs.WriteFile(ctx, targetItem, data); err != nil {
		return err
	}

	c.files.Add(1)
	zerolog.Ctx(ctx).Debug().Str("source", sourceItem).Str("target", targetItem).Int("size", len(data)).Msg("copied file")
	return nil
}

// ignored reports whether path matches one of the ignore patterns
func (c *copier) ignored(ctx context.Context, path string) bool {
	if len(c.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range c.ignore {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			zerolog.Ctx(ctx).Debug().Str("path", rel).Str("pattern", pattern).Msg("ignored by pattern")
			return true
		}
	}
	return false
}

// within reports whether target is root or one of its descendants
func within(root, target string) (bool, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
