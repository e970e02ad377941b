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
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/routefix/pkg/rewrite"
	"github.com/walteh/routefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewFixOperation creates a new fix operation
func NewFixOperation(opts Options) (Operation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	return &fixOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📦 fixOperation implements the fix operation
type fixOperation struct {
	BaseOperation
}

// Name implements Operation.Name
func (op *fixOperation) Name() string {
	return "fix"
}

// 🏃 Execute runs the fix operation
func (op *fixOperation) Execute(ctx context.Context) error {
	// Select rules
	rules := rewrite.DefaultRules()
	if op.Config.Rewrite != nil {
		rules = rewrite.FilterRules(rules, op.Config.Rewrite.DisableRules)
	}
	if err := op.Rewriter.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	// Discover candidate files
	files, err := op.discoverFiles(ctx)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	// Start tracking progress
	op.StatusMgr.StartRun(ctx, len(files))

	// Process each file
	for _, file := range files {
		if err := op.processFile(ctx, file, rules); err != nil {
			return errors.Errorf("processing file %s: %w", file, err)
		}
	}

	op.StatusMgr.FinishRun(ctx)
	return nil
}

// 🔍 discoverFiles lists files directly under the routes directory that match
// the configured pattern. The listing is not recursive and not sorted; files
// are processed in whatever order the directory yields.
func (op *fixOperation) discoverFiles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(op.Config.RoutesDir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", op.Config.RoutesDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(op.Config.Pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching pattern %s: %w", op.Config.Pattern, err)
		}
		if !matched || op.shouldIgnore(entry.Name()) {
			continue
		}

		files = append(files, filepath.Join(op.Config.RoutesDir, entry.Name()))
	}

	if op.Logger != nil {
		op.Logger.Debug().Int("files", len(files)).Str("dir", op.Config.RoutesDir).Msg("discovered candidate files")
	}
	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func (op *fixOperation) shouldIgnore(name string) bool {
	if op.Config.Rewrite == nil || len(op.Config.Rewrite.IgnorePatterns) == 0 {
		return false
	}

	for _, pattern := range op.Config.Rewrite.IgnorePatterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			if op.Logger != nil {
				op.Logger.Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching ignore pattern")
			}
			continue
		}
		if matched {
			if op.Logger != nil {
				op.Logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			}
			return true
		}
	}

	return false
}

// 📄 processFile reads a file, applies the rules, and writes the result back
// only when the content changed. A skipped file is never touched on disk.
func (op *fixOperation) processFile(ctx context.Context, path string, rules []rewrite.Rule) error {
	op.StatusMgr.Processing(ctx, path)

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stating file: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	result, err := op.Rewriter.Rewrite(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return errors.Errorf("rewriting content: %w", err)
	}

	if !result.WasModified {
		op.StatusMgr.Record(ctx, path, status.StatusUnchanged, 0)
		return nil
	}

	// In-place truncate-and-write, preserving the original mode. Deliberately
	// not a temp-file-and-rename: an interrupted run leaves a half-migrated
	// tree, which a rerun completes.
	if err := os.WriteFile(path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	op.StatusMgr.Record(ctx, path, status.StatusFixed, result.RewriteCount)
	return nil
}
