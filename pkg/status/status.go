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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 FileStatus represents the outcome of processing a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // Content changed and was written back
	StatusUnchanged            // Content already matched, nothing written
	StatusError                // Processing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnchanged:
		return "unchanged"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileResult contains the recorded outcome for a single file
type FileResult struct {
	Path     string     // Path as discovered
	Status   FileStatus // Processing outcome
	Rewrites int        // Number of pattern matches rewritten
}

// 📈 Summary aggregates a whole run
type Summary struct {
	Total     int
	Fixed     int
	Unchanged int
}

// 🔧 Manager tracks per-file outcomes and reports them to the console
type Manager struct {
	console   io.Writer
	formatter FileFormatter

	mu    sync.Mutex
	files map[string]FileResult
	order []string
	total int
}

// 🏭 NewManager creates a new status manager
func NewManager(console io.Writer, formatter FileFormatter) *Manager {
	return &Manager{
		console:   console,
		formatter: formatter,
		files:     make(map[string]FileResult),
	}
}

// 🏁 StartRun begins tracking a run over the given number of files
func (m *Manager) StartRun(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.files = make(map[string]FileResult)
	m.order = nil

	zerolog.Ctx(ctx).Debug().Int("files", total).Msg("starting run")
}

// 📝 Processing announces that a file is about to be processed
func (m *Manager) Processing(ctx context.Context, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fmt.Fprintln(m.console, m.formatter.FormatProcessing(path))
	zerolog.Ctx(ctx).Debug().Str("file", path).Msg("processing file")
}

// 📝 Record records and reports the outcome for a file
func (m *Manager) Record(ctx context.Context, path string, status FileStatus, rewrites int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.files[path]; !seen {
		m.order = append(m.order, path)
	}
	m.files[path] = FileResult{Path: path, Status: status, Rewrites: rewrites}

	fmt.Fprintln(m.console, m.formatter.FormatResult(path, status))

	zerolog.Ctx(ctx).Info().
		Str("file", path).
		Str("status", status.String()).
		Int("rewrites", rewrites).
		Msg("file processed")
}

// 🏁 FinishRun prints the run summary and returns the aggregated counts
func (m *Manager) FinishRun(ctx context.Context) Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := Summary{Total: m.total}
	for _, path := range m.order {
		switch m.files[path].Status {
		case StatusFixed:
			summary.Fixed++
		case StatusUnchanged:
			summary.Unchanged++
		}
	}

	fmt.Fprintln(m.console, m.formatter.FormatSummary(summary))

	zerolog.Ctx(ctx).Info().
		Int("total", summary.Total).
		Int("fixed", summary.Fixed).
		Int("unchanged", summary.Unchanged).
		Msg("run complete")

	return summary
}

// 🔍 Results returns the recorded outcomes in processing order
func (m *Manager) Results() []FileResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := make([]FileResult, 0, len(m.order))
	for _, path := range m.order {
		results = append(results, m.files[path])
	}
	return results
}
