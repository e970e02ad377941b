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

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(logger *Logger)
		wantLogs []string
	}{
		{
			name: "header",
			op: func(logger *Logger) {
				logger.Header("fixing id parsing in route files")
			},
			wantLogs: []string{
				"routefix • fixing id parsing in route files",
			},
		},
		{
			name: "success",
			op: func(logger *Logger) {
				logger.Success("all files processed")
			},
			wantLogs: []string{
				"✅ all files processed",
			},
		},
		{
			name: "warning",
			op: func(logger *Logger) {
				logger.Warningf("skipping %s", "weird.ts")
			},
			wantLogs: []string{
				"⚠️  skipping weird.ts",
			},
		},
		{
			name: "error",
			op: func(logger *Logger) {
				logger.Errorf("reading %s failed", "users.ts")
			},
			wantLogs: []string{
				"❌ reading users.ts failed",
			},
		},
		{
			name: "info",
			op: func(logger *Logger) {
				logger.Infof("%d files discovered", 3)
			},
			wantLogs: []string{
				"ℹ️  3 files discovered",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			logger := New(&console, zerolog.Disabled)

			tt.op(logger)

			for _, want := range tt.wantLogs {
				assert.Contains(t, console.String(), want)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	var console bytes.Buffer
	logger := New(&console, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	got := FromContext(ctx)
	require.Same(t, logger, got)

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}
