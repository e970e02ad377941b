package rewrite

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexRewriter_Rewrite(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []Rule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:    "simple_rewrite",
			content: "Hello World",
			rules: []Rule{
				{Name: "world", Pattern: regexp.MustCompile(`World`), Replace: "Universe"},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "multiple_matches",
			content: "Hello World World",
			rules: []Rule{
				{Name: "world", Pattern: regexp.MustCompile(`World`), Replace: "Universe"},
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "multiple_rules_in_order",
			content: "Hello World",
			rules: []Rule{
				{Name: "hello", Pattern: regexp.MustCompile(`Hello`), Replace: "Hi"},
				{Name: "world", Pattern: regexp.MustCompile(`World`), Replace: "Universe"},
			},
			want:         "Hi Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "capture_group_expansion",
			content: "const userId = req.params.id;",
			rules: []Rule{
				{
					Name:    "capture",
					Pattern: regexp.MustCompile(`const (\w+) =`),
					Replace: "let $1 =",
				},
			},
			want:         "let userId = req.params.id;",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []Rule{
				{Name: "bye", Pattern: regexp.MustCompile(`Goodbye`), Replace: "Hi"},
			},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "empty_content",
			content: "",
			rules: []Rule{
				{Name: "world", Pattern: regexp.MustCompile(`World`), Replace: "Universe"},
			},
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        []Rule{},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "nil_pattern_skipped",
			content: "Hello World",
			rules: []Rule{
				{Name: "broken"},
				{Name: "world", Pattern: regexp.MustCompile(`World`), Replace: "Universe"},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter := NewRegexRewriter()
			result, err := rewriter.Rewrite(
				context.Background(),
				strings.NewReader(tt.content),
				tt.rules,
			)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.content, string(result.OriginalContent), "original content should be preserved")
			assert.Equal(t, tt.want, string(result.ModifiedContent), "modified content should match")
			assert.Equal(t, tt.wantCount, result.RewriteCount, "rewrite count should match")
			assert.Equal(t, tt.wantModified, result.WasModified, "modified flag should match")
		})
	}
}

func TestRegexRewriter_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: DefaultRules(),
		},
		{
			name: "missing_name",
			rules: []Rule{
				{Pattern: regexp.MustCompile(`x`), Replace: "y"},
			},
			wantError: "name is required",
		},
		{
			name: "missing_pattern",
			rules: []Rule{
				{Name: "no-pattern", Replace: "y"},
			},
			wantError: "pattern is required",
		},
		{
			name: "missing_replacement",
			rules: []Rule{
				{Name: "no-replace", Pattern: regexp.MustCompile(`x`)},
			},
			wantError: "replacement is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegexRewriter().ValidateRules(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
