package rewrite

import (
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// Rule defines a single pattern-based rewrite operation
type Rule struct {
	// Name identifies the rule in config and logs
	Name string

	// Pattern is the regular expression matched against raw file content
	Pattern *regexp.Regexp

	// Replace is the expansion template applied to each match. Capture
	// groups are referenced as $1, $2, ...
	Replace string
}

// Result contains the results of a rewrite operation
type Result struct {
	// WasModified indicates if any rewrites were made
	WasModified bool

	// RewriteCount is the number of pattern matches rewritten
	RewriteCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Rewriter defines the interface for rule-based content rewriting
type Rewriter interface {
	// Rewrite applies the rules in order to the content.
	// Returns a Result containing the modified content and metadata
	Rewrite(ctx context.Context, content io.Reader, rules []Rule) (*Result, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}

// RegexRewriter implements Rewriter using regular expression replacement
type RegexRewriter struct{}

// NewRegexRewriter creates a new RegexRewriter
func NewRegexRewriter() *RegexRewriter {
	return &RegexRewriter{}
}

// Rewrite implements Rewriter.Rewrite. Rules are applied in slice order,
// so a later rule still sees whatever an earlier rule did not consume.
func (r *RegexRewriter) Rewrite(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.Pattern == nil {
			continue
		}

		matches := rule.Pattern.FindAllStringIndex(currentContent, -1)
		if len(matches) == 0 {
			continue
		}

		newContent := rule.Pattern.ReplaceAllString(currentContent, rule.Replace)
		if newContent != currentContent {
			result.WasModified = true
			result.RewriteCount += len(matches)
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Rewriter.ValidateRules
func (r *RegexRewriter) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == nil {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if rule.Replace == "" {
			return errors.Errorf("rule %d (%s): replacement is required", i, rule.Name)
		}
	}
	return nil
}
