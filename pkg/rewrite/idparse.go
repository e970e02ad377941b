package rewrite

import (
	"context"
	"regexp"
	"strings"
)

// Rule names, usable in config disable_rules
const (
	RuleDestructuredID = "destructured-id"
	RuleSuffixedID     = "suffixed-id"
)

var (
	// const { id } = req.params;
	destructuredIDPattern = regexp.MustCompile(`const \{ id \} = req\.params;`)

	// const userId = req.params.id;
	// NOTE: the \w+Id capture is deliberately permissive and will also match
	// variables that merely end in "Id". Acceptable for a one-time migration
	// over route files; tighten the boundary before reusing elsewhere.
	suffixedIDPattern = regexp.MustCompile(`const (\w+Id) = req\.params\.id;`)
)

const destructuredIDReplace = `const id = parseInt(req.params.id);
    if (isNaN(id)) {
      return res.status(400).json({ success: false, error: 'Invalid ID' });
    }`

const suffixedIDReplace = `const $1 = parseInt(req.params.id);
    if (isNaN($1)) {
      return res.status(400).json({ success: false, error: 'Invalid ID' });
    }`

// DefaultRules returns the id-parsing rules in application order. The
// destructured form runs first so the suffixed rule only sees assignments
// the first rule did not consume.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    RuleDestructuredID,
			Pattern: destructuredIDPattern,
			Replace: destructuredIDReplace,
		},
		{
			Name:    RuleSuffixedID,
			Pattern: suffixedIDPattern,
			Replace: suffixedIDReplace,
		},
	}
}

// FilterRules returns rules with the named rules removed
func FilterRules(rules []Rule, disabled []string) []Rule {
	if len(disabled) == 0 {
		return rules
	}
	kept := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		skip := false
		for _, name := range disabled {
			if strings.EqualFold(name, rule.Name) {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, rule)
		}
	}
	return kept
}

// Transform applies the default rules to content and returns the rewritten
// text. It is pure: content with no matching idiom comes back unchanged, and
// rewritten output no longer matches either pattern, so the function is
// idempotent.
func Transform(content string) string {
	result, err := NewRegexRewriter().Rewrite(context.Background(), strings.NewReader(content), DefaultRules())
	if err != nil {
		// strings.Reader cannot fail mid-read
		return content
	}
	return string(result.ModifiedContent)
}
