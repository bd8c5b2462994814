package classify

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/donaldgifford/memberlint/internal/config"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Tables holds the compiled, read-only pattern tables the rules consult.
type Tables struct {
	// TestCase matches a static class literal extending the test base class.
	TestCase *regexp.Regexp
	// HelperFactories are substrings marking a one-line factory member.
	HelperFactories []string
}

// NewTables compiles cfg into Tables.
func NewTables(cfg *config.LintConfig) (*Tables, error) {
	re, err := regexp.Compile(` = class extends ` + regexp.QuoteMeta(cfg.TestBaseClass) + ` \{`)
	if err != nil {
		return nil, fmt.Errorf("compiling test case pattern: %w", err)
	}
	return &Tables{
		TestCase:        re,
		HelperFactories: slices.Clone(cfg.HelperFactories),
	}, nil
}

// Run classifies st with the first matching rule. It returns false when no
// rule accepts the statement, in which case the line is not a member.
func Run(st *scanner.Statement, t *Tables, rules []Rule) (snippet.Snippet, bool) {
	for _, rule := range rules {
		if cat, text, ok := rule.Classify(st, t); ok {
			return snippet.Snippet{
				Category: cat,
				Text:     text,
				Line:     st.Line,
				Parent:   st.Parent,
			}, true
		}
	}
	return snippet.Snippet{}, false
}
