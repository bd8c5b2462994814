// Package classify maps admitted statements to member categories.
package classify

import (
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Rule recognizes one shape of member declaration. Rules are tried in
// registered order and the first match wins.
type Rule interface {
	// Name returns a short identifier for the rule (e.g., "static_method").
	Name() string

	// Classify returns the category and snippet text for st, or ok=false to
	// pass the statement to the next rule.
	Classify(st *scanner.Statement, t *Tables) (cat snippet.Category, text string, ok bool)
}
