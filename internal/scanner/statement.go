// Package scanner turns source lines into candidate member declarations,
// tracking enclosing class scopes by indentation alone.
package scanner

import "github.com/donaldgifford/memberlint/internal/snippet"

// Statement is one admitted declaration line, ready for classification.
type Statement struct {
	Line    int          // 1-indexed source line.
	Indent  int          // Column of the leading token.
	Text    string       // Reconstructed statement, tokens joined by one space.
	Words   []string     // Text split on whitespace.
	Parent  snippet.Nest // Scope the statement belongs to.
	Suspect bool         // Indented too deep past Parent to be a field.
}

// Word returns the i-th word, or "" when the statement is shorter.
func (s *Statement) Word(i int) string {
	if i < len(s.Words) {
		return s.Words[i]
	}
	return ""
}
