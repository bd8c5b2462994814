package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// ClassName recognizes the class declaration line.
type ClassName struct{}

// Name returns the rule identifier.
func (*ClassName) Name() string {
	return "class"
}

// Classify returns NAME with the class identifier as text.
func (*ClassName) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "class" {
		return 0, "", false
	}
	return snippet.Name, st.Word(1), true
}
