package member

import (
	"strings"

	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Constructor recognizes the constructor header.
type Constructor struct{}

// Name returns the rule identifier.
func (*Constructor) Name() string {
	return "constructor"
}

// Classify keeps only the first word, so argument lists do not affect the
// report.
func (*Constructor) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if !strings.HasPrefix(st.Word(0), "constructor") {
		return 0, "", false
	}
	return snippet.Constructor, st.Word(0), true
}
