package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// PublicField is the fallback rule. Statements indented well past their
// scope are most likely local assignments inside a method body and are
// dropped.
type PublicField struct{}

// Name returns the rule identifier.
func (*PublicField) Name() string {
	return "public_field"
}

// Classify accepts anything that is not suspect.
func (*PublicField) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Suspect {
		return 0, "", false
	}
	return snippet.PublicField, st.Text, true
}
