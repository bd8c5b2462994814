package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// StaticField accepts any remaining static member.
type StaticField struct{}

// Name returns the rule identifier.
func (*StaticField) Name() string {
	return "static_field"
}

// Classify picks the visibility from the field name.
func (*StaticField) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "static" {
		return 0, "", false
	}
	cat := snippet.Visibility(st.Word(1), snippet.StaticPrivateField, snippet.StaticPublicField)
	return cat, st.Text, true
}
