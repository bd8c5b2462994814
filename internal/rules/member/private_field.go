package member

import (
	"strings"

	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// PrivateField recognizes "#name ..." declarations.
type PrivateField struct{}

// Name returns the rule identifier.
func (*PrivateField) Name() string {
	return "private_field"
}

// Classify returns PRIVATE_FIELD with the whole statement as text.
func (*PrivateField) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if !strings.HasPrefix(st.Word(0), "#") {
		return 0, "", false
	}
	return snippet.PrivateField, st.Text, true
}
