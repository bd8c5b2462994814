package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Accessor recognizes instance getters and setters.
type Accessor struct{}

// Name returns the rule identifier.
func (*Accessor) Name() string {
	return "accessor"
}

// Classify picks the visibility from the accessor name.
func (*Accessor) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if !isAccessorKeyword(st.Word(0)) {
		return 0, "", false
	}
	return snippet.Visibility(st.Word(1), snippet.PrivateGetter, snippet.PublicGetter), st.Text, true
}
