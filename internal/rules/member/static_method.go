package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// StaticMethod recognizes static method headers.
type StaticMethod struct{}

// Name returns the rule identifier.
func (*StaticMethod) Name() string {
	return "static_method"
}

// Classify picks the visibility from the method name.
func (*StaticMethod) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "static" || !methodRe.MatchString(st.Text) {
		return 0, "", false
	}
	cat := snippet.Visibility(st.Word(1), snippet.StaticPrivateMethod, snippet.StaticPublicMethod)
	return cat, st.Text, true
}
