package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// StaticClass recognizes "static Foo = class {" and its private form.
type StaticClass struct{}

// Name returns the rule identifier.
func (*StaticClass) Name() string {
	return "static_class"
}

// Classify returns the nested class name as text.
func (*StaticClass) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "static" || !staticClassRe.MatchString(st.Text) {
		return 0, "", false
	}
	cat := snippet.Visibility(st.Word(1), snippet.StaticPrivateClass, snippet.StaticPublicClass)
	return cat, st.Word(1), true
}
