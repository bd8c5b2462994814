package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// StaticAccessor recognizes "static get x()" and "static set x(v)".
type StaticAccessor struct{}

// Name returns the rule identifier.
func (*StaticAccessor) Name() string {
	return "static_accessor"
}

// Classify picks the visibility from the accessor name.
func (*StaticAccessor) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "static" || !isAccessorKeyword(st.Word(1)) {
		return 0, "", false
	}
	cat := snippet.Visibility(st.Word(2), snippet.StaticPrivateGetter, snippet.StaticPublicGetter)
	return cat, st.Text, true
}
