package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Method recognizes instance method headers, including arrow-valued
// members. Visibility comes from the first word, so "async #m() {" counts
// as public.
type Method struct{}

// Name returns the rule identifier.
func (*Method) Name() string {
	return "method"
}

// Classify picks the visibility from the first word.
func (*Method) Classify(st *scanner.Statement, _ *classify.Tables) (snippet.Category, string, bool) {
	if !methodRe.MatchString(st.Text) {
		return 0, "", false
	}
	return snippet.Visibility(st.Word(0), snippet.PrivateMethod, snippet.PublicMethod), st.Text, true
}
