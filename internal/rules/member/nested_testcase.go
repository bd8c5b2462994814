package member

import (
	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// NestedTestCase recognizes "static Foo = class extends <TestCase> {".
type NestedTestCase struct{}

// Name returns the rule identifier.
func (*NestedTestCase) Name() string {
	return "nested_testcase"
}

// Classify returns the test case name as text.
func (*NestedTestCase) Classify(st *scanner.Statement, t *classify.Tables) (snippet.Category, string, bool) {
	if st.Word(0) != "static" || !t.TestCase.MatchString(st.Text) {
		return 0, "", false
	}
	return snippet.NestedTestCase, st.Word(1), true
}
