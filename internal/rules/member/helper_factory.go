package member

import (
	"strings"

	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// HelperFactory treats one-line factory members such as
// "next = new Shortcut(...)" as methods instead of fields.
type HelperFactory struct{}

// Name returns the rule identifier.
func (*HelperFactory) Name() string {
	return "helper_factory"
}

// Classify matches any configured factory substring.
func (*HelperFactory) Classify(st *scanner.Statement, t *classify.Tables) (snippet.Category, string, bool) {
	for _, f := range t.HelperFactories {
		if f != "" && strings.Contains(st.Text, f) {
			return snippet.PublicMethod, st.Text, true
		}
	}
	return 0, "", false
}
