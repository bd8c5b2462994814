// Package order computes the canonical member order of a class.
package order

import (
	"strings"

	"github.com/donaldgifford/memberlint/internal/snippet"
)

// key carries the per-snippet sort inputs, computed once.
type key struct {
	snippet.Snippet
	tiebreak string // Field text or accessor name; empty for line-ordered categories.
}

func newKey(s snippet.Snippet) key {
	k := key{Snippet: s}
	switch {
	case s.Category.IsField():
		k.tiebreak = s.Text
	case s.Category.IsGetter():
		k.tiebreak = AccessorName(s.Text)
	}
	return k
}

// Less reports whether a sorts before b in canonical order.
func Less(a, b snippet.Snippet) bool {
	return less(newKey(a), newKey(b))
}

func less(a, b key) bool {
	if a.Parent != b.Parent {
		// A snippet naming the other's scope never sorts before it.
		if strings.Contains(a.Text, b.Parent.Name) {
			return false
		}
		return a.Parent.Less(b.Parent)
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	if a.Category.IsField() || a.Category.IsGetter() {
		return a.tiebreak < b.tiebreak
	}
	return a.Line < b.Line
}

func compare(a, b key) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	}
	return 0
}

// AccessorName extracts the property name from a getter or setter
// declaration: the second-to-last word with any argument list removed.
func AccessorName(text string) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}
	name, _, _ := strings.Cut(words[len(words)-2], "(")
	return name
}
