package order

import (
	"slices"

	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Canonical returns group in canonical order. Members of a nested class
// follow the nested class declaration directly, before the outer class
// resumes.
func Canonical(group []snippet.Snippet) []snippet.Snippet {
	keys := make([]key, len(group))
	for i, s := range group {
		keys[i] = newKey(s)
	}

	// Sub-roots by name; a later declaration with the same name wins.
	roots := make(map[string]int)
	for i, s := range group {
		if s.Category.IsSubRoot() {
			roots[s.Text] = i
		}
	}

	const top = -1
	buckets := make(map[int][]int)
	for i, s := range group {
		owner, ok := roots[s.Parent.Name]
		if !ok {
			owner = top
		}
		buckets[owner] = append(buckets[owner], i)
	}

	sorted := func(idx []int) []int {
		out := slices.Clone(idx)
		slices.SortStableFunc(out, func(a, b int) int {
			return compare(keys[a], keys[b])
		})
		return out
	}

	result := make([]snippet.Snippet, 0, len(group))
	expanded := make(map[int]bool)
	emitted := make([]bool, len(group))
	working := sorted(buckets[top])
	for len(working) > 0 {
		i := working[0]
		working = working[1:]
		if emitted[i] {
			continue
		}
		emitted[i] = true
		result = append(result, group[i])

		// Each scope is spliced in once, so a class nested under its own
		// name cannot loop.
		if children, ok := buckets[i]; ok && !expanded[i] {
			expanded[i] = true
			working = append(sorted(children), working...)
		}
	}

	// Scopes that only reach each other are unreachable from the top; keep
	// them, in source order, rather than drop them from the report.
	for i, done := range emitted {
		if !done {
			result = append(result, group[i])
		}
	}
	return result
}

// Conformant reports whether group is already in canonical order.
func Conformant(group []snippet.Snippet) bool {
	return slices.Equal(group, Canonical(group))
}
