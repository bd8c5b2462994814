// Package report writes violation diffs and canonical listings.
package report

import "github.com/donaldgifford/memberlint/internal/snippet"

// Lines renders each snippet on its own line.
func Lines(ss []snippet.Snippet) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}
