package report

import (
	"fmt"
	"io"

	"github.com/donaldgifford/memberlint/internal/lint"
	"github.com/donaldgifford/memberlint/pkg/diff"
)

// Options controls report rendering.
type Options struct {
	Color bool
}

// Violations writes one block per non-conformant class in res: a
// "bad: <file>: <class>" header followed by a unified diff from the declared
// order to the canonical order. It returns the number of blocks written.
func Violations(w io.Writer, res *lint.FileResult, opts Options) (int, error) {
	n := 0
	for i := range res.Groups {
		g := &res.Groups[i]
		if g.Conformant() {
			continue
		}
		n++

		d := diff.Lines(
			res.Path+" (declared)",
			res.Path+" (canonical)",
			Lines(g.Declared),
			Lines(g.Canonical),
			diff.Options{Color: opts.Color},
		)
		if _, err := fmt.Fprintf(w, "bad: %s: %s\n%s\n", res.Path, g.Declared[0], d); err != nil {
			return n, fmt.Errorf("writing report for %s: %w", res.Path, err)
		}
	}
	return n, nil
}

// Canonical writes the canonical member order of every class in res.
func Canonical(w io.Writer, res *lint.FileResult) error {
	for i := range res.Groups {
		g := &res.Groups[i]
		if _, err := fmt.Fprintf(w, "== %s: %s\n", res.Path, g.Class()); err != nil {
			return fmt.Errorf("writing listing for %s: %w", res.Path, err)
		}
		for _, line := range Lines(g.Canonical) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing listing for %s: %w", res.Path, err)
			}
		}
	}
	return nil
}
