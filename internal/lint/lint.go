// Package lint runs the per-file pipeline: scan, classify, group by class,
// and order each group canonically.
package lint

import (
	"fmt"

	"github.com/donaldgifford/memberlint/internal/classify"
	"github.com/donaldgifford/memberlint/internal/config"
	"github.com/donaldgifford/memberlint/internal/order"
	"github.com/donaldgifford/memberlint/internal/scanner"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// Group is every member of one class from its declaration to the next class
// boundary, as declared and as the style guide orders it.
type Group struct {
	Declared  []snippet.Snippet
	Canonical []snippet.Snippet
}

// Class returns the class name the group was opened by.
func (g *Group) Class() string {
	return g.Declared[0].Text
}

// Conformant reports whether the declared order is canonical.
func (g *Group) Conformant() bool {
	if len(g.Declared) != len(g.Canonical) {
		return false
	}
	for i := range g.Declared {
		if g.Declared[i] != g.Canonical[i] {
			return false
		}
	}
	return true
}

// FileResult holds the class groups found in one file.
type FileResult struct {
	Path   string
	Groups []Group
}

// Conformant reports whether every class in the file is conformant.
func (r *FileResult) Conformant() bool {
	for i := range r.Groups {
		if !r.Groups[i].Conformant() {
			return false
		}
	}
	return true
}

// Linter holds the compiled tables and rules. It carries no per-file state
// and is safe for concurrent use.
type Linter struct {
	scanner *scanner.Scanner
	tables  *classify.Tables
	rules   []classify.Rule
}

// New compiles cfg and binds the classification rules, in match order.
func New(cfg *config.LintConfig, rules []classify.Rule) (*Linter, error) {
	sc, err := scanner.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("building scanner: %w", err)
	}
	tables, err := classify.NewTables(cfg)
	if err != nil {
		return nil, fmt.Errorf("building classifier tables: %w", err)
	}
	return &Linter{scanner: sc, tables: tables, rules: rules}, nil
}

// File checks one file's source text.
func (l *Linter) File(path, src string) *FileResult {
	res := &FileResult{Path: path}
	for _, declared := range l.Snippets(src) {
		res.Groups = append(res.Groups, Group{
			Declared:  declared,
			Canonical: order.Canonical(declared),
		})
	}
	return res
}

// Snippets returns the classified members of src split into class groups.
// A class declaration closes the group before it; members seen before any
// class declaration are dropped.
func (l *Linter) Snippets(src string) [][]snippet.Snippet {
	var groups [][]snippet.Snippet
	var current []snippet.Snippet

	flush := func() {
		if len(current) > 0 && current[0].Category == snippet.Name {
			groups = append(groups, current)
		}
		current = nil
	}

	for _, st := range l.scanner.Scan(src) {
		s, ok := classify.Run(&st, l.tables, l.rules)
		if !ok {
			continue
		}
		if s.Category == snippet.Name {
			flush()
		}
		current = append(current, s)
	}
	flush()

	return groups
}
