package snippet

import "fmt"

// Nest is an enclosing scope: a class, a class-like static assignment, or
// the synthetic file root (empty name, indent 0, line 0).
type Nest struct {
	Indent int
	Line   int
	Name   string
}

// Root is the synthetic scope every file starts in.
var Root = Nest{}

// Less is the fallback scope order: indent, then line, then name.
func (n Nest) Less(o Nest) bool {
	if n.Indent != o.Indent {
		return n.Indent < o.Indent
	}
	if n.Line != o.Line {
		return n.Line < o.Line
	}
	return n.Name < o.Name
}

func (n Nest) String() string {
	if n.Name == "" {
		return "<root>"
	}
	return n.Name
}

// Snippet is one classified member declaration.
type Snippet struct {
	Category Category
	Text     string // Identifier for scope-opening categories, else the statement.
	Line     int    // 1-indexed source line.
	Parent   Nest
}

// String renders the snippet the way reports and listings show it.
func (s Snippet) String() string {
	return fmt.Sprintf("%s %s (line %d, in %s)", s.Category, s.Text, s.Line, s.Parent)
}
