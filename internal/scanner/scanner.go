package scanner

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/donaldgifford/memberlint/internal/config"
	"github.com/donaldgifford/memberlint/internal/snippet"
)

// joinKeywords are leading tokens merged with the following token before
// the rest of the line is considered.
var joinKeywords = map[string]bool{
	"class":  true,
	"static": true,
	"get":    true,
	"set":    true,
	"async":  true,
}

// Scanner holds the compiled skip tables. It is immutable after New and may
// be shared between goroutines; all per-file state lives in Scan.
type Scanner struct {
	maxIndent      int
	suspectIndent  int
	skipKeywords   map[string]bool
	skipSubstrings []string
	skipPrefixes   []string
	skipPatterns   []*regexp.Regexp
	bareHeaders    map[string]bool
}

// New compiles the scanner tables from cfg.
func New(cfg *config.LintConfig) (*Scanner, error) {
	s := &Scanner{
		maxIndent:      cfg.MaxIndent,
		suspectIndent:  cfg.SuspectIndent,
		skipKeywords:   make(map[string]bool, len(cfg.SkipKeywords)),
		skipSubstrings: slices.Clone(cfg.SkipSubstrings),
		skipPrefixes:   slices.Clone(cfg.SkipPrefixes),
		bareHeaders:    make(map[string]bool, len(cfg.BareHeaders)),
	}
	for _, kw := range cfg.SkipKeywords {
		s.skipKeywords[kw] = true
	}
	for _, h := range cfg.BareHeaders {
		s.bareHeaders[h] = true
	}
	for _, p := range cfg.SkipPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling skip pattern %q: %w", p, err)
		}
		s.skipPatterns = append(s.skipPatterns, re)
	}
	return s, nil
}

// Scan returns the admitted statements of src in source order.
func (s *Scanner) Scan(src string) []Statement {
	st := &state{scanner: s, nesting: []snippet.Nest{snippet.Root}}
	for i, line := range splitLines(src) {
		st.line(i+1, line)
	}
	return st.out
}

// state tracks the scope stack and class awareness across lines.
type state struct {
	scanner *Scanner
	nesting []snippet.Nest
	inClass bool
	out     []Statement
}

func (st *state) top() snippet.Nest {
	return st.nesting[len(st.nesting)-1]
}

// pop leaves the innermost scope. Leaving the last class scope ends class
// awareness.
func (st *state) pop() {
	if len(st.nesting) > 1 {
		st.nesting = st.nesting[:len(st.nesting)-1]
	}
	if len(st.nesting) == 1 {
		st.inClass = false
	}
}

func (st *state) line(num int, line string) {
	// Only space-indented lines carry structure.
	if !strings.HasPrefix(line, " ") {
		return
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	s := st.scanner
	code, rest := words[0], words[1:]
	indent := strings.Index(line, code)
	parent := st.top()

	if s.isStatement(code) {
		// A function at or outside the current scope ends the class.
		if code == "function" && (indent <= parent.Indent || parent.Indent == 0) {
			st.inClass = false
		}
		return
	}

	if indent <= parent.Indent {
		st.pop()
		parent = st.top()
	}

	if !isDeclarationStart(code) {
		return
	}

	if code == "class" || slices.Contains(rest, "class") {
		name := ""
		if len(rest) > 0 {
			name = rest[0]
		}
		st.inClass = true
		st.nesting = append(st.nesting, snippet.Nest{Indent: indent, Line: num, Name: name})
	}

	if joinKeywords[code] {
		if len(rest) == 0 {
			return
		}
		code += " " + rest[0]
		rest = rest[1:]
		if s.bareHeaders[code] {
			return
		}
	}

	if !st.inClass {
		return
	}

	text := code
	if len(rest) > 0 {
		text += " " + strings.Join(rest, " ")
	}

	for _, re := range s.skipPatterns {
		if re.MatchString(text) {
			return
		}
	}

	if indent >= s.maxIndent {
		return
	}

	st.out = append(st.out, Statement{
		Line:    num,
		Indent:  indent,
		Text:    text,
		Words:   strings.Fields(text),
		Parent:  parent,
		Suspect: indent > parent.Indent+s.suspectIndent,
	})
}

// isStatement reports whether a leading token begins ordinary code rather
// than a member declaration.
func (s *Scanner) isStatement(code string) bool {
	if s.skipKeywords[code] {
		return true
	}
	for _, sub := range s.skipSubstrings {
		if strings.Contains(code, sub) {
			return true
		}
	}
	for _, p := range s.skipPrefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

// isDeclarationStart accepts identifiers, private and underscore names, and
// anything that looks like a call or method header.
func isDeclarationStart(code string) bool {
	if strings.HasPrefix(code, "#") || strings.HasPrefix(code, "_") || strings.Contains(code, "(") {
		return true
	}
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return code != ""
}

// splitLines splits on newlines, dropping a trailing carriage return so
// CRLF files scan like LF files.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
