// Package diff renders unified diffs between two sequences of lines.
package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Options controls rendering.
type Options struct {
	// Color wraps removed lines in red, added lines in green and hunk
	// headers in cyan.
	Color bool
}

// Lines generates a unified diff turning a into b. The header names the two
// sides fromLabel and toLabel. It returns an empty string when a and b are
// equal.
func Lines(fromLabel, toLabel string, a, b []string, opts Options) string {
	script := shortestEdit(a, b)
	hunks := group(script)
	if len(hunks) == 0 {
		return ""
	}

	p := newPalette(opts.Color)

	var sb strings.Builder
	sb.WriteString(p.header.Sprintf("--- %s", fromLabel))
	sb.WriteByte('\n')
	sb.WriteString(p.header.Sprintf("+++ %s", toLabel))
	sb.WriteByte('\n')
	for _, h := range hunks {
		h.render(&sb, a, b, p)
	}
	return sb.String()
}

type palette struct {
	header, hunk, del, ins *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		hunk:   color.New(color.FgCyan),
		del:    color.New(color.FgRed),
		ins:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.header, p.hunk, p.del, p.ins} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// opKind is one step of an edit script.
type opKind int

const (
	opKeep opKind = iota
	opInsert
	opDelete
)

// op is a single edit. ai and bi index a and b; the side an op does not
// touch is -1.
type op struct {
	kind   opKind
	ai, bi int
}

// shortestEdit computes a minimal edit script with Myers' algorithm.
func shortestEdit(a, b []string) []op {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil
	}

	// frontier[k+limit] is the furthest x reached on diagonal k = x - y.
	frontier := make([]int, 2*limit+1)
	var history [][]int

	for d := 0; d <= limit; d++ {
		history = append(history, append([]int(nil), frontier...))

		for k := -d; k <= d; k += 2 {
			var x int
			if down(frontier, k, d, limit) {
				x = frontier[k+1+limit]
			} else {
				x = frontier[k-1+limit] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			frontier[k+limit] = x

			if x >= n && y >= m {
				return unwind(history, n, m, d, limit)
			}
		}
	}
	return nil
}

// down reports whether diagonal k at step d is reached by an insertion
// from diagonal k+1 rather than a deletion from k-1.
func down(frontier []int, k, d, limit int) bool {
	return k == -d || (k != d && frontier[k-1+limit] < frontier[k+1+limit])
}

// unwind walks the saved frontiers backwards to recover the edit script.
func unwind(history [][]int, n, m, d, limit int) []op {
	x, y := n, m
	var rev []op

	for step := d; step > 0; step-- {
		frontier := history[step]
		k := x - y

		prevK := k - 1
		insert := down(frontier, k, step, limit)
		if insert {
			prevK = k + 1
		}
		prevX := frontier[prevK+limit]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, op{opKeep, x, y})
		}
		if insert {
			y--
			rev = append(rev, op{opInsert, -1, y})
		} else {
			x--
			rev = append(rev, op{opDelete, x, -1})
		}
	}
	for x > 0 && y > 0 {
		x--
		y--
		rev = append(rev, op{opKeep, x, y})
	}

	script := make([]op, len(rev))
	for i, o := range rev {
		script[len(rev)-1-i] = o
	}
	return script
}

// hunk is a window of the edit script with its line ranges.
type hunk struct {
	aStart, aCount int
	bStart, bCount int
	ops            []op
}

// group splits the script into hunks, merging changes whose context
// windows overlap.
func group(script []op) []hunk {
	type span struct{ start, end int }
	var spans []span
	for i, o := range script {
		if o.kind == opKeep {
			continue
		}
		if n := len(spans); n > 0 && i-spans[n-1].end <= 2*contextLines+1 {
			spans[n-1].end = i
			continue
		}
		spans = append(spans, span{i, i})
	}

	hunks := make([]hunk, 0, len(spans))
	for _, s := range spans {
		start := max(s.start-contextLines, 0)
		end := min(s.end+contextLines, len(script)-1)
		hunks = append(hunks, newHunk(script[start:end+1]))
	}
	return hunks
}

func newHunk(ops []op) hunk {
	h := hunk{ops: ops, aStart: -1, bStart: -1}
	for _, o := range ops {
		if o.ai >= 0 && h.aStart < 0 {
			h.aStart = o.ai
		}
		if o.bi >= 0 && h.bStart < 0 {
			h.bStart = o.bi
		}
		switch o.kind {
		case opKeep:
			h.aCount++
			h.bCount++
		case opDelete:
			h.aCount++
		case opInsert:
			h.bCount++
		}
	}
	return h
}

// rangeStart converts a 0-indexed hunk start into the 1-indexed form used
// in hunk headers. An empty side is reported at the line before it.
func rangeStart(start, count int) int {
	if count == 0 || start < 0 {
		return max(start, 0)
	}
	return start + 1
}

func (h *hunk) render(sb *strings.Builder, a, b []string, p palette) {
	sb.WriteString(p.hunk.Sprintf("@@ -%d,%d +%d,%d @@",
		rangeStart(h.aStart, h.aCount), h.aCount,
		rangeStart(h.bStart, h.bCount), h.bCount))
	sb.WriteByte('\n')

	for _, o := range h.ops {
		switch o.kind {
		case opKeep:
			fmt.Fprintf(sb, " %s\n", a[o.ai])
		case opDelete:
			sb.WriteString(p.del.Sprintf("-%s", a[o.ai]))
			sb.WriteByte('\n')
		case opInsert:
			sb.WriteString(p.ins.Sprintf("+%s", b[o.bi]))
			sb.WriteByte('\n')
		}
	}
}
