// Package wrap splits cell text into wrappable tokens and greedily lays
// them out into lines that fit a target display width.
package wrap

import (
	"strings"

	"github.com/olekukonko/boxtable/pkg/twwidth"
)

// Tokenize splits text into tokens on whitespace, preserving hard newlines
// as their own "\n" tokens so the wrapper can treat them as forced breaks.
// Consecutive hard newlines therefore yield "\n" tokens back to back, which
// Lines turns into empty visual lines. Empty tokens produced by adjacent
// whitespace are dropped.
func Tokenize(text string) []string {
	var tokens []string
	for _, raw := range strings.Split(text, "\n") {
		for _, word := range strings.Fields(raw) {
			tokens = append(tokens, word)
		}
		tokens = append(tokens, "\n")
	}
	if len(tokens) > 0 {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Lines greedily wraps text into lines whose display width (per
// pkg/twwidth) does not exceed width. Tokens wider than width are broken at
// character boundaries. A width <= 0 still returns at least one line.
func Lines(text string, width int) []string {
	if width <= 0 {
		width = 1
	}
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, tok := range tokens {
		if tok == "\n" {
			flush()
			continue
		}

		tokWidth := twwidth.Width(tok)
		if tokWidth > width {
			// Oversize token: break at character boundaries, filling the
			// current line first if there's room.
			for _, r := range tok {
				rw := twwidth.Width(string(r))
				if curWidth+rw > width {
					flush()
				}
				cur.WriteRune(r)
				curWidth += rw
			}
			continue
		}

		if curWidth == 0 {
			cur.WriteString(tok)
			curWidth = tokWidth
			continue
		}

		if curWidth+1+tokWidth <= width {
			cur.WriteString(" ")
			cur.WriteString(tok)
			curWidth += 1 + tokWidth
		} else {
			flush()
			cur.WriteString(tok)
			curWidth = tokWidth
		}
	}
	flush()

	return lines
}
