package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// maxFunctionKeys is the number of buttons reachable with F1..F12.
const maxFunctionKeys = 12

// ButtonSpan is one toolbar button laid out on the toolbar row.
type ButtonSpan struct {
	ID    string // "<name>-button"
	Label string
	X     int // first column
	Width int
}

// Contains reports whether column x falls on the button.
func (b ButtonSpan) Contains(x int) bool {
	return x >= b.X && x < b.X+b.Width
}

// buttonLabel is the text drawn for the i-th bound button.
func buttonLabel(i int, name string) string {
	if i < maxFunctionKeys {
		return fmt.Sprintf("[F%d %s]", i+1, name)
	}
	return "[" + name + "]"
}

// layoutButtons places buttons left to right separated by one space.
// Buttons that do not fit in width are dropped.
func layoutButtons(ids, names []string, width int) []ButtonSpan {
	spans := make([]ButtonSpan, 0, len(ids))
	x := 0
	for i, id := range ids {
		label := buttonLabel(i, names[i])
		w := runewidth.StringWidth(label)
		if x+w > width {
			break
		}
		spans = append(spans, ButtonSpan{ID: id, Label: label, X: x, Width: w})
		x += w + 1
	}
	return spans
}

// hitButton returns the button under column x.
func hitButton(spans []ButtonSpan, x int) (ButtonSpan, bool) {
	for _, s := range spans {
		if s.Contains(x) {
			return s, true
		}
	}
	return ButtonSpan{}, false
}

// fitWidth truncates s to width display cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// cluster is one grapheme of a line as drawn on screen.
type cluster struct {
	text  string
	runes int // rune count, the unit of Point.Column
	width int // display cells
}

// clusters splits line into graphemes with their display widths, starting
// at display column 0. Tabs expand to the next multiple of tabWidth.
func clusters(line string, tabWidth int) []cluster {
	var out []cluster
	col := 0
	state := -1
	rest := line
	for rest != "" {
		var (
			c string
			w int
		)
		c, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if c == "\t" {
			w = tabWidth - col%tabWidth
		}
		out = append(out, cluster{text: c, runes: utf8.RuneCountInString(c), width: w})
		col += w
	}
	return out
}

// columnToX returns the display cell of rune column col in line.
func columnToX(line string, col, tabWidth int) int {
	x, runes := 0, 0
	for _, c := range clusters(line, tabWidth) {
		if runes >= col {
			break
		}
		x += c.width
		runes += c.runes
	}
	return x
}

// xToColumn returns the rune column of the grapheme drawn at display cell
// x in line, or the end of line when x is past it.
func xToColumn(line string, x, tabWidth int) int {
	cx, runes := 0, 0
	for _, c := range clusters(line, tabWidth) {
		if x < cx+c.width {
			return runes
		}
		cx += c.width
		runes += c.runes
	}
	return runes
}
