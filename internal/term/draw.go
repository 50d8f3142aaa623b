package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawString draws s from column x and returns the column after it.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// fill paints row y across width cells.
func fill(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}
