// Package textutil holds small text-formatting helpers for help listings.
package textutil

import "strings"

// Wrap greedily breaks text into lines at most width characters wide, splitting on whitespace.
// A word longer than width gets a line of its own. Empty or all-whitespace text yields no
// lines; a non-positive width yields one word per line.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) <= width:
			line.WriteByte(' ')
			line.WriteString(word)
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
