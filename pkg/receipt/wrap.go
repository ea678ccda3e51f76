package receipt

import "strings"

// wrap greedily word-wraps s into lines of at most width characters.
// Words longer than the width are hard-broken. An empty string still
// produces one (empty) line so every item occupies at least one row.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	for _, w := range words {
		// Hard-break words that cannot fit on a line by themselves.
		for len(w) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, w[:width])
			w = w[width:]
		}
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
