package output

import "strings"

// WrapIndent is the column where listing titles start and where wrapped
// continuation lines resume.
const WrapIndent = 40

// Wrap word-wraps text into lines of at most width columns, assuming the
// first line is printed after an indent-wide prefix and prefixing the
// continuation lines with that many spaces. Words longer than a line are
// emitted whole rather than split. Width at or below the indent disables
// wrapping.
func Wrap(text string, width, indent int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if width <= indent {
		return []string{text}
	}
	content := width - indent
	var raw []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > content:
			raw = append(raw, line)
			line = word
		default:
			line += " " + word
		}
	}
	raw = append(raw, line)

	lines := []string{raw[0]}
	pad := strings.Repeat(" ", indent)
	for _, l := range raw[1:] {
		lines = append(lines, pad+l)
	}
	return lines
}
