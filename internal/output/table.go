package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const columnGap = "  "

// WriteTable renders an aligned column table with a dashed rule under the
// header. Columns whose every cell is an integer right-align (the summary's
// count columns); everything else left-aligns. Cell text is flattened to a
// single line before measuring.
func WriteTable(out io.Writer, headers []string, rows [][]string) error {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, flattenRow(row, cols))
	}
	header := flattenRow(headers, cols)

	widths := make([]int, cols)
	rightAlign := make([]bool, cols)
	for i := 0; i < cols; i++ {
		widths[i] = utf8.RuneCountInString(header[i])
		rightAlign[i] = len(cells) > 0
		for _, row := range cells {
			if w := utf8.RuneCountInString(row[i]); w > widths[i] {
				widths[i] = w
			}
			if !isInteger(row[i]) {
				rightAlign[i] = false
			}
		}
	}

	if len(headers) > 0 {
		if err := writeAligned(out, header, widths, make([]bool, cols)); err != nil {
			return err
		}
		rule := make([]string, cols)
		for i, w := range widths {
			rule[i] = strings.Repeat("-", w)
		}
		if err := writeAligned(out, rule, widths, make([]bool, cols)); err != nil {
			return err
		}
	}
	for _, row := range cells {
		if err := writeAligned(out, row, widths, rightAlign); err != nil {
			return err
		}
	}
	return nil
}

func writeAligned(out io.Writer, row []string, widths []int, rightAlign []bool) error {
	parts := make([]string, len(widths))
	for i, cell := range row {
		pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		if rightAlign[i] {
			parts[i] = pad + cell
		} else {
			parts[i] = cell + pad
		}
	}
	_, err := fmt.Fprintln(out, strings.TrimRight(strings.Join(parts, columnGap), " "))
	return err
}

func flattenRow(row []string, cols int) []string {
	flat := make([]string, cols)
	for i := 0; i < cols; i++ {
		if i < len(row) {
			flat[i] = flattenCell(row[i])
		}
	}
	return flat
}

func flattenCell(value string) string {
	fields := strings.Fields(value)
	return strings.Join(fields, " ")
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
