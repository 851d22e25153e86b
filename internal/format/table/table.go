// Package table pads rows of cells into aligned columns for menu labels.
package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// gap separates adjacent columns.
const gap = "  "

// Format pads every cell to the widest entry in its column. Alignments apply
// per column; missing entries default to left alignment.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			align := AlignLeft
			if c < len(alignments) {
				align = alignments[c]
			}
			cells[c] = pad(cell, widths[c], align)
		}
		out[i] = strings.Join(cells, gap)
	}
	return out
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func pad(cell string, width int, align Alignment) string {
	fill := width - len([]rune(cell))
	if fill <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", fill) + cell
	}
	return cell + strings.Repeat(" ", fill)
}
