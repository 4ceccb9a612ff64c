package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// column describes one column of a plain-text table.
type column struct {
	title string
	align alignment
}

var historyColumns = []column{
	{title: "Finished"},
	{title: "Word"},
	{title: "Result"},
	{title: "Guesses", align: alignRight},
}

// formatTable lays rows out under cols. Cells beyond the last column are
// dropped and missing cells are blank.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(row, i)))
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, formatRow(cols, widths, row))
	}
	return lines
}

func formatRow(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		if col.align == alignRight {
			cells[i] = runewidth.FillLeft(cell(row, i), widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell(row, i), widths[i])
		}
	}
	return strings.Join(cells, " ")
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
