package extract

import (
	"strings"

	"github.com/fwojciec/mdclip"
)

// Table converts a table element into a Markdown pipe table. Rows are taken
// in document order and the first row is always treated as the header,
// regardless of thead/tbody. Returns "" for a table without rows.
func Table(n mdclip.Node) string {
	var rows [][]string
	for _, row := range tableRows(n) {
		if cells := rowCells(row); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return ""
	}

	columns := len(rows[0])
	var b strings.Builder
	b.WriteString("\n")
	for i, cells := range rows {
		for len(cells) < columns {
			cells = append(cells, "")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			b.WriteString("|" + strings.Repeat(" --- |", columns) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// tableRows collects the tr elements of a table without entering nested tables.
func tableRows(table mdclip.Node) []mdclip.Node {
	var rows []mdclip.Node
	var walk func(mdclip.Node)
	walk = func(n mdclip.Node) {
		for _, c := range n.Children() {
			if c.Kind() != mdclip.ElementNode {
				continue
			}
			switch tagName(c) {
			case "tr":
				rows = append(rows, c)
			case "table":
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

func rowCells(row mdclip.Node) []string {
	var cells []string
	for _, c := range row.Children() {
		if c.Kind() != mdclip.ElementNode || (tagName(c) != "td" && tagName(c) != "th") {
			continue
		}
		cells = append(cells, cellText(c))
	}
	return cells
}

// cellText keeps every row on one line and escapes column separators.
func cellText(cell mdclip.Node) string {
	return strings.ReplaceAll(collapseSpace(cell.Text()), "|", `\|`)
}
