// Package output renders what gush shows and posts: answer tables and step progress.
package output

import (
	"strings"

	"gush.dev/gush/internal/questionary"
)

const tableSeparatorCell = "---"

var tableCellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// RenderAnswerTable renders answers as a GitHub flavored markdown table.
// The separator row has one "---" cell per header. Each answer fills the first
// two columns; any further header columns are left empty.
func RenderAnswerTable(headers []string, rows []questionary.AnsweredRow) string {
	var b strings.Builder

	writeTableRow(&b, headers)

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = tableSeparatorCell
	}
	writeTableRow(&b, separator)

	width := max(len(headers), 2)
	for _, row := range rows {
		cells := make([]string, width)
		cells[0] = row.Label
		cells[1] = row.Answer
		writeTableRow(&b, cells)
	}

	return b.String()
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(tableCellEscaper.Replace(cell))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
