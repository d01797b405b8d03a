package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"coldb/internal/column"
)

const cellWidth = 20

// fit truncates s to width-1 characters, marking the cut with "... ", and
// pads it with spaces to exactly width-1 characters.
func fit(s string, width int) string {
	w := width - 1
	if utf8.RuneCountInString(s) > w {
		s = string([]rune(s)[:w-4]) + "... "
	}
	return s + strings.Repeat(" ", w-utf8.RuneCountInString(s))
}

func keyWidth(t *column.Table) int {
	w := len("Key")
	if n := t.Len(); n > 0 {
		if l := len(strconv.Itoa(n - 1)); l > w {
			w = l
		}
	}
	return w
}

func renderHeader(t *column.Table) (string, error) {
	if len(t.Columns()) == 0 {
		return "", errors.Errorf("table %s has 0 columns, nothing to display", t.Name())
	}

	var sb strings.Builder
	kw := keyWidth(t)
	sb.WriteString("| Key" + strings.Repeat(" ", kw-3) + " |")
	for _, c := range t.Columns() {
		sb.WriteString(" " + fit(strings.ToUpper(c.Name()), cellWidth) + "|")
	}
	return sb.String(), nil
}

func renderRows(t *column.Table) string {
	rows := t.Rows()
	if len(rows) == 0 {
		return "|     | no data was found... "
	}

	kw := keyWidth(t)
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString("| " + row[0] + strings.Repeat(" ", kw-len(row[0])) + " |")
		for _, cell := range row[1:] {
			sb.WriteString(" " + fit(cell, cellWidth) + "|")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
