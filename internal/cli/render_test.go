package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldb/internal/column"
)

func pad(s string) string {
	return " " + s + strings.Repeat(" ", cellWidth-1-len(s)) + "|"
}

func usersTable(t *testing.T, rows ...[]any) *column.Table {
	t.Helper()
	d := column.NewDatabase("Main", 2, column.DefaultLimits())
	require.NoError(t, d.CreateTable("users"))
	require.NoError(t, d.AddColumn("users", "name", 30))
	require.NoError(t, d.AddColumn("users", "age", 3))
	for _, r := range rows {
		_, err := d.InsertRow("users", r)
		require.NoError(t, err)
	}
	tbl, err := d.Table("users")
	require.NoError(t, err)
	return tbl
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc"+strings.Repeat(" ", 16), fit("abc", 20))
	assert.Equal(t, "abcdefghijklmno... ", fit("abcdefghijklmnopqrstuvwxyz", 20))
	assert.Len(t, fit("abcdefghijklmnopqrs", 20), 19)
}

func TestRenderHeader(t *testing.T) {
	header, err := renderHeader(usersTable(t))
	require.NoError(t, err)

	assert.Equal(t, "| Key |"+pad("NAME")+pad("AGE"), header)
}

func TestRenderHeaderWithoutColumns(t *testing.T) {
	d := column.NewDatabase("Main", 2, column.DefaultLimits())
	require.NoError(t, d.CreateTable("bare"))
	tbl, _ := d.Table("bare")

	_, err := renderHeader(tbl)
	assert.EqualError(t, err, "table bare has 0 columns, nothing to display")
}

func TestRenderRows(t *testing.T) {
	tbl := usersTable(t, []any{"ann", 30}, []any{"a very long name indeed", 7})

	want := "| 0   |" + pad("ann") + pad("30") + "\n" +
		"| 1   |" + pad("a very long nam...") + pad("7") + "\n"
	assert.Equal(t, want, renderRows(tbl))
}

func TestRenderRowsEmpty(t *testing.T) {
	assert.Equal(t, "|     | no data was found... ", renderRows(usersTable(t)))
}
