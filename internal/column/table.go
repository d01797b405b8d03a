package column

import "strconv"

type Table struct {
	name        string
	primaryKeys []int
	columns     []*Column
}

func newTable(name string) *Table {
	return &Table{name: name}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Columns() []*Column { return t.columns }

func (t *Table) PrimaryKeys() []int { return t.primaryKeys }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.primaryKeys) }

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.columns {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// nextPrimaryKey is the current row count, so keys are dense and start at 0.
func (t *Table) nextPrimaryKey() int {
	return len(t.primaryKeys)
}

/*
Rows assembles the table row by row from the column projections.
Each row starts with the primary key followed by one cell per column.
*/
func (t *Table) Rows() [][]string {
	columns := make([][]string, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.Values()
	}

	rows := make([][]string, len(t.primaryKeys))
	for r, pk := range t.primaryKeys {
		row := make([]string, 0, len(t.columns)+1)
		row = append(row, strconv.Itoa(pk))
		for _, values := range columns {
			if pk < len(values) {
				row = append(row, values[pk])
			} else {
				row = append(row, "")
			}
		}
		rows[r] = row
	}
	return rows
}
