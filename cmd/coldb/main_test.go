package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldb/internal/column"
)

func TestSeedDatabaseWithTestRecords(t *testing.T) {
	d := column.NewDatabase("Main", 4, column.DefaultLimits())

	require.NoError(t, seedDatabaseWithTestRecords(d, 50))

	tbl, err := d.Table(seedTable)
	require.NoError(t, err)
	assert.Equal(t, 50, tbl.Len())
	assert.Len(t, tbl.Columns(), 3)
	for _, row := range tbl.Rows() {
		assert.Len(t, row, 4)
		assert.NotEmpty(t, row[1])
	}
}

func TestSeedTwiceFails(t *testing.T) {
	d := column.NewDatabase("Main", 4, column.DefaultLimits())
	require.NoError(t, seedDatabaseWithTestRecords(d, 1))

	assert.Error(t, seedDatabaseWithTestRecords(d, 1))
}
