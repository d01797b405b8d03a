package column

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"coldb/internal/catalog"
	"coldb/internal/logger"
)

const (
	DefaultMaxNameLength = 40
	DefaultMaxColumnSize = 40
)

type Limits struct {
	MaxNameLength int
	MaxColumnSize int
}

func DefaultLimits() Limits {
	return Limits{
		MaxNameLength: DefaultMaxNameLength,
		MaxColumnSize: DefaultMaxColumnSize,
	}
}

/*
Database owns a catalog of tables ordered by name.
blockSize is the minimum degree given to every column tree, it must be at
least 2. A Database is not safe for concurrent use: callers run one
operation at a time.
*/
type Database struct {
	name      string
	blockSize int
	limits    Limits
	tables    *catalog.SkipList[*Table]
}

func NewDatabase(name string, blockSize int, limits Limits) *Database {
	return &Database{
		name:      name,
		blockSize: blockSize,
		limits:    limits,
		tables:    catalog.New[*Table](),
	}
}

func (d *Database) Name() string { return d.name }

func (d *Database) BlockSize() int { return d.blockSize }

func (d *Database) Limits() Limits { return d.limits }

func (d *Database) checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > d.limits.MaxNameLength {
		return errors.Wrapf(ErrNameTooLong, "%q is longer than %d", name, d.limits.MaxNameLength)
	}
	return nil
}

func (d *Database) CreateTable(name string) error {
	if err := d.checkName(name); err != nil {
		return errors.Wrap(err, "table name")
	}
	if _, ok := d.tables.Get(name); ok {
		return errors.Wrapf(ErrTableExists, "table %s", name)
	}

	d.tables.Insert(name, newTable(name))
	logger.Logger.WithField("table", name).Info("created table")
	return nil
}

func (d *Database) Table(name string) (*Table, error) {
	t, ok := d.tables.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrTableNotFound, "table %s", name)
	}
	return t, nil
}

// TableNames lists the tables in ascending name order.
func (d *Database) TableNames() []string {
	names := make([]string, 0, d.tables.Len())
	d.tables.Ascend(func(name string, _ *Table) bool {
		names = append(names, name)
		return true
	})
	return names
}

// AddColumn appends a column of the given width to a table. Columns can only
// be added while the table has no rows.
func (d *Database) AddColumn(table, name string, size int) error {
	t, err := d.Table(table)
	if err != nil {
		return err
	}
	if err := d.checkName(name); err != nil {
		return errors.Wrap(err, "column name")
	}
	if size < 1 || size > d.limits.MaxColumnSize {
		return errors.Wrapf(ErrColumnSize, "size %d is outside [1, %d]", size, d.limits.MaxColumnSize)
	}
	if _, ok := t.Column(name); ok {
		return errors.Wrapf(ErrColumnExists, "column %s in table %s", name, table)
	}
	if t.Len() > 0 {
		return errors.Wrapf(ErrTableNotEmpty, "cannot add column %s to table %s", name, table)
	}

	t.columns = append(t.columns, newColumn(name, size, d.blockSize))
	logger.Logger.WithFields(logrus.Fields{
		"table":  table,
		"column": name,
		"size":   size,
	}).Info("added column")
	return nil
}

func validateRow(t *Table, row []any) error {
	if len(t.columns) == 0 {
		return errors.Wrapf(ErrNoColumns, "table %s", t.name)
	}
	if len(row) > len(t.columns) {
		return errors.Wrapf(ErrTooManyValues, "got %d, table %s has %d columns", len(row), t.name, len(t.columns))
	}
	if len(row) < len(t.columns) {
		return errors.Wrapf(ErrTooFewValues, "got %d, table %s has %d columns", len(row), t.name, len(t.columns))
	}

	for i, c := range t.columns {
		if !c.fits(row[i]) {
			return errors.Wrapf(ErrValueTooWide, "%s into column %s with size %d", abbreviate(fmt.Sprint(row[i])), c.name, c.size)
		}
	}
	return nil
}

// abbreviate keeps the first five characters of s.
func abbreviate(s string) string {
	r := []rune(s)
	if len(r) > 5 {
		return string(r[:5]) + "..."
	}
	return s
}

/*
InsertRow validates row against the table's columns, then stores one cell
per column under a fresh primary key, which it returns.
Nothing is inserted when validation fails.
*/
func (d *Database) InsertRow(table string, row []any) (int, error) {
	t, err := d.Table(table)
	if err != nil {
		return 0, err
	}
	if err := validateRow(t, row); err != nil {
		return 0, errors.Wrap(err, "insertion fail")
	}

	pk := t.nextPrimaryKey()
	for i, c := range t.columns {
		height := c.tree.Height()
		// keys come from the row count, a failure here means the tree and
		// the table disagree
		if err := c.tree.Insert(pk, row[i]); err != nil {
			panic(errors.Wrapf(err, "column %s of table %s", c.name, table))
		}
		if c.tree.Height() > height {
			logger.Logger.WithFields(logrus.Fields{
				"table":  table,
				"column": c.name,
				"height": c.tree.Height(),
			}).Debug("root split")
		}
	}
	t.primaryKeys = append(t.primaryKeys, pk)

	logger.Logger.WithFields(logrus.Fields{"table": table, "key": pk}).Debug("inserted row")
	return pk, nil
}
