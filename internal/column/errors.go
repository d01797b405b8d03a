package column

import "github.com/pkg/errors"

var (
	ErrTableExists   = errors.New("table already exists")
	ErrTableNotFound = errors.New("table not found")
	ErrColumnExists  = errors.New("column already exists")
	ErrTableNotEmpty = errors.New("table already holds rows")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name too long")
	ErrColumnSize    = errors.New("invalid column size")
	ErrNoColumns     = errors.New("table has no columns")
	ErrTooManyValues = errors.New("tried to insert too many elements")
	ErrTooFewValues  = errors.New("tried to insert too few elements")
	ErrValueTooWide  = errors.New("value does not fit into column")
)
