package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"coldb/internal/btree"
)

type command struct {
	usage string
	run   func(c *Cli, args []Token) (string, error)
}

// keyed by lower-case keyword, filled in init since the handlers refer back
// to the table for their usage lines
var commands map[string]command

func init() {
	commands = map[string]command{
		"quit":             {usage: "QUIT", run: (*Cli).quit},
		"help":             {usage: "HELP", run: (*Cli).help},
		"display-database": {usage: "DISPLAY-DATABASE", run: (*Cli).displayDatabase},
		"create-table":     {usage: `CREATE-TABLE "table"`, run: (*Cli).createTable},
		"display-table":    {usage: `DISPLAY-TABLE "table"`, run: (*Cli).displayTable},
		"insert-column":    {usage: `INSERT-COLUMN "table" "column" size`, run: (*Cli).insertColumn},
		"insert-data":      {usage: `INSERT-DATA "table" value, value, ...`, run: (*Cli).insertData},
		"display-tree":     {usage: `DISPLAY-TREE "table" "column"`, run: (*Cli).displayTree},
	}
}

const helpText = ` * QUIT
 * HELP
 * DISPLAY-DATABASE
 * DISPLAY-TABLE     "name_of_table"
 * CREATE-TABLE      "name_of_table"
 * INSERT-COLUMN     "name_of_table"   "name_of_column"   size_of_column
 * INSERT-DATA       "name_of_table"   value, value, ...
 * DISPLAY-TREE      "name_of_table"   "name_of_column"`

// checkArgs verifies that args has exactly the given kinds, in order.
func checkArgs(name string, args []Token, kinds ...TokenKind) error {
	usage := errors.Errorf("wrong use of %s - usage: %s", name, commands[name].usage)
	if len(args) != len(kinds) {
		return usage
	}
	for i, k := range kinds {
		if args[i].Kind != k {
			return usage
		}
	}
	return nil
}

func (c *Cli) quit(args []Token) (string, error) {
	if err := checkArgs("quit", args); err != nil {
		return "", err
	}
	c.done = true
	return "closing program...", nil
}

func (c *Cli) help(args []Token) (string, error) {
	if err := checkArgs("help", args); err != nil {
		return "", err
	}
	c.printHelp()
	return "help", nil
}

func (c *Cli) displayDatabase(args []Token) (string, error) {
	if err := checkArgs("display-database", args); err != nil {
		return "", err
	}

	tables := "0 tables found"
	if names := c.db.TableNames(); len(names) > 0 {
		tables = strings.Join(names, ",")
	}
	c.printHeader("\nDatabase Name: " + c.db.Name())
	c.printInfo("Tables: " + tables + "\n")
	return "displayed database", nil
}

func (c *Cli) createTable(args []Token) (string, error) {
	if err := checkArgs("create-table", args, TokenName); err != nil {
		return "", err
	}
	name := args[0].Text
	if err := c.db.CreateTable(name); err != nil {
		return "", err
	}
	return "created table " + name, nil
}

func (c *Cli) displayTable(args []Token) (string, error) {
	if err := checkArgs("display-table", args, TokenName); err != nil {
		return "", err
	}
	t, err := c.db.Table(args[0].Text)
	if err != nil {
		return "", err
	}

	header, err := renderHeader(t)
	if err != nil {
		return "", err
	}
	c.printHeader(strings.Repeat(" ", len(header)))
	c.printHeader(header)
	c.printInfo(strings.TrimRight(renderRows(t), "\n"))
	return "displayed table " + t.Name(), nil
}

func (c *Cli) insertColumn(args []Token) (string, error) {
	if err := checkArgs("insert-column", args, TokenName, TokenName, TokenNumber); err != nil {
		return "", err
	}
	table, name, size := args[0].Text, args[1].Text, args[2].Number
	if size != math.Trunc(size) {
		return "", errors.Errorf("column size must be a whole number, got %s", args[2].Text)
	}

	if err := c.db.AddColumn(table, name, int(size)); err != nil {
		return "", err
	}
	return fmt.Sprintf("column %s was added to %s with size %d", name, table, int(size)), nil
}

func (c *Cli) insertData(args []Token) (string, error) {
	usage := checkArgs("insert-data", args, TokenName, TokenList)
	if usage != nil && checkArgs("insert-data", args, TokenName, TokenNumber) != nil {
		return "", usage
	}

	table := args[0].Text
	var row []any
	if args[1].Kind == TokenNumber {
		row = []any{args[1].Number}
	} else {
		for _, v := range args[1].List {
			row = append(row, v)
		}
	}

	if _, err := c.db.InsertRow(table, row); err != nil {
		return "", err
	}
	return "data was inserted to " + table, nil
}

func (c *Cli) displayTree(args []Token) (string, error) {
	if err := checkArgs("display-tree", args, TokenName, TokenName); err != nil {
		return "", err
	}
	t, err := c.db.Table(args[0].Text)
	if err != nil {
		return "", err
	}
	col, ok := t.Column(args[1].Text)
	if !ok {
		return "", errors.Errorf("column %s not found in table %s", args[1].Text, t.Name())
	}

	v := &btree.Visualizer{Tree: col.Tree()}
	c.printHeader(col.Tree().String())
	c.printInfo(strings.TrimRight(v.Visualize(), "\n"))
	return "displayed tree of " + t.Name() + "." + col.Name(), nil
}
