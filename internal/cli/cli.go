// Package cli is the interactive front end of coldb. It reads one command
// per line, runs it against a column.Database and prints the outcome.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"coldb/internal/column"
	"coldb/internal/logger"
)

const prompt = "coldb> "

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	db      *column.Database
	done    bool
}

func NewCli(s *bufio.Scanner, out io.Writer, d *column.Database) *Cli {
	return &Cli{scanner: s, out: out, db: d}
}

// Start runs the read-eval-print loop until QUIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		if c.done {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	c.printHeader("\nCommands:")
	c.printInfo(helpText + "\n")
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, prompt)
}

// Execute tokenizes and runs a single command line and returns its status
// message.
func (c *Cli) Execute(line string) (string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}

	first, args := tokens[0], tokens[1:]
	if first.Kind != TokenCommand {
		return "", errors.Errorf("wrong input - a %s has to follow a command", first.Kind)
	}
	for _, a := range args {
		if a.Kind == TokenCommand {
			return "", errors.Errorf("wrong input - %s cannot follow %s", strings.ToUpper(a.Text), strings.ToUpper(first.Text))
		}
	}
	return commands[first.Text].run(c, args)
}

func (c *Cli) processInput(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	res, err := c.Execute(line)
	if err != nil {
		logger.Logger.WithError(err).Debug("command failed")
		c.printError(err.Error() + "\n")
		return
	}
	c.printStatus(res + "\n")
}

// Done reports whether QUIT has been executed.
func (c *Cli) Done() bool { return c.done }
