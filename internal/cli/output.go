package cli

import "github.com/fatih/color"

var (
	errorColor  = color.New(color.FgHiRed)
	statusColor = color.New(color.FgCyan)
	headerColor = color.New(color.FgBlue, color.Underline, color.Bold)
	infoColor   = color.New(color.FgBlue)
)

func (c *Cli) printError(msg string) {
	errorColor.Fprintln(c.out, msg)
}

func (c *Cli) printStatus(msg string) {
	statusColor.Fprintln(c.out, msg)
}

func (c *Cli) printHeader(msg string) {
	headerColor.Fprintln(c.out, msg)
}

func (c *Cli) printInfo(msg string) {
	infoColor.Fprintln(c.out, msg)
}
