package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/glas-lang/glas/lang/program"
)

// Print reads a program's textual assembly form and prints it back in
// canonical assembly form, a disassemble-then-reassemble round trip
// (mirrors the teacher's resolve subcommand's "run a phase, print the
// result" shape; there is no symbol resolution phase in this domain, so
// this command exercises program.Format instead).
func (c *Cmd) Print(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return PrintFiles(stdio, args...)
}

func PrintFiles(stdio mainer.Stdio, files ...string) error {
	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		p, err := program.Parse(text)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		stdio.Stdout.Write(program.Format(p))
		fmt.Fprintln(stdio.Stdout)
	}
	return nil
}
