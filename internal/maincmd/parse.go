package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/glas-lang/glas/lang/program"
	"github.com/glas-lang/glas/lang/value"
)

// Parse reads a program's textual assembly form and prints the Value it
// decodes to, one file per invocation (mirrors the teacher's
// parser-phase-to-AST-printer subcommand, generalized to programs/values).
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, args...)
}

func ParseFiles(stdio mainer.Stdio, files ...string) error {
	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		p, err := program.Parse(text)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		fmt.Fprintln(stdio.Stdout, value.Print(program.Print(p)))
	}
	return nil
}
