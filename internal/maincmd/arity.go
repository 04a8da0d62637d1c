package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/glas-lang/glas/lang/program"
)

// Arity reads a program's textual assembly form and reports its static
// arity, or the first structural-arity mismatch program.Check finds
// (mirrors the teacher's tokenize subcommand's "run one phase, print its
// diagnostics" shape; the phase here is the arity checker supplemented
// onto lang/program, per SPEC_FULL.md).
func (c *Cmd) Arity(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ArityFiles(stdio, args...)
}

func ArityFiles(stdio mainer.Stdio, files ...string) error {
	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		p, err := program.Parse(text)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		if err := program.Check(p); err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		in, out, ok := program.StaticArity(p)
		if !ok {
			return printError(stdio, fmt.Errorf("%s: arity could not be determined", file))
		}
		fmt.Fprintf(stdio.Stdout, "%s: (%d, %d)\n", file, in, out)
	}
	return nil
}
