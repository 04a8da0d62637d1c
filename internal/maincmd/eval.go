package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/glas-lang/glas/internal/hostrt"
	"github.com/glas-lang/glas/lang/interp"
	"github.com/glas-lang/glas/lang/program"
	"github.com/glas-lang/glas/lang/value"
)

// Eval reads a program's textual assembly form, pushes each trailing
// argument (parsed as a value literal in the same assembly grammar) as the
// initial data stack, runs it against a bare hostrt.Host, and prints the
// resulting data stack top-down, or reports recoverable failure.
func (c *Cmd) Eval(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) == 0 {
		return printError(stdio, fmt.Errorf("eval: a program file must be provided"))
	}
	return EvalFile(stdio, args[0], args[1:]...)
}

func EvalFile(stdio mainer.Stdio, file string, literals ...string) error {
	text, err := os.ReadFile(file)
	if err != nil {
		return printError(stdio, fmt.Errorf("%s: %w", file, err))
	}
	p, err := program.Parse(text)
	if err != nil {
		return printError(stdio, fmt.Errorf("%s: %w", file, err))
	}

	env := interp.Empty
	for _, lit := range literals {
		v, err := parseValueLiteral(lit)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", file, err))
		}
		env = env.PushData(v)
	}

	host := hostrt.NewHost(nil)
	host.Stdout = stdio.Stdout
	out, ok := interp.Interpret(p, env, host)
	if !ok {
		return printError(stdio, fmt.Errorf("%s: program failed", file))
	}
	for i := len(out.DS) - 1; i >= 0; i-- {
		fmt.Fprintln(stdio.Stdout, value.Print(out.DS[i]))
	}
	return nil
}

// parseValueLiteral parses a single value in the assembly grammar's value
// syntax by wrapping it as a data program and taking its literal back out,
// reusing program.Parse rather than exposing a separate value parser.
func parseValueLiteral(text string) (*value.Value, error) {
	p, err := program.Parse([]byte("(data " + text + ")"))
	if err != nil {
		return nil, err
	}
	if p.Kind != program.KindData {
		return nil, fmt.Errorf("not a value literal: %s", text)
	}
	return p.Data, nil
}
