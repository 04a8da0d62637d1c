package program

import "fmt"

// Check walks p and reports the first structural-arity mismatch it finds,
// as a structural-misuse error (spec.md section 7.2) rather than the bare
// None StaticArity returns. This is a SUPPLEMENTED feature (the original
// F# runtime's type-checker pass rejects ill-typed programs eagerly); it
// does not change interpret's or StaticArity's contract, it only gives
// tooling (the CLI's arity subcommand) a diagnosable error instead of a
// Boolean.
func Check(p *Program) error {
	return check(p)
}

func check(p *Program) error {
	switch p.Kind {
	case KindOp, KindData:
		return nil

	case KindSeq:
		for i, sub := range p.Seq {
			if err := check(sub); err != nil {
				return fmt.Errorf("seq[%d]: %w", i, err)
			}
		}
		if _, _, ok := StaticArity(p); !ok {
			return fmt.Errorf("seq: inconsistent stack effect across elements")
		}
		return nil

	case KindDip:
		return check(p.Dip)

	case KindCond:
		if err := check(p.Try); err != nil {
			return fmt.Errorf("cond.try: %w", err)
		}
		if err := check(p.Then); err != nil {
			return fmt.Errorf("cond.then: %w", err)
		}
		if err := check(p.Else); err != nil {
			return fmt.Errorf("cond.else: %w", err)
		}
		ti, to, ok := StaticArity(p.Try)
		if !ok {
			return fmt.Errorf("cond.try: no static arity")
		}
		thi, tho, ok := StaticArity(p.Then)
		if !ok {
			return fmt.Errorf("cond.then: no static arity")
		}
		ei, eo, ok := StaticArity(p.Else)
		if !ok {
			return fmt.Errorf("cond.else: no static arity")
		}
		netIn, netOut := composeArity(ti, to, thi, tho)
		if netIn != ei || netOut != eo {
			return fmt.Errorf("cond: try-then arity (%d,%d) disagrees with else arity (%d,%d)",
				netIn, netOut, ei, eo)
		}
		return nil

	case KindWhile, KindUntil:
		if err := check(p.Cond); err != nil {
			return fmt.Errorf("loop.cond: %w", err)
		}
		if err := check(p.Do); err != nil {
			return fmt.Errorf("loop.do: %w", err)
		}
		ci, co, ok := StaticArity(p.Cond)
		if !ok || ci != co {
			return fmt.Errorf("loop.cond: must have arity (k, k), got (%d, %d)", ci, co)
		}
		bi, bo, ok := StaticArity(p.Do)
		if !ok || bi != bo {
			return fmt.Errorf("loop.do: must have arity (k, k), got (%d, %d)", bi, bo)
		}
		return nil

	case KindEnv:
		if err := check(p.With); err != nil {
			return fmt.Errorf("env.with: %w", err)
		}
		if err := check(p.Body); err != nil {
			return fmt.Errorf("env.do: %w", err)
		}
		wi, wo, ok := StaticArity(p.With)
		if !ok || wi != 2 || wo != 2 {
			return fmt.Errorf("env.with: handler arity must be (2, 2), got (%d, %d)", wi, wo)
		}
		return nil

	case KindProg:
		if err := check(p.Body); err != nil {
			return fmt.Errorf("prog.do: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown program kind %d", p.Kind)
}
