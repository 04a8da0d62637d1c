package program

// StaticArity computes p's static stack effect (in, out), following
// spec.md section 4.2's rules. It returns ok=false for dynamically-shaped
// programs (arity analysis is necessarily partial: e.g. a Cond whose
// try-then combined effect disagrees with else, or a loop body that isn't
// (k, k)).
func StaticArity(p *Program) (in, out int, ok bool) {
	switch p.Kind {
	case KindOp:
		i, o := p.Op.Arity()
		return i, o, true

	case KindData:
		return 0, 1, true

	case KindSeq:
		in, out := 0, 0
		for _, sub := range p.Seq {
			i, o, ok := StaticArity(sub)
			if !ok {
				return 0, 0, false
			}
			in, out = composeArity(in, out, i, o)
		}
		return in, out, true

	case KindDip:
		i, o, ok := StaticArity(p.Dip)
		if !ok {
			return 0, 0, false
		}
		return i + 1, o + 1, true

	case KindCond:
		ti, to, ok := StaticArity(p.Try)
		if !ok {
			return 0, 0, false
		}
		thi, tho, ok := StaticArity(p.Then)
		if !ok {
			return 0, 0, false
		}
		ei, eo, ok := StaticArity(p.Else)
		if !ok {
			return 0, 0, false
		}
		netIn, netOut := composeArity(ti, to, thi, tho)
		if netIn != ei || netOut != eo {
			return 0, 0, false
		}
		return netIn, netOut, true

	case KindWhile, KindUntil:
		ci, co, ok := StaticArity(p.Cond)
		if !ok || ci != co {
			// the loop carries on from the stack a successful cond leaves
			// (into the body for While, out of the loop for Until), so
			// cond's own net effect on the loop's invariant stack shape
			// must be zero.
			return 0, 0, false
		}
		bi, bo, ok := StaticArity(p.Do)
		if !ok || bi != bo {
			return 0, 0, false
		}
		k := maxInt(bi, ci)
		return k, k, true

	case KindEnv:
		// A handler is invoked with DS = [request, state] and must return
		// DS = [response, new-state] (spec.md section 4.3's eff rule), so
		// its static arity is fixed at (2, 2).
		wi, wo, ok := StaticArity(p.With)
		if !ok || wi != 2 || wo != 2 {
			return 0, 0, false
		}
		return StaticArity(p.Body)

	case KindProg:
		return StaticArity(p.Body)
	}
	return 0, 0, false
}

// composeArity computes the net arity of running a program of arity
// (ai, ao) followed by one of arity (bi, bo): the required input height is
// ai plus whatever extra the second program needs beyond what the first
// leaves behind, and the resulting output height is symmetric.
func composeArity(ai, ao, bi, bo int) (in, out int) {
	deficit := maxInt(0, bi-ao)
	surplus := maxInt(0, ao-bi)
	return ai + deficit, bo + surplus
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
