package interp

import (
	"github.com/glas-lang/glas/lang/program"
	"github.com/glas-lang/glas/lang/value"
)

// Interpret evaluates p against env, threading unhandled effects to sink
// (spec.md section 4.3). It returns the resulting environment and true on
// success, or the original env and false on recoverable failure — per
// section 4.3's "failure is total: the returned environment on failure is
// logically the original env" rule, every case below that fails returns
// the env it was given, never a partially-updated one.
//
// Loop bodies (While/Until) are evaluated iteratively rather than by Go
// recursion, per the "non-local returns for loops" design note: a
// pathologically long-running loop must not grow the Go call stack.
func Interpret(p *program.Program, env Env, sink Sink) (Env, bool) {
	switch p.Kind {
	case program.KindOp:
		return applyOp(p.Op, env, sink)

	case program.KindData:
		return env.PushData(p.Data), true

	case program.KindSeq:
		cur := env
		for _, sub := range p.Seq {
			next, ok := Interpret(sub, cur, sink)
			if !ok {
				return env, false
			}
			cur = next
		}
		return cur, true

	case program.KindDip:
		top, rest, ok := env.PopData()
		if !ok {
			return env, false
		}
		out, ok := Interpret(p.Dip, rest, sink)
		if !ok {
			return env, false
		}
		return out.PushData(top), true

	case program.KindCond:
		sink.Begin()
		tried, ok := Interpret(p.Try, env, sink)
		if ok {
			sink.Commit()
			out, ok := Interpret(p.Then, tried, sink)
			if !ok {
				return env, false
			}
			return out, true
		}
		sink.Abort()
		out, ok := Interpret(p.Else, env, sink)
		if !ok {
			return env, false
		}
		return out, true

	case program.KindWhile:
		return runWhile(p, env, sink)

	case program.KindUntil:
		return runUntil(p, env, sink)

	case program.KindEnv:
		out, ok := Interpret(p.Body, env.PushHandler(p.With), sink)
		if !ok {
			return env, false
		}
		return out.PopHandler(), true

	case program.KindProg:
		return Interpret(p.Body, env, sink)
	}
	return env, false
}

// runWhile implements spec.md section 4.3's While(c, b): repeatedly begin a
// transaction, run c; on success commit and run b (whose failure fails the
// whole loop); on failure abort and stop, the loop as a whole succeeding
// with the environment as of the last committed iteration.
func runWhile(p *program.Program, env Env, sink Sink) (Env, bool) {
	cur := env
	for {
		sink.Begin()
		tested, ok := Interpret(p.Cond, cur, sink)
		if !ok {
			sink.Abort()
			return cur, true
		}
		sink.Commit()
		next, ok := Interpret(p.Do, tested, sink)
		if !ok {
			return env, false
		}
		cur = next
	}
}

// runUntil implements Until(c, b): the condition's sense is inverted
// relative to While — the loop continues for as long as c fails, and stops
// (successfully) the first time c succeeds.
func runUntil(p *program.Program, env Env, sink Sink) (Env, bool) {
	cur := env
	for {
		sink.Begin()
		tested, ok := Interpret(p.Cond, cur, sink)
		if ok {
			sink.Commit()
			return tested, true
		}
		sink.Abort()
		next, ok := Interpret(p.Do, cur, sink)
		if !ok {
			return env, false
		}
		cur = next
	}
}

// applyOp applies a single primitive (spec.md section 3.3) to env's data
// stack. Stack-effect notation throughout follows the spec's own
// convention, confirmed by swap's worked example (a b -> b a): the
// rightmost operand is the top of stack, popped first; results are pushed
// in the order listed, so the first listed result ends up deepest.
func applyOp(o program.Op, env Env, sink Sink) (Env, bool) {
	pop1 := func(e Env) (*value.Value, Env, bool) { return e.PopData() }
	pop2 := func(e Env) (a, b *value.Value, rest Env, ok bool) {
		b, e1, ok := e.PopData()
		if !ok {
			return nil, nil, e, false
		}
		a, e2, ok := e1.PopData()
		if !ok {
			return nil, nil, e, false
		}
		return a, b, e2, true
	}

	switch o {
	case program.OpCopy:
		a, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		return rest.PushData(a).PushData(a), true

	case program.OpDrop:
		_, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		return rest, true

	case program.OpSwap:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		return rest.PushData(b).PushData(a), true

	case program.OpEq:
		a, b, rest, ok := pop2(env)
		if !ok || !value.Equal(a, b) {
			return env, false
		}
		return rest.PushData(a).PushData(b), true

	case program.OpGet:
		k, r, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		v, ok := value.RecordLookup(k, r)
		if !ok {
			return env, false
		}
		return rest.PushData(v), true

	case program.OpPut:
		v, rest1, ok := pop1(env)
		if !ok {
			return env, false
		}
		k, r, rest, ok := pop2(rest1)
		if !ok {
			return env, false
		}
		return rest.PushData(value.RecordInsert(k, v, r)), true

	case program.OpDel:
		k, r, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		return rest.PushData(value.RecordDelete(k, r)), true

	case program.OpPushl:
		v, l, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.ListPushl(v, l)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpPopl:
		l, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		head, tail, ok := value.ListPopl(l)
		if !ok {
			return env, false
		}
		return rest.PushData(head).PushData(tail), true

	case program.OpPushr:
		l, v, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.ListPushr(l, v)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpPopr:
		l, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		init, last, ok := value.ListPopr(l)
		if !ok {
			return env, false
		}
		return rest.PushData(init).PushData(last), true

	case program.OpJoin:
		l, r, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.ListAppend(l, r)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpSplit:
		n, l, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		count, ok := value.ToNat64(n)
		if !ok {
			return env, false
		}
		left, right, ok := value.ListSplit(int(count), l)
		if !ok {
			return env, false
		}
		return rest.PushData(left).PushData(right), true

	case program.OpLen:
		l, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		return rest.PushData(l).PushData(value.OfNat64(uint64(value.ListLen(l)))), true

	case program.OpBJoin:
		l, r, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.BJoin(l, r)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpBSplit:
		n, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		count, ok := value.ToNat64(n)
		if !ok {
			return env, false
		}
		left, right, ok := value.BSplit(int(count), b)
		if !ok {
			return env, false
		}
		return rest.PushData(left).PushData(right), true

	case program.OpBLen:
		b, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		return rest.PushData(value.OfNat64(uint64(value.BLen(b)))), true

	case program.OpBNeg:
		b, rest, ok := pop1(env)
		if !ok {
			return env, false
		}
		out, ok := value.BNeg(b)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpBMax:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.BMax(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpBMin:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		out, ok := value.BMin(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(out), true

	case program.OpBEq:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		lenOK, equal := value.BEq(a, b)
		if !lenOK {
			return env, false
		}
		bit := byte(0)
		if equal {
			bit = 1
		}
		return rest.PushData(value.OfBitValues([]byte{bit})), true

	case program.OpAdd:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		sum, carry, ok := value.Add(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(sum).PushData(carry), true

	case program.OpMul:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		prod, overflow, ok := value.Mul(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(prod).PushData(overflow), true

	case program.OpSub:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		diff, ok := value.Sub(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(diff), true

	case program.OpDiv:
		a, b, rest, ok := pop2(env)
		if !ok {
			return env, false
		}
		q, r, ok := value.Div(a, b)
		if !ok {
			return env, false
		}
		return rest.PushData(q).PushData(r), true

	case program.OpEff:
		return applyEff(env, sink)

	case program.OpFail:
		return env, false
	}
	return env, false
}

// applyEff implements spec.md section 4.3's eff rule: pop the request; if
// ES is non-empty, hand it to the innermost handler along with that
// handler's register, pop the handler frame while evaluating it, and on
// success push the handler's response and retain its updated register; if
// ES is empty, forward the request to the IO sink directly.
func applyEff(env Env, sink Sink) (Env, bool) {
	request, rest, ok := env.PopData()
	if !ok {
		return env, false
	}

	h, ok := rest.TopHandler()
	if !ok {
		response, ok := sink.Eff(request)
		if !ok {
			return env, false
		}
		return rest.PushData(response), true
	}

	outerES := make([]Handler, len(rest.ES)-1)
	copy(outerES, rest.ES[:len(rest.ES)-1])
	handlerEnv := Env{DS: []*value.Value{request, h.State}, ES: outerES}
	out, ok := Interpret(h.Prog, handlerEnv, sink)
	if !ok {
		return env, false
	}
	response, afterResp, ok := out.PopData()
	if !ok {
		return env, false
	}
	newState, _, ok := afterResp.PopData()
	if !ok {
		return env, false
	}
	newES := withUpdatedTop(rest.ES, newState)
	return rest.WithES(newES).PushData(response), true
}
