// Package interp implements the Glas interpreter (spec.md section 4.3):
// the (DS, ES) environment, the evaluator, the effect-handler stack, and
// the transactional Sink contract it drives. See program.Program for the
// AST this package walks.
package interp

import "github.com/glas-lang/glas/lang/value"

// Env is the interpreter's (DS, ES) state tuple (spec.md section 3.4). It
// is value-like: every operation below returns a new Env rather than
// mutating the receiver, so a caller holding an earlier Env always sees it
// unchanged — this is what makes backtracking (Cond/While/Until) just a
// matter of discarding a result rather than undoing mutations.
//
// DS/ES are always copied into a fresh backing array on every push/pop
// rather than reusing slice capacity. A capacity-reusing append would let
// one backtracking branch's writes silently clobber a sibling branch's
// already-returned Env (the two could share a backing array past their
// reported length) — the threat this persistent-Value design exists to
// rule out in the first place. The extra copying costs O(depth) per step;
// correctness here is worth more than it buys.
type Env struct {
	DS []*value.Value
	ES []Handler
}

// Empty is the environment with an empty stack and no active handlers.
var Empty = Env{}

// PushData pushes v onto the top of DS.
func (e Env) PushData(v *value.Value) Env {
	ds := make([]*value.Value, len(e.DS)+1)
	copy(ds, e.DS)
	ds[len(e.DS)] = v
	return Env{DS: ds, ES: e.ES}
}

// PopData pops the top of DS, failing if DS is empty.
func (e Env) PopData() (v *value.Value, rest Env, ok bool) {
	n := len(e.DS)
	if n == 0 {
		return nil, e, false
	}
	v = e.DS[n-1]
	ds := make([]*value.Value, n-1)
	copy(ds, e.DS[:n-1])
	return v, Env{DS: ds, ES: e.ES}, true
}

// PeekData returns the top of DS without removing it.
func (e Env) PeekData() (v *value.Value, ok bool) {
	n := len(e.DS)
	if n == 0 {
		return nil, false
	}
	return e.DS[n-1], true
}

// WithDS returns a copy of e with DS replaced.
func (e Env) WithDS(ds []*value.Value) Env { return Env{DS: ds, ES: e.ES} }

// WithES returns a copy of e with ES replaced.
func (e Env) WithES(es []Handler) Env { return Env{DS: e.DS, ES: es} }
