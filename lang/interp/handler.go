package interp

import (
	"github.com/glas-lang/glas/lang/program"
	"github.com/glas-lang/glas/lang/value"
)

// Handler is one frame of the effect-handler stack ES: a handler program
// paired with its persistent state register (spec.md section 4.3's eff
// rule: "pops the top handler (h, state)...response is pushed back and
// state replaces the register").
type Handler struct {
	Prog  *program.Program
	State *value.Value
}

// PushHandler installs h atop e's handler stack with a fresh Unit register,
// as Env does on entry to its body.
func (e Env) PushHandler(h *program.Program) Env {
	es := make([]Handler, len(e.ES)+1)
	copy(es, e.ES)
	es[len(e.ES)] = Handler{Prog: h, State: value.Unit}
	return Env{DS: e.DS, ES: es}
}

// PopHandler removes the top handler frame. Env pops its installed handler
// on exit from its body regardless of whether the body succeeded.
func (e Env) PopHandler() Env {
	n := len(e.ES)
	if n == 0 {
		return e
	}
	es := make([]Handler, n-1)
	copy(es, e.ES[:n-1])
	return Env{DS: e.DS, ES: es}
}

// TopHandler returns the innermost handler frame, if any.
func (e Env) TopHandler() (Handler, bool) {
	n := len(e.ES)
	if n == 0 {
		return Handler{}, false
	}
	return e.ES[n-1], true
}

// withUpdatedTop returns a copy of es with the top frame's state replaced.
func withUpdatedTop(es []Handler, state *value.Value) []Handler {
	n := len(es)
	out := make([]Handler, n)
	copy(out, es)
	out[n-1] = Handler{Prog: es[n-1].Prog, State: state}
	return out
}
