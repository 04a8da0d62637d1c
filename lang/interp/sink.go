package interp

import "github.com/glas-lang/glas/lang/value"

// Sink is the host's effect boundary (spec.md section 4.4). The
// interpreter never talks to the outside world except through a Sink: an
// unhandled eff (ES empty) calls Eff directly, and Cond/While/Until bracket
// a region of eff calls between Begin and either Commit or Abort.
//
// Implementations must make Abort indistinguishable from the bracketed
// region never having run at all — that is the entire transactional
// contract the interpreter depends on to implement backtracking without
// keeping its own rollback log. internal/hostrt provides the reference
// implementation.
type Sink interface {
	// Eff delivers an unhandled effect request and returns its response, or
	// ok=false if the sink denies or cannot service it.
	Eff(request *value.Value) (response *value.Value, ok bool)

	// Begin opens a new nested transaction.
	Begin()

	// Commit merges the innermost open transaction into its parent.
	Commit()

	// Abort discards all effect-side state accumulated since the matching
	// Begin, as if it had never happened.
	Abort()
}
