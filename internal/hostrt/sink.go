package hostrt

import (
	"io"

	"github.com/glas-lang/glas/lang/value"
)

// Host is the minimal host sink of spec.md section 6: it answers eff
// requests shaped { log: ... } and { load: ref }, denying anything else,
// and implements the transaction contract (interp.Sink) that the
// interpreter uses to bracket Cond/While/Until conditions.
//
// Log lines are buffered per open transaction, mirroring the teacher's
// Thread fields defaulting their io.Writer to os.Stdout when nil: a line
// logged inside a transaction that later aborts is never written.
type Host struct {
	// Stdout receives committed log lines. If nil, os.Stdout is used.
	Stdout io.Writer

	// Resolve backs the load handler. If nil, every load fails.
	Resolve Resolver

	cache   *moduleCache
	pending [][]logLine // one buffer per open transaction, innermost last
}

// NewHost builds a Host with a fresh module cache.
func NewHost(resolve Resolver) *Host {
	return &Host{Resolve: resolve, cache: newModuleCache()}
}

func (h *Host) Eff(request *value.Value) (*value.Value, bool) {
	if body, ok := value.RecordLookup(value.OfSymbol("log"), request); ok {
		return h.handleLog(body)
	}
	if ref, ok := value.RecordLookup(value.OfSymbol("load"), request); ok {
		return h.handleLoad(ref)
	}
	return nil, false
}

func (h *Host) Begin() {
	h.pending = append(h.pending, nil)
}

func (h *Host) Commit() {
	n := len(h.pending)
	buf := h.pending[n-1]
	h.pending = h.pending[:n-1]
	if m := len(h.pending); m > 0 {
		h.pending[m-1] = append(h.pending[m-1], buf...)
		return
	}
	for _, line := range buf {
		h.writeLine(line)
	}
}

func (h *Host) Abort() {
	n := len(h.pending)
	h.pending = h.pending[:n-1]
}
