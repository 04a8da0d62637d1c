package interp

import "github.com/glas-lang/glas/lang/value"

// recordingSink is a minimal in-memory Sink for tests: it buffers eff
// requests per open transaction depth and only appends them to its
// committed log once every enclosing transaction has committed, dropping
// the buffer entirely on abort. It stands in for internal/hostrt, which
// implements the same contract against real host effects.
type recordingSink struct {
	committed []*value.Value
	pending   [][]*value.Value // one buffer per open transaction, innermost last
	handle    func(req *value.Value) (*value.Value, bool)
}

func newRecordingSink(handle func(req *value.Value) (*value.Value, bool)) *recordingSink {
	return &recordingSink{handle: handle}
}

func (s *recordingSink) Eff(request *value.Value) (*value.Value, bool) {
	response, ok := s.handle(request)
	if !ok {
		return nil, false
	}
	if n := len(s.pending); n > 0 {
		s.pending[n-1] = append(s.pending[n-1], request)
	} else {
		s.committed = append(s.committed, request)
	}
	return response, true
}

func (s *recordingSink) Begin() {
	s.pending = append(s.pending, nil)
}

func (s *recordingSink) Commit() {
	n := len(s.pending)
	buf := s.pending[n-1]
	s.pending = s.pending[:n-1]
	if m := len(s.pending); m > 0 {
		s.pending[m-1] = append(s.pending[m-1], buf...)
	} else {
		s.committed = append(s.committed, buf...)
	}
}

func (s *recordingSink) Abort() {
	n := len(s.pending)
	s.pending = s.pending[:n-1]
}
