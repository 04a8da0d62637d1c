package hostrt

import (
	"fmt"
	"io"
	"os"

	"github.com/glas-lang/glas/lang/value"
)

// logLine is a single buffered log request, held in its record form and
// flushed to Stdout only once every enclosing transaction has committed.
type logLine struct {
	level *value.Value
	text  string
	val   *value.Value // optional, nil when absent
}

func decodeLog(body *value.Value) (logLine, bool) {
	lv, ok := value.RecordLookup(value.OfSymbol("lv"), body)
	if !ok {
		return logLine{}, false
	}
	text, ok := value.RecordLookup(value.OfSymbol("text"), body)
	if !ok {
		return logLine{}, false
	}
	bs, ok := value.ToBytes(text)
	if !ok {
		return logLine{}, false
	}
	line := logLine{level: lv, text: string(bs)}
	if v, ok := value.RecordLookup(value.OfSymbol("val"), body); ok {
		line.val = v
	}
	return line, true
}

func (h *Host) handleLog(body *value.Value) (*value.Value, bool) {
	line, ok := decodeLog(body)
	if !ok {
		return nil, false
	}
	if n := len(h.pending); n > 0 {
		h.pending[n-1] = append(h.pending[n-1], line)
	} else {
		h.writeLine(line)
	}
	return value.Unit, true
}

func (h *Host) writeLine(line logLine) {
	w := h.out()
	sym, _ := value.ToSymbol(line.level)
	if line.val != nil {
		fmt.Fprintf(w, "[%s] %s %s\n", sym, line.text, value.Print(line.val))
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", sym, line.text)
}

func (h *Host) out() io.Writer {
	if h.Stdout != nil {
		return h.Stdout
	}
	return os.Stdout
}
