package program

import "github.com/glas-lang/glas/lang/value"

// TryParse deserializes a Value into a structured Program, following
// spec.md section 4.2's AST-as-value encoding. It fails (returns ok=false)
// if v does not have one of the recognized shapes — this is the structural
// parse boundary (spec.md section 7.2): a malformed program value is never
// silently coerced into something interpretable.
func TryParse(v *value.Value) (*Program, bool) {
	if s, ok := value.ToSymbol(v); ok {
		if o, ok := LookupOp(s); ok {
			return NewOp(o), true
		}
		// Other symbols fall through: {data: ()} and {seq: ()} are
		// themselves the symbols "data" and "seq".
	}

	tag, body, ok := singleEntry(v)
	if !ok {
		return nil, false
	}

	switch tag {
	case "data":
		return NewData(body), true
	case "seq":
		items, ok := value.ListToSeq(body)
		if !ok {
			return nil, false
		}
		ps := make([]*Program, len(items))
		for i, it := range items {
			p, ok := TryParse(it)
			if !ok {
				return nil, false
			}
			ps[i] = p
		}
		return NewSeq(ps), true
	case "dip":
		p, ok := TryParse(body)
		if !ok {
			return nil, false
		}
		return NewDip(p), true
	case "cond":
		t, ok1 := fieldProgram(body, "try")
		th, ok2 := fieldProgram(body, "then")
		el, ok3 := fieldProgram(body, "else")
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return NewCond(t, th, el), true
	case "loop":
		do, okDo := fieldProgram(body, "do")
		if !okDo {
			return nil, false
		}
		if c, ok := fieldProgram(body, "while"); ok {
			return NewWhile(c, do), true
		}
		if c, ok := fieldProgram(body, "until"); ok {
			return NewUntil(c, do), true
		}
		return nil, false
	case "env":
		with, ok1 := fieldProgram(body, "with")
		do, ok2 := fieldProgram(body, "do")
		if !ok1 || !ok2 {
			return nil, false
		}
		return NewEnv(with, do), true
	case "prog":
		do, okDo := fieldProgram(body, "do")
		if !okDo {
			return nil, false
		}
		note := value.RecordDelete(value.OfSymbol("do"), body)
		return NewProg(note, do), true
	}
	return nil, false
}

// singleEntry reports whether v is a single-key record (a "variant"),
// returning that key and its value.
func singleEntry(v *value.Value) (tag string, body *value.Value, ok bool) {
	for _, candidate := range knownTags {
		sym := value.OfSymbol(candidate)
		val, found := value.RecordLookup(sym, v)
		if !found {
			continue
		}
		rest := value.RecordDelete(sym, v)
		if !value.IsUnit(rest) {
			return "", nil, false
		}
		return candidate, val, true
	}
	return "", nil, false
}

var knownTags = []string{"data", "seq", "dip", "cond", "loop", "env", "prog"}

func fieldProgram(rec *value.Value, key string) (*Program, bool) {
	v, ok := value.RecordLookup(value.OfSymbol(key), rec)
	if !ok {
		return nil, false
	}
	return TryParse(v)
}
