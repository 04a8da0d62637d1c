package program

import "github.com/glas-lang/glas/lang/value"

// Print serializes p back into a Value, following spec.md section 4.2's
// AST-as-value encoding table. tryParse(print(p)) = p for every p this
// package constructs (see parse.go).
func Print(p *Program) *value.Value {
	switch p.Kind {
	case KindOp:
		return value.OfSymbol(p.Op.Name())
	case KindData:
		return variant("data", p.Data)
	case KindSeq:
		items := make([]*value.Value, len(p.Seq))
		for i, sub := range p.Seq {
			items[i] = Print(sub)
		}
		return variant("seq", value.OfSeq(items))
	case KindDip:
		return variant("dip", Print(p.Dip))
	case KindCond:
		inner := value.Unit
		inner = value.RecordInsert(value.OfSymbol("try"), Print(p.Try), inner)
		inner = value.RecordInsert(value.OfSymbol("then"), Print(p.Then), inner)
		inner = value.RecordInsert(value.OfSymbol("else"), Print(p.Else), inner)
		return variant("cond", inner)
	case KindWhile:
		return variant("loop", loopBody("while", p.Cond, p.Do))
	case KindUntil:
		return variant("loop", loopBody("until", p.Cond, p.Do))
	case KindEnv:
		inner := value.Unit
		inner = value.RecordInsert(value.OfSymbol("with"), Print(p.With), inner)
		inner = value.RecordInsert(value.OfSymbol("do"), Print(p.Body), inner)
		return variant("env", inner)
	case KindProg:
		inner := p.Note
		if inner == nil {
			inner = value.Unit
		}
		inner = value.RecordInsert(value.OfSymbol("do"), Print(p.Body), inner)
		return variant("prog", inner)
	}
	panic("program: Print: unknown Kind")
}

func variant(tag string, v *value.Value) *value.Value {
	return value.RecordInsert(value.OfSymbol(tag), v, value.Unit)
}

func loopBody(key string, cond, do *Program) *value.Value {
	inner := value.Unit
	inner = value.RecordInsert(value.OfSymbol(key), Print(cond), inner)
	inner = value.RecordInsert(value.OfSymbol("do"), Print(do), inner)
	return inner
}
