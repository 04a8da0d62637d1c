package program

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/glas-lang/glas/lang/value"
)

// This file implements a human-readable/writable textual assembly format
// for Programs, a SUPPLEMENTED feature mirroring the original F# runtime's
// disassembly tooling (and the teacher's own lang/compiler/asm.go, which
// serves the analogous purpose for its bytecode). It exists purely for
// developer ergonomics (writing test fixtures, CLI round trips) and does
// not change interpret's, TryParse's, or Print's contract.
//
// Grammar (s-expression style, whitespace-insensitive):
//
//	program  := OPNAME
//	          | "(" "data" value ")"
//	          | "(" "seq" program* ")"
//	          | "(" "dip" program ")"
//	          | "(" "cond" program program program ")"
//	          | "(" "while" program program ")"
//	          | "(" "until" program program ")"
//	          | "(" "env" program program ")"
//	          | "(" "prog" program ")"
//	value    := "unit"
//	          | SYMBOL
//	          | "(" "bytes" STRING ")"
//	          | "(" "nat" DIGITS ")"
//	          | "(" "int" ["-"] DIGITS ")"
//	          | "(" "bits" BITDIGITS ")"
//	          | "(" "list" value* ")"
//	          | "(" "rec" (SYMBOL value)* ")"
//	          | "(" "left" value ")"
//	          | "(" "right" value ")"
//	          | "(" "pair" value value ")"

// Parse parses the textual assembly format into a Program.
func Parse(text []byte) (*Program, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &asmParser{toks: toks}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("asm: unexpected trailing token %q", p.toks[p.pos])
	}
	return prog, nil
}

// Format renders p back into the textual assembly format.
func Format(p *Program) []byte {
	var b strings.Builder
	formatProgram(&b, p)
	return []byte(b.String())
}

func formatProgram(b *strings.Builder, p *Program) {
	switch p.Kind {
	case KindOp:
		b.WriteString(p.Op.Name())
	case KindData:
		b.WriteString("(data ")
		formatValue(b, p.Data)
		b.WriteByte(')')
	case KindSeq:
		b.WriteString("(seq")
		for _, sub := range p.Seq {
			b.WriteByte(' ')
			formatProgram(b, sub)
		}
		b.WriteByte(')')
	case KindDip:
		b.WriteString("(dip ")
		formatProgram(b, p.Dip)
		b.WriteByte(')')
	case KindCond:
		b.WriteString("(cond ")
		formatProgram(b, p.Try)
		b.WriteByte(' ')
		formatProgram(b, p.Then)
		b.WriteByte(' ')
		formatProgram(b, p.Else)
		b.WriteByte(')')
	case KindWhile:
		b.WriteString("(while ")
		formatProgram(b, p.Cond)
		b.WriteByte(' ')
		formatProgram(b, p.Do)
		b.WriteByte(')')
	case KindUntil:
		b.WriteString("(until ")
		formatProgram(b, p.Cond)
		b.WriteByte(' ')
		formatProgram(b, p.Do)
		b.WriteByte(')')
	case KindEnv:
		b.WriteString("(env ")
		formatProgram(b, p.With)
		b.WriteByte(' ')
		formatProgram(b, p.Body)
		b.WriteByte(')')
	case KindProg:
		b.WriteString("(prog ")
		formatProgram(b, p.Body)
		b.WriteByte(')')
	}
}

// formatValue never emits the "nat"/"int" forms: a bitstring's Nat and Int
// readings share the same Value, so there is no way to recover which one
// was originally meant from the Value alone (those forms exist only so
// Parse can accept hand-written numeric fixtures). Plain bitstrings always
// round-trip through the unambiguous "bits" form.
func formatValue(b *strings.Builder, v *value.Value) {
	if value.IsUnit(v) {
		b.WriteString("unit")
		return
	}
	if s, ok := value.ToSymbol(v); ok {
		b.WriteString(s)
		return
	}
	if bs, ok := value.ToBytes(v); ok {
		b.WriteString("(bytes ")
		b.WriteString(strconv.Quote(string(bs)))
		b.WriteByte(')')
		return
	}
	if items, ok := value.ListToSeq(v); ok {
		b.WriteString("(list")
		for _, it := range items {
			b.WriteByte(' ')
			formatValue(b, it)
		}
		b.WriteByte(')')
		return
	}
	if bits, ok := value.ToBitValues(v); ok {
		b.WriteString("(bits ")
		for _, bit := range bits {
			b.WriteByte('0' + bit)
		}
		b.WriteByte(')')
		return
	}
	if l, ok := value.IsLeft(v); ok {
		b.WriteString("(left ")
		formatValue(b, l)
		b.WriteByte(')')
		return
	}
	if r, ok := value.IsRight(v); ok {
		b.WriteString("(right ")
		formatValue(b, r)
		b.WriteByte(')')
		return
	}
	// Remaining case: a Pair whose right spine never resolves to Unit (not
	// a well-formed list) — a raw branch. Records have no form of their own
	// here; they come out through bits/left/right/pair.
	l, r, _ := value.IsPair(v)
	b.WriteString("(pair ")
	formatValue(b, l)
	b.WriteByte(' ')
	formatValue(b, r)
	b.WriteByte(')')
}

// --- tokenizer ---

func tokenize(text []byte) ([]string, error) {
	var toks []string
	i := 0
	n := len(text)
	for i < n {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '#':
			for i < n && text[i] != '\n' {
				i++
			}
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		case c == '"':
			j := i + 1
			for j < n && text[j] != '"' {
				if text[j] == '\\' {
					j++
				}
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("asm: unterminated string literal")
			}
			toks = append(toks, string(text[i:j+1]))
			i = j + 1
		default:
			j := i
			for j < n && !isAsmDelim(text[j]) {
				j++
			}
			toks = append(toks, string(text[i:j]))
			i = j
		}
	}
	return toks, nil
}

func isAsmDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '(' || c == ')' || c == '#'
}

// --- recursive-descent parser ---

type asmParser struct {
	toks []string
	pos  int
}

func (p *asmParser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *asmParser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *asmParser) expect(want string) error {
	tok, ok := p.next()
	if !ok || tok != want {
		return fmt.Errorf("asm: expected %q, got %q", want, tok)
	}
	return nil
}

func (p *asmParser) parseProgram() (*Program, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("asm: unexpected end of input")
	}
	if tok != "(" {
		if o, ok := LookupOp(tok); ok {
			return NewOp(o), nil
		}
		return nil, fmt.Errorf("asm: unknown op %q", tok)
	}
	head, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("asm: unexpected end of input after '('")
	}
	var prog *Program
	var err error
	switch head {
	case "data":
		v, e := p.parseValue()
		if e != nil {
			return nil, e
		}
		prog, err = NewData(v), nil
	case "seq":
		var ps []*Program
		for {
			tok, ok := p.peek()
			if !ok {
				return nil, fmt.Errorf("asm: unterminated seq")
			}
			if tok == ")" {
				break
			}
			sub, e := p.parseProgram()
			if e != nil {
				return nil, e
			}
			ps = append(ps, sub)
		}
		prog, err = NewSeq(ps), nil
	case "dip":
		sub, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		prog, err = NewDip(sub), nil
	case "cond":
		t, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		th, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		el, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		prog, err = NewCond(t, th, el), nil
	case "while", "until":
		c, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		do, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		if head == "while" {
			prog = NewWhile(c, do)
		} else {
			prog = NewUntil(c, do)
		}
	case "env":
		with, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		do, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		prog, err = NewEnv(with, do), nil
	case "prog":
		do, e := p.parseProgram()
		if e != nil {
			return nil, e
		}
		prog, err = NewProg(value.Unit, do), nil
	default:
		return nil, fmt.Errorf("asm: unknown compound form %q", head)
	}
	if err != nil {
		return nil, err
	}
	if e := p.expect(")"); e != nil {
		return nil, e
	}
	return prog, nil
}

func (p *asmParser) parseValue() (*value.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("asm: unexpected end of input parsing value")
	}
	if tok == "unit" {
		return value.Unit, nil
	}
	if tok != "(" {
		return value.OfSymbol(tok), nil
	}
	head, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("asm: unexpected end of input after '(' in value")
	}
	var v *value.Value
	switch head {
	case "bytes":
		raw, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("asm: expected string literal after 'bytes'")
		}
		s, err := strconv.Unquote(raw)
		if err != nil {
			return nil, fmt.Errorf("asm: invalid string literal %q: %w", raw, err)
		}
		v = value.OfBytes([]byte(s))
	case "nat":
		digits, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("asm: expected digits after 'nat'")
		}
		n, ok := new(big.Int).SetString(digits, 10)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("asm: invalid nat literal %q", digits)
		}
		nv, ok := value.OfNat(n)
		if !ok {
			return nil, fmt.Errorf("asm: invalid nat literal %q", digits)
		}
		v = nv
	case "int":
		digits, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("asm: expected digits after 'int'")
		}
		n, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return nil, fmt.Errorf("asm: invalid int literal %q", digits)
		}
		v = value.OfBigInt(n)
	case "bits":
		digits, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("asm: expected bit digits after 'bits'")
		}
		bits := make([]byte, len(digits))
		for i := 0; i < len(digits); i++ {
			switch digits[i] {
			case '0':
				bits[i] = 0
			case '1':
				bits[i] = 1
			default:
				return nil, fmt.Errorf("asm: invalid bit digit %q", digits[i])
			}
		}
		v = value.OfBitValues(bits)
	case "list":
		var items []*value.Value
		for {
			tok, ok := p.peek()
			if !ok {
				return nil, fmt.Errorf("asm: unterminated list")
			}
			if tok == ")" {
				break
			}
			it, e := p.parseValue()
			if e != nil {
				return nil, e
			}
			items = append(items, it)
		}
		v = value.OfSeq(items)
	case "rec":
		r := value.Unit
		for {
			tok, ok := p.peek()
			if !ok {
				return nil, fmt.Errorf("asm: unterminated rec")
			}
			if tok == ")" {
				break
			}
			key, _ := p.next()
			val, e := p.parseValue()
			if e != nil {
				return nil, e
			}
			r = value.RecordInsert(value.OfSymbol(key), val, r)
		}
		v = r
	case "left":
		inner, e := p.parseValue()
		if e != nil {
			return nil, e
		}
		v = value.Left(inner)
	case "right":
		inner, e := p.parseValue()
		if e != nil {
			return nil, e
		}
		v = value.Right(inner)
	case "pair":
		a, e := p.parseValue()
		if e != nil {
			return nil, e
		}
		bv, e := p.parseValue()
		if e != nil {
			return nil, e
		}
		v = value.Pair(a, bv)
	default:
		return nil, fmt.Errorf("asm: unknown value form %q", head)
	}
	if e := p.expect(")"); e != nil {
		return nil, e
	}
	return v, nil
}
