// Package program implements the Glas Program AST (spec.md section 3.3):
// the structured form a Program Value parses into, its Value round trip,
// and static arity analysis. See ops.go for the primitive op table, parse.go
// and print.go for the Value <-> AST round trip, arity.go for static arity,
// and asm.go/check.go for the textual assembly format and arity-checked
// construction helper.
package program

import "github.com/glas-lang/glas/lang/value"

// Kind discriminates which AST variant a Program node is.
type Kind uint8

const (
	KindOp Kind = iota
	KindData
	KindSeq
	KindDip
	KindCond
	KindWhile
	KindUntil
	KindEnv
	KindProg
)

// Program is a node of the Glas Program AST. Exactly the fields relevant to
// Kind are populated; see the constructors below.
type Program struct {
	Kind Kind

	Op   Op           // KindOp
	Data *value.Value // KindData
	Seq  []*Program   // KindSeq

	Dip *Program // KindDip

	Try, Then, Else *Program // KindCond

	Cond, Do *Program // KindWhile, KindUntil (loop condition and body)

	With, Body *Program // KindEnv (handler, protected body)

	Note *value.Value // KindProg (annotation record, without the "do" key)
}

// NewOp constructs an Op(o) node.
func NewOp(o Op) *Program { return &Program{Kind: KindOp, Op: o} }

// NewData constructs a Data(v) node.
func NewData(v *value.Value) *Program { return &Program{Kind: KindData, Data: v} }

// NewSeq constructs a Seq(ps) node.
func NewSeq(ps []*Program) *Program { return &Program{Kind: KindSeq, Seq: ps} }

// NewDip constructs a Dip(p) node.
func NewDip(p *Program) *Program { return &Program{Kind: KindDip, Dip: p} }

// NewCond constructs a Cond(try, then, else) node.
func NewCond(try, then, els *Program) *Program {
	return &Program{Kind: KindCond, Try: try, Then: then, Else: els}
}

// NewWhile constructs a While(c, b) node.
func NewWhile(c, b *Program) *Program { return &Program{Kind: KindWhile, Cond: c, Do: b} }

// NewUntil constructs an Until(c, b) node.
func NewUntil(c, b *Program) *Program { return &Program{Kind: KindUntil, Cond: c, Do: b} }

// NewEnv constructs an Env(with, body) node.
func NewEnv(with, body *Program) *Program { return &Program{Kind: KindEnv, With: with, Body: body} }

// NewProg constructs a Prog(note, body) annotation wrapper. Prog is
// semantically equal to body; note carries caller-supplied metadata only.
func NewProg(note *value.Value, body *Program) *Program {
	return &Program{Kind: KindProg, Note: note, Body: body}
}
