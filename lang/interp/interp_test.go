package interp

import (
	"testing"

	"github.com/glas-lang/glas/lang/program"
	"github.com/glas-lang/glas/lang/value"
	"github.com/stretchr/testify/require"
)

// noopSink is a Sink that denies every effect and ignores transactions; it
// is enough for tests that never touch eff/Cond/While/Until.
type noopSink struct{}

func (noopSink) Eff(*value.Value) (*value.Value, bool) { return nil, false }
func (noopSink) Begin()                                {}
func (noopSink) Commit()                                {}
func (noopSink) Abort()                                 {}

func runOn(t *testing.T, p *program.Program, ds ...*value.Value) (Env, bool) {
	t.Helper()
	env := Empty
	for _, v := range ds {
		env = env.PushData(v)
	}
	return Interpret(p, env, noopSink{})
}

func TestInterpretSwap(t *testing.T) {
	out, ok := runOn(t, program.NewOp(program.OpSwap), value.OfNat64(1), value.OfNat64(2))
	require.True(t, ok)
	require.Equal(t, 2, len(out.DS))
	top, _ := out.PeekData()
	require.True(t, value.Equal(top, value.OfNat64(1)))
}

func TestInterpretCopyDrop(t *testing.T) {
	out, ok := runOn(t, program.NewSeq([]*program.Program{
		program.NewOp(program.OpCopy),
		program.NewOp(program.OpDrop),
	}), value.OfNat64(7))
	require.True(t, ok)
	require.Equal(t, 1, len(out.DS))
	require.True(t, value.Equal(out.DS[0], value.OfNat64(7)))
}

func TestInterpretSeqFailureRevertsToEntry(t *testing.T) {
	p := program.NewSeq([]*program.Program{
		program.NewOp(program.OpCopy),
		program.NewOp(program.OpFail),
	})
	entry := Empty.PushData(value.OfNat64(9))
	out, ok := Interpret(p, entry, noopSink{})
	require.False(t, ok)
	require.Equal(t, 1, len(out.DS))
	require.True(t, value.Equal(out.DS[0], value.OfNat64(9)))
}

func TestInterpretDip(t *testing.T) {
	// [a, b] -- dip(drop) --> [b]: the top is hidden, a is dropped beneath it
	out, ok := runOn(t, program.NewDip(program.NewOp(program.OpDrop)),
		value.OfNat64(1), value.OfNat64(2))
	require.True(t, ok)
	require.Equal(t, 1, len(out.DS))
	require.True(t, value.Equal(out.DS[0], value.OfNat64(2)))
}

func TestInterpretPutGetDel(t *testing.T) {
	key := value.OfSymbol("x")
	val := value.OfNat64(42)
	put := program.NewOp(program.OpPut)
	out, ok := runOn(t, put, key, value.Unit, val)
	require.True(t, ok)
	rec, _ := out.PeekData()

	get := program.NewOp(program.OpGet)
	out2, ok := runOn(t, get, key, rec)
	require.True(t, ok)
	got, _ := out2.PeekData()
	require.True(t, value.Equal(got, val))

	del := program.NewOp(program.OpDel)
	out3, ok := runOn(t, del, key, rec)
	require.True(t, ok)
	rec2, _ := out3.PeekData()
	_, found := value.RecordLookup(key, rec2)
	require.False(t, found)
}

func TestInterpretPushlPopl(t *testing.T) {
	l := value.OfSeq([]*value.Value{value.OfNat64(2), value.OfNat64(3)})
	pushl := program.NewOp(program.OpPushl)
	out, ok := runOn(t, pushl, value.OfNat64(1), l)
	require.True(t, ok)
	pushed, _ := out.PeekData()
	seq, ok2 := value.ListToSeq(pushed)
	require.True(t, ok2)
	require.Len(t, seq, 3)
	require.True(t, value.Equal(seq[0], value.OfNat64(1)))

	popl := program.NewOp(program.OpPopl)
	out2, ok := runOn(t, popl, pushed)
	require.True(t, ok)
	require.Equal(t, 2, len(out2.DS))
	require.True(t, value.Equal(out2.DS[0], value.OfNat64(1))) // head, deeper
}

func TestInterpretArithmetic(t *testing.T) {
	sub := program.NewOp(program.OpSub)
	out, ok := runOn(t, sub, value.OfNat64(10), value.OfNat64(3))
	require.True(t, ok)
	top, _ := out.PeekData()
	n, _ := value.ToNat64(top)
	require.Equal(t, uint64(7), n)

	_, ok = runOn(t, sub, value.OfNat64(3), value.OfNat64(10))
	require.False(t, ok)
}

func TestInterpretEqPreservesBoth(t *testing.T) {
	eq := program.NewOp(program.OpEq)
	out, ok := runOn(t, eq, value.OfNat64(5), value.OfNat64(5))
	require.True(t, ok)
	require.Equal(t, 2, len(out.DS))

	_, ok = runOn(t, eq, value.OfNat64(5), value.OfNat64(6))
	require.False(t, ok)
}

func TestInterpretCondTakesTryOnSuccess(t *testing.T) {
	cond := program.NewCond(
		program.NewOp(program.OpSub),
		program.NewSeq(nil),
		program.NewSeq([]*program.Program{program.NewOp(program.OpSwap), program.NewOp(program.OpSub)}),
	)
	out, ok := runOn(t, cond, value.OfNat64(5), value.OfNat64(3))
	require.True(t, ok)
	top, _ := out.PeekData()
	n, _ := value.ToNat64(top)
	require.Equal(t, uint64(2), n)
}

func TestInterpretCondTakesElseOnFailure(t *testing.T) {
	cond := program.NewCond(
		program.NewOp(program.OpSub),
		program.NewSeq(nil),
		program.NewSeq([]*program.Program{program.NewOp(program.OpSwap), program.NewOp(program.OpSub)}),
	)
	out, ok := runOn(t, cond, value.OfNat64(3), value.OfNat64(5))
	require.True(t, ok)
	top, _ := out.PeekData()
	n, _ := value.ToNat64(top)
	require.Equal(t, uint64(2), n)
}

// countUpWhile counts [acc, n] down to [n0+acc, 0]: while(n != 0){ n -= 1;
// acc += 1 }. The condition leaves n on top untouched on success (mirroring
// byteInRange's sub-based order test: sub fails iff n has nothing left to
// subtract 1 from, i.e. n == 0); the loop runs for as long as the condition
// *succeeds*, opposite of Until. add keeps acc's width, so the increment
// joins the carry back on top of the sum (bjoin) instead of dropping it.
func countUpWhile() *program.Program {
	nNotZero := program.NewSeq([]*program.Program{
		program.NewOp(program.OpCopy),
		program.NewData(value.OfNat64(1)),
		program.NewOp(program.OpSub),
		program.NewOp(program.OpDrop),
	})
	decrementN := program.NewSeq([]*program.Program{
		program.NewData(value.OfNat64(1)),
		program.NewOp(program.OpSub),
	})
	incrementAcc := program.NewSeq([]*program.Program{
		program.NewData(value.OfNat64(1)),
		program.NewOp(program.OpAdd),
		program.NewOp(program.OpSwap),
		program.NewOp(program.OpBJoin),
	})
	step := program.NewSeq([]*program.Program{decrementN, program.NewDip(incrementAcc)})
	return program.NewWhile(nNotZero, step)
}

func TestInterpretWhile(t *testing.T) {
	out, ok := runOn(t, countUpWhile(), value.OfNat64(0), value.OfNat64(10))
	require.True(t, ok)
	require.Equal(t, 2, len(out.DS))

	acc, _ := value.ToNat64(out.DS[0])
	require.Equal(t, uint64(10), acc)
	n, _ := value.ToNat64(out.DS[1])
	require.Equal(t, uint64(0), n)
}

func TestInterpretWhileConditionFailsImmediately(t *testing.T) {
	out, ok := runOn(t, countUpWhile(), value.OfNat64(0), value.OfNat64(0))
	require.True(t, ok)
	acc, _ := value.ToNat64(out.DS[0])
	require.Equal(t, uint64(0), acc)
	n, _ := value.ToNat64(out.DS[1])
	require.Equal(t, uint64(0), n)
}

func TestInterpretWhileBodyFailurePropagates(t *testing.T) {
	loop := program.NewWhile(program.NewOp(program.OpCopy), program.NewOp(program.OpFail))
	entry := Empty.PushData(value.OfNat64(1))
	out, ok := Interpret(loop, entry, noopSink{})
	require.False(t, ok)
	require.Equal(t, 1, len(out.DS))
	require.True(t, value.Equal(out.DS[0], value.OfNat64(1)))
}

func TestInterpretProgIsTransparent(t *testing.T) {
	note := value.RecordInsert(value.OfSymbol("name"), value.OfSymbol("inc"), value.Unit)
	p := program.NewProg(note, program.NewSeq([]*program.Program{
		program.NewData(value.OfNat64(1)),
		program.NewOp(program.OpAdd),
		program.NewOp(program.OpDrop),
	}))
	out, ok := runOn(t, p, value.OfNat64(41))
	require.True(t, ok)
	require.Equal(t, 1, len(out.DS))
	n, _ := value.ToNat64(out.DS[0])
	require.Equal(t, uint64(42), n)
}
