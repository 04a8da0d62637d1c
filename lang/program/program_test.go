package program

import (
	"testing"

	"github.com/glas-lang/glas/lang/value"
	"github.com/stretchr/testify/require"
)

func TestPrintParseRoundTripPrimitives(t *testing.T) {
	for o := Op(0); o < numOps; o++ {
		p := NewOp(o)
		v := Print(p)
		got, ok := TryParse(v)
		require.True(t, ok, "op %s", o.Name())
		require.Equal(t, p, got)
	}
}

func TestPrintParseRoundTripCompound(t *testing.T) {
	cases := []*Program{
		NewData(value.OfSymbol("hello")),
		NewSeq([]*Program{NewOp(OpCopy), NewOp(OpDrop), NewOp(OpSwap)}),
		NewDip(NewOp(OpCopy)),
		NewCond(NewOp(OpSub), NewSeq(nil), NewSeq([]*Program{NewOp(OpSwap), NewOp(OpSub)})),
		NewWhile(NewOp(OpCopy), NewOp(OpDrop)),
		NewUntil(NewOp(OpCopy), NewOp(OpDrop)),
		NewEnv(NewOp(OpSwap), NewOp(OpCopy)),
		NewProg(value.Unit, NewOp(OpCopy)),
	}
	for _, p := range cases {
		v := Print(p)
		got, ok := TryParse(v)
		require.True(t, ok)
		require.True(t, value.Equal(Print(p), Print(got)))
	}
}

func TestTryParseRejectsMalformed(t *testing.T) {
	_, ok := TryParse(value.OfSymbol("not-a-real-op"))
	require.False(t, ok)

	bad := value.RecordInsert(value.OfSymbol("data"), value.Unit,
		value.RecordInsert(value.OfSymbol("seq"), value.Unit, value.Unit))
	_, ok = TryParse(bad)
	require.False(t, ok)
}

func TestOpLookupRoundTrip(t *testing.T) {
	o, ok := LookupOp("swap")
	require.True(t, ok)
	require.Equal(t, OpSwap, o)
	require.Equal(t, "swap", o.Name())

	_, ok = LookupOp("nonexistent")
	require.False(t, ok)
}
