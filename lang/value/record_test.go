package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordInsertLookup(t *testing.T) {
	r := Unit
	r = RecordInsert(OfSymbol("x"), OfNat64(1), r)
	r = RecordInsert(OfSymbol("y"), OfNat64(2), r)
	r = RecordInsert(OfSymbol("xyz"), OfNat64(3), r)

	v, ok := RecordLookup(OfSymbol("x"), r)
	require.True(t, ok)
	n, _ := ToNat64(v)
	require.Equal(t, uint64(1), n)

	v, ok = RecordLookup(OfSymbol("y"), r)
	require.True(t, ok)
	n, _ = ToNat64(v)
	require.Equal(t, uint64(2), n)

	v, ok = RecordLookup(OfSymbol("xyz"), r)
	require.True(t, ok)
	n, _ = ToNat64(v)
	require.Equal(t, uint64(3), n)

	_, ok = RecordLookup(OfSymbol("missing"), r)
	require.False(t, ok)
}

func TestRecordOverwrite(t *testing.T) {
	r := Unit
	r = RecordInsert(OfSymbol("k"), OfNat64(1), r)
	r = RecordInsert(OfSymbol("k"), OfNat64(2), r)
	v, ok := RecordLookup(OfSymbol("k"), r)
	require.True(t, ok)
	n, _ := ToNat64(v)
	require.Equal(t, uint64(2), n)
}

func TestRecordDelete(t *testing.T) {
	r := Unit
	r = RecordInsert(OfSymbol("a"), OfNat64(1), r)
	r = RecordInsert(OfSymbol("b"), OfNat64(2), r)
	r = RecordInsert(OfSymbol("c"), OfNat64(3), r)

	r = RecordDelete(OfSymbol("b"), r)
	_, ok := RecordLookup(OfSymbol("b"), r)
	require.False(t, ok)

	v, ok := RecordLookup(OfSymbol("a"), r)
	require.True(t, ok)
	n, _ := ToNat64(v)
	require.Equal(t, uint64(1), n)

	v, ok = RecordLookup(OfSymbol("c"), r)
	require.True(t, ok)
	n, _ = ToNat64(v)
	require.Equal(t, uint64(3), n)

	r = RecordDelete(OfSymbol("a"), r)
	r = RecordDelete(OfSymbol("c"), r)
	require.True(t, IsUnit(r))
}

func TestRecordManyKeysRoundTrip(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	r := Unit
	for i, k := range keys {
		r = RecordInsert(OfSymbol(k), OfNat64(uint64(i)), r)
	}
	for i, k := range keys {
		v, ok := RecordLookup(OfSymbol(k), r)
		require.True(t, ok, "key %s", k)
		n, _ := ToNat64(v)
		require.Equal(t, uint64(i), n)
	}
}
