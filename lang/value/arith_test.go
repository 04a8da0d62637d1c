package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCommutative(t *testing.T) {
	a := OfBitValues([]byte{1, 0, 1})
	b := OfBitValues([]byte{0, 1})
	sum1, carry1, ok := Add(a, b)
	require.True(t, ok)
	sum2, carry2, ok := Add(b, a)
	require.True(t, ok)

	joined1, _ := BJoin(carry1, sum1)
	joined2, _ := BJoin(carry2, sum2)
	ok2, eq := BEq(joined1, joined2)
	require.True(t, ok2)
	require.True(t, eq)
}

func TestMulCommutative(t *testing.T) {
	a := OfBitValues([]byte{1, 1, 0})
	b := OfBitValues([]byte{1, 0})
	prod1, over1, ok := Mul(a, b)
	require.True(t, ok)
	prod2, over2, ok := Mul(b, a)
	require.True(t, ok)

	joined1, _ := BJoin(over1, prod1)
	joined2, _ := BJoin(over2, prod2)
	ok2, eq := BEq(joined1, joined2)
	require.True(t, ok2)
	require.True(t, eq)
}

func TestSubFailsOnNegative(t *testing.T) {
	a := OfNat64(3)
	b := OfNat64(5)
	_, ok := Sub(a, b)
	require.False(t, ok)
}

func TestSubMatchesWorkedExample(t *testing.T) {
	// spec.md section 8 scenario 2: |10 - 3| via Sub yields canonical nat 7.
	diff, ok := Sub(OfNat64(10), OfNat64(3))
	require.True(t, ok)
	n, ok := ToNat64(diff)
	require.True(t, ok)
	require.Equal(t, uint64(7), n)
}

func TestDivRoundTrip(t *testing.T) {
	a := OfNat64(17)
	b := OfNat64(5)
	q, r, ok := Div(a, b)
	require.True(t, ok)
	qn, _ := ToNat64(q)
	rn, _ := ToNat64(r)
	require.Equal(t, uint64(3), qn)
	require.Equal(t, uint64(2), rn)
}

func TestDivByZeroFails(t *testing.T) {
	_, _, ok := Div(OfNat64(5), OfNat64(0))
	require.False(t, ok)
}
