package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNatRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 7, 255, 256, 1 << 20} {
		v := OfNat64(n)
		got, ok := ToNat64(v)
		require.True(t, ok)
		require.Equal(t, n, got)
	}
	require.True(t, IsUnit(OfNat64(0)))
}

func TestIntWorkedExamples(t *testing.T) {
	// spec's two worked examples: -1 is bitstring "0", -7 is "000".
	neg1 := OfInt64(-1)
	bits, ok := ToBitValues(neg1)
	require.True(t, ok)
	require.Equal(t, []byte{0}, bits)

	neg7 := OfInt64(-7)
	bits, ok = ToBitValues(neg7)
	require.True(t, ok)
	require.Equal(t, []byte{0, 0, 0}, bits)
}

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 7, -7, 42, -42, 1 << 30, -(1 << 30)} {
		v := OfInt64(n)
		got, ok := ToInt64(v)
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}

func TestIntBigRoundTrip(t *testing.T) {
	big1, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	bigNeg, _ := new(big.Int).SetString("-987654321098765432109876543210", 10)
	for _, n := range []*big.Int{big1, bigNeg, big.NewInt(0)} {
		v := OfBigInt(n)
		got, ok := ToBigInt(v)
		require.True(t, ok)
		require.Equal(t, 0, n.Cmp(got))
	}
}
