package value

import "math/big"

// Arithmetic over bitstrings, read as plain unsigned magnitudes of their
// declared width (spec.md section 4.1). Add and Mul preserve the widths of
// their two operands by construction: the true (la+lb)-bit result always
// fits exactly, so it is simply split back into a low la-bit "sum"/"prod"
// and a high lb-bit "carry"/"overflow" — which is what makes the
// commutativity law (carry ++ sum = carry' ++ sum' under swapped operands)
// hold for free, since it only restates that addition and multiplication of
// big.Int values commute.

func fixedWidthBits(n *big.Int, width int) []byte {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[i] = byte(n.Bit(width - 1 - i))
	}
	return out
}

// Add returns (sum, carry) such that carry++sum, read as an (la+lb)-bit
// unsigned number, equals a+b exactly.
func Add(a, b *Value) (sum, carry *Value, ok bool) {
	if !IsBitstring(a) || !IsBitstring(b) {
		return nil, nil, false
	}
	la, lb := a.stem.Len(), b.stem.Len()
	total := new(big.Int).Add(bitsToNat(a.stem), bitsToNat(b.stem))
	bits := fixedWidthBits(total, la+lb)
	return OfBitValues(bits[lb:]), OfBitValues(bits[:lb]), true
}

// Mul returns (prod, overflow) such that overflow++prod, read as an
// (la+lb)-bit unsigned number, equals a*b exactly.
func Mul(a, b *Value) (prod, overflow *Value, ok bool) {
	if !IsBitstring(a) || !IsBitstring(b) {
		return nil, nil, false
	}
	la, lb := a.stem.Len(), b.stem.Len()
	total := new(big.Int).Mul(bitsToNat(a.stem), bitsToNat(b.stem))
	bits := fixedWidthBits(total, la+lb)
	return OfBitValues(bits[lb:]), OfBitValues(bits[:lb]), true
}

// Sub returns the canonical (minimal, leading-zero-free) Nat encoding of
// a-b, read as unsigned magnitudes; it fails iff the true difference is
// negative.
func Sub(a, b *Value) (*Value, bool) {
	if !IsBitstring(a) || !IsBitstring(b) {
		return nil, false
	}
	na, nb := bitsToNat(a.stem), bitsToNat(b.stem)
	if na.Cmp(nb) < 0 {
		return nil, false
	}
	diff := new(big.Int).Sub(na, nb)
	v, _ := OfNat(diff)
	return v, true
}

// Div returns (q, r) with len(q)=len(a), len(r)=len(b), a=q*b+r, 0<=r<b; it
// fails iff b is zero.
func Div(a, b *Value) (q, r *Value, ok bool) {
	if !IsBitstring(a) || !IsBitstring(b) {
		return nil, nil, false
	}
	na, nb := bitsToNat(a.stem), bitsToNat(b.stem)
	if nb.Sign() == 0 {
		return nil, nil, false
	}
	qn, rn := new(big.Int), new(big.Int)
	qn.DivMod(na, nb, rn)
	la, lb := a.stem.Len(), b.stem.Len()
	return OfBitValues(fixedWidthBits(qn, la)), OfBitValues(fixedWidthBits(rn, lb)), true
}
