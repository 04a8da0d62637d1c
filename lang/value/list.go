package value

// List/Binary operations. A List is, logically, either Unit or
// Pair(head, tail); a Rope is an accelerated representation of the same
// logical shape (see rope.go and IsPair's Rope case). The functions below
// accept either representation and promote Pair-chains to ropes whenever an
// operation would otherwise be linear where the rope gives log-n.

// EmptyList is the empty List/Binary.
var EmptyList = Unit

// OfSeq builds a Rope-backed list from a slice of Values, in order.
func OfSeq(items []*Value) *Value {
	if len(items) == 0 {
		return Unit
	}
	cp := append([]*Value(nil), items...)
	return ropeValue(ropeOfItems(cp))
}

// OfBytes builds a Rope-backed binary (list of Byte) from raw bytes.
func OfBytes(bs []byte) *Value {
	if len(bs) == 0 {
		return Unit
	}
	cp := append([]byte(nil), bs...)
	return ropeValue(ropeOfBytes(cp))
}

// asRope returns v's rope view, promoting a Pair-chain if necessary.
func asRope(v *Value) *rope {
	if v.kind == KindRope {
		return v.rope
	}
	var items []*Value
	cur := v
	for !IsUnit(cur) {
		head, tail, ok := IsPair(cur)
		if !ok {
			return nil
		}
		items = append(items, head)
		cur = tail
	}
	return ropeOfItems(items)
}

// ListLen returns the number of elements, or -1 if v is not a list.
func ListLen(v *Value) int {
	r := asRope(v)
	if r == nil {
		return -1
	}
	return r.length()
}

// ListAppend concatenates two lists (l ++ r).
func ListAppend(l, r *Value) (*Value, bool) {
	lr, rr := asRope(l), asRope(r)
	if lr == nil || rr == nil {
		return nil, false
	}
	return ropeValue(ropeConcat(lr, rr)), true
}

// ListSplit divides l into its first n elements and the remainder. It fails
// if n exceeds the list's length.
func ListSplit(n int, l *Value) (left, right *Value, ok bool) {
	r := asRope(l)
	if r == nil || n < 0 || n > r.length() {
		return nil, nil, false
	}
	a, b := r.split(n)
	return ropeValue(a), ropeValue(b), true
}

// ListTake returns the first n elements of l.
func ListTake(n int, l *Value) (*Value, bool) {
	left, _, ok := ListSplit(n, l)
	return left, ok
}

// ListSkip returns l with its first n elements removed.
func ListSkip(n int, l *Value) (*Value, bool) {
	_, right, ok := ListSplit(n, l)
	return right, ok
}

// ListRev reverses a list.
func ListRev(l *Value) (*Value, bool) {
	r := asRope(l)
	if r == nil {
		return nil, false
	}
	return ropeValue(r.reverse()), true
}

// ListItem returns the i'th element (0-based).
func ListItem(i int, l *Value) (*Value, bool) {
	r := asRope(l)
	if r == nil || i < 0 || i >= r.length() {
		return nil, false
	}
	return r.itemAt(i), true
}

// ListPushl prepends v to l (v:l).
func ListPushl(v, l *Value) (*Value, bool) {
	r := asRope(l)
	if r == nil {
		return nil, false
	}
	return ropeValue(r.pushl(v)), true
}

// ListPopl splits l into its head and tail; fails if l is empty.
func ListPopl(l *Value) (head, tail *Value, ok bool) {
	r := asRope(l)
	if r == nil || r.length() == 0 {
		return nil, nil, false
	}
	h, rest := r.popl()
	return h, ropeValue(rest), true
}

// ListPushr appends v to the end of l.
func ListPushr(l, v *Value) (*Value, bool) {
	r := asRope(l)
	if r == nil {
		return nil, false
	}
	return ropeValue(r.pushr(v)), true
}

// ListPopr splits l into its init and last element; fails if l is empty.
func ListPopr(l *Value) (init, last *Value, ok bool) {
	r := asRope(l)
	if r == nil || r.length() == 0 {
		return nil, nil, false
	}
	rest, lastv := r.popr()
	return ropeValue(rest), lastv, true
}

// ListToSeq flattens a list into a Go slice, in order.
func ListToSeq(l *Value) ([]*Value, bool) {
	r := asRope(l)
	if r == nil {
		return nil, false
	}
	return r.toSeq(), true
}

// ListMap builds a new list by applying f to every element of l, in order.
// f may fail (return ok=false), in which case ListMap fails as a whole.
func ListMap(f func(*Value) (*Value, bool), l *Value) (*Value, bool) {
	items, ok := ListToSeq(l)
	if !ok {
		return nil, false
	}
	out := make([]*Value, len(items))
	for i, it := range items {
		v, ok := f(it)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return OfSeq(out), true
}

// ListFoldl folds f over l from left to right, starting from acc.
func ListFoldl(f func(acc, v *Value) (*Value, bool), acc *Value, l *Value) (*Value, bool) {
	items, ok := ListToSeq(l)
	if !ok {
		return nil, false
	}
	for _, it := range items {
		acc, ok = f(acc, it)
		if !ok {
			return nil, false
		}
	}
	return acc, true
}

// ToBytes returns the raw bytes of a Binary (a list of 8-bit Bytes), failing
// if v is not a binary.
func ToBytes(v *Value) ([]byte, bool) {
	if !IsBinary(v) {
		return nil, false
	}
	items, ok := ListToSeq(v)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(items))
	for i, it := range items {
		n, ok := ToNat64(it)
		if !ok || n > 255 {
			return nil, false
		}
		out[i] = byte(n)
	}
	return out, true
}
