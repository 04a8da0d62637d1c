package value

// Record operations. A record is not a distinct representation: it is any
// Value interpreted as a radix (PATRICIA) tree keyed by the bit sequences of
// its entries' keys (spec.md section 3.1, 4.1). record_lookup descends the
// stem/branch structure consuming bits of the key; record_insert/_delete
// rebuild the minimal path-compressed shape that keeps that descent correct
// and canonical.
//
// Because record keys are null-terminated symbols (symbol.go), no key is a
// strict bit-prefix of another in well-formed usage, which is what makes
// "all bits of the key consumed exactly" an unambiguous success condition.
// Record operations do not themselves enforce that invariant; callers that
// feed them arbitrary, non-symbol keys get a best-effort result rather than
// a panic.

func withStem(prefix Bits, v *Value) *Value {
	if prefix.Len() == 0 {
		return v
	}
	return &Value{
		stem:  Concat(prefix, v.stem),
		kind:  v.kind,
		left:  v.left,
		right: v.right,
		rope:  v.rope,
	}
}

func stripStem(v *Value) *Value {
	if v.stem.Len() == 0 {
		return v
	}
	return &Value{kind: v.kind, left: v.left, right: v.right, rope: v.rope}
}

// RecordLookup returns the value stored at key in record r, following
// key's bits from the root. It fails if key's bits cannot be consumed
// exactly (either a bit mismatch, or the path runs out before key does).
func RecordLookup(key *Value, r *Value) (*Value, bool) {
	return recordLookup(r, key.stem)
}

func recordLookup(cur *Value, key Bits) (*Value, bool) {
	pos := 0
	for {
		stem := cur.stem
		remaining := key.Len() - pos
		cpl := 0
		for cpl < stem.Len() && cpl < remaining && stem.At(cpl) == key.At(pos+cpl) {
			cpl++
		}
		if cpl < stem.Len() {
			if cpl == remaining {
				// key ends inside the stem: the rest of the stem belongs to
				// the stored value (a bitstring value's bits continue it).
				return withStem(stem.Slice(cpl, stem.Len()), stripStem(cur)), true
			}
			return nil, false
		}
		pos += stem.Len()
		if pos == key.Len() {
			return stripStem(cur), true
		}
		if cur.kind != KindBranch {
			return nil, false
		}
		if key.At(pos) {
			cur = cur.right
		} else {
			cur = cur.left
		}
		pos++
	}
}

// RecordInsert returns a copy of record r with key bound to v.
func RecordInsert(key *Value, v *Value, r *Value) *Value {
	return recordInsert(r, key.stem, v)
}

func recordInsert(cur *Value, key Bits, v *Value) *Value {
	stem := cur.stem
	cpl := CommonPrefixLen(stem, key)

	if cpl == stem.Len() && cpl == key.Len() {
		return withStem(stem, v)
	}

	if cpl == stem.Len() {
		rest := key.Slice(cpl, key.Len())
		bit, tail := rest.At(0), rest.Slice(1, rest.Len())
		if cur.kind == KindBranch {
			if bit {
				return withStem(stem, Pair(cur.left, recordInsert(cur.right, tail, v)))
			}
			return withStem(stem, Pair(recordInsert(cur.left, tail, v), cur.right))
		}
		if IsUnit(stripStem(cur)) {
			// Empty subtree: the whole key becomes a single stem.
			return withStem(key, v)
		}
		leaf := withStem(tail, v)
		if bit {
			return withStem(stem, Pair(Unit, leaf))
		}
		return withStem(stem, Pair(leaf, Unit))
	}

	// Divergence strictly inside the stem.
	common := stem.Slice(0, cpl)
	oldChild := withStem(stem.Slice(cpl+1, stem.Len()), stripStem(cur))

	if cpl >= key.Len() {
		// key ends inside the stem: either key is already bound and the rest
		// of the stem is its old value's bits (overwrite), or a shorter,
		// non-null-terminated key is used against a record built from longer
		// keys sharing its prefix (best effort: overwrite here as well).
		return withStem(common, v)
	}

	newBit := key.At(cpl)
	newChild := withStem(key.Slice(cpl+1, key.Len()), v)

	var left, right *Value = Unit, Unit
	if stem.At(cpl) {
		right = oldChild
	} else {
		left = oldChild
	}
	if newBit {
		right = newChild
	} else {
		left = newChild
	}
	return withStem(common, Pair(left, right))
}

// RecordDelete returns a copy of record r with key unbound.
func RecordDelete(key *Value, r *Value) *Value {
	return recordDelete(r, key.stem)
}

func recordDelete(cur *Value, key Bits) *Value {
	stem := cur.stem
	cpl := CommonPrefixLen(stem, key)
	if cpl < stem.Len() {
		if cpl == key.Len() {
			return Unit // key ends inside the stem: the rest is its value
		}
		return cur // key not present along this path
	}
	remaining := key.Slice(cpl, key.Len())
	if remaining.Len() == 0 {
		return Unit
	}
	if cur.kind != KindBranch {
		return cur // key not present
	}
	bit, tail := remaining.At(0), remaining.Slice(1, remaining.Len())
	left, right := cur.left, cur.right
	if bit {
		right = recordDelete(cur.right, tail)
	} else {
		left = recordDelete(cur.left, tail)
	}
	return withStem(stem, compress(left, right))
}

func compress(left, right *Value) *Value {
	switch {
	case IsUnit(left) && IsUnit(right):
		return Unit
	case IsUnit(left):
		return Right(right)
	case IsUnit(right):
		return Left(left)
	default:
		return Pair(left, right)
	}
}
