package value

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Print renders v in the readable textual form of spec.md section 4.1:
// symbols as bare identifiers, printable-ASCII byte lists as string
// literals, lists as "[a, b, c]", records as "(k:v, ...)" in sorted-key
// order, and single-key records ("variants") as "tag:value".
func Print(v *Value) string {
	var b strings.Builder
	print1(&b, v)
	return b.String()
}

func print1(b *strings.Builder, v *Value) {
	switch {
	case IsUnit(v):
		b.WriteString("()")
	case tryPrintString(b, v):
	case tryPrintSymbol(b, v):
	case IsList(v):
		printList(b, v)
	case tryPrintRecord(b, v):
	default:
		printRaw(b, v)
	}
}

func tryPrintString(b *strings.Builder, v *Value) bool {
	if !IsBinary(v) || IsUnit(v) {
		return false
	}
	bs, ok := ToBytes(v)
	if !ok {
		return false
	}
	for _, c := range bs {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	b.WriteString(strconv.Quote(string(bs)))
	return true
}

func tryPrintSymbol(b *strings.Builder, v *Value) bool {
	s, ok := ToSymbol(v)
	if !ok || s == "" || !isIdent(s) {
		return false
	}
	b.WriteString(s)
	return true
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func printList(b *strings.Builder, v *Value) {
	items, _ := ListToSeq(v)
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		print1(b, it)
	}
	b.WriteByte(']')
}

type recEntry struct {
	key string
	val *Value
}

func tryPrintRecord(b *strings.Builder, v *Value) bool {
	entries, ok := decodeRecord(v)
	if !ok || len(entries) == 0 {
		return false
	}
	slices.SortFunc(entries, func(a, rb recEntry) int {
		switch {
		case a.key < rb.key:
			return -1
		case a.key > rb.key:
			return 1
		default:
			return 0
		}
	})
	if len(entries) == 1 {
		b.WriteString(entries[0].key)
		b.WriteByte(':')
		print1(b, entries[0].val)
		return true
	}
	b.WriteByte('(')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteByte(':')
		print1(b, e.val)
	}
	b.WriteByte(')')
	return true
}

// decodeRecord enumerates (key, value) pairs by walking the bit-trie,
// treating each byte-aligned run of bits terminated by a null byte as one
// key (symbol.go's encoding). It fails if any path through v dead-ends
// before completing such a key, meaning v does not cleanly print as a
// record.
func decodeRecord(v *Value) ([]recEntry, bool) {
	var entries []recEntry
	if !walkRecord(v, nil, &entries) {
		return nil, false
	}
	return entries, true
}

func walkRecord(v *Value, keyBits []bool, entries *[]recEntry) bool {
	if n := len(keyBits); n > 0 && n%8 == 0 && lastByteIsNull(keyBits) {
		*entries = append(*entries, recEntry{key: bitsToKeyString(keyBits), val: v})
		return true
	}
	if IsUnit(v) {
		return false
	}
	if l, ok := IsLeft(v); ok {
		return walkRecord(l, appendBit(keyBits, false), entries)
	}
	if r, ok := IsRight(v); ok {
		return walkRecord(r, appendBit(keyBits, true), entries)
	}
	l, r, ok := IsPair(v)
	if !ok {
		return false
	}
	okL := walkRecord(l, appendBit(keyBits, false), entries)
	okR := walkRecord(r, appendBit(keyBits, true), entries)
	return okL && okR
}

func appendBit(bits []bool, bit bool) []bool {
	out := make([]bool, len(bits)+1)
	copy(out, bits)
	out[len(bits)] = bit
	return out
}

func lastByteIsNull(bits []bool) bool {
	for i := len(bits) - 8; i < len(bits); i++ {
		if bits[i] {
			return false
		}
	}
	return true
}

func bitsToKeyString(bits []bool) string {
	raw := make([]byte, len(bits)/8-1)
	for i := range raw {
		var c byte
		for j := 0; j < 8; j++ {
			c <<= 1
			if bits[i*8+j] {
				c |= 1
			}
		}
		raw[i] = c
	}
	return string(raw)
}

// printRaw is the fallback for values that are not lists, strings, symbols
// or records: bitstrings print as bit-length-prefixed binary literals, and
// anything else prints using the raw left/right/pair constructors.
func printRaw(b *strings.Builder, v *Value) {
	if IsBitstring(v) {
		bits := v.stem.ToBits()
		b.WriteString(fmt.Sprintf("0b%d'", len(bits)))
		for _, bit := range bits {
			b.WriteByte('0' + bit)
		}
		return
	}
	if l, ok := IsLeft(v); ok {
		b.WriteString("left:")
		print1(b, l)
		return
	}
	if r, ok := IsRight(v); ok {
		b.WriteString("right:")
		print1(b, r)
		return
	}
	l, r, _ := IsPair(v)
	b.WriteByte('(')
	print1(b, l)
	b.WriteString(" . ")
	print1(b, r)
	b.WriteByte(')')
}
