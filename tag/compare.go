package tag

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally identical: same kind,
// same name (absent and present names differ), same payload and, for
// containers, equal children in the same order.  Floating point payloads
// are compared bitwise, so a NaN equals itself.
func Equal(a, b *Tag) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	if (a.name == nil) != (b.name == nil) {
		return false
	}
	if a.name != nil && *a.name != *b.name {
		return false
	}
	return equalPayload(a, b)
}

// EqualValue is like Equal but ignores the names of a and b themselves.
// Names of compound children still take part through their keys.
func EqualValue(a, b *Tag) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	return equalPayload(a, b)
}

func equalPayload(a, b *Tag) bool {
	switch a.kind {
	case Byte, Short, Int, Long:
		return a.i == b.i
	case Float, Double:
		return floatBits(a) == floatBits(b)
	case String:
		return a.s == b.s
	case ByteArray:
		return bytes.Equal(a.b, b.b)
	case IntArray:
		return slices.Equal(a.ia, b.ia)
	case List:
		if a.elem != b.elem {
			return false
		}
		return slices.EqualFunc(a.elems, b.elems, EqualValue)
	case Compound:
		if !slices.Equal(a.keys, b.keys) {
			return false
		}
		return slices.EqualFunc(a.elems, b.elems, EqualValue)
	case End:
		return true
	}
	return false
}

// Compare returns an integer comparing two tags.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tags of different kinds are ordered by kind id.  Names are not compared.
func Compare(a, b *Tag) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case Byte, Short, Int, Long:
		return cmp.Compare(a.i, b.i)
	case Float:
		return cmp.Compare(math.Float32frombits(uint32(a.i)), math.Float32frombits(uint32(b.i)))
	case Double:
		return cmp.Compare(a.f, b.f)
	case String:
		return strings.Compare(a.s, b.s)
	case ByteArray:
		return bytes.Compare(a.b, b.b)
	case IntArray:
		return slices.Compare(a.ia, b.ia)
	case List:
		if c := cmp.Compare(a.elem, b.elem); c != 0 {
			return c
		}
		return slices.CompareFunc(a.elems, b.elems, Compare)
	case Compound:
		return compareCompounds(a, b)
	}
	return 0
}

func compareCompounds(a, b *Tag) int {
	n := min(len(a.keys), len(b.keys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}
