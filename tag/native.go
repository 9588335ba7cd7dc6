package tag

import "math"

// ToAny converts the tree rooted at t into plain Go values:
//
//	Byte      int8
//	Short     int16
//	Int       int32
//	Long      int64
//	Float     float32
//	Double    float64
//	ByteArray []byte
//	String    string
//	IntArray  []int32
//	List      []any
//	Compound  map[string]any
//
// The conversion is one way; names of t itself are dropped.
func ToAny(t *Tag) any {
	switch t.kind {
	case Byte:
		return int8(t.i)
	case Short:
		return int16(t.i)
	case Int:
		return int32(t.i)
	case Long:
		return t.i
	case Float:
		return math.Float32frombits(uint32(t.i))
	case Double:
		return t.f
	case ByteArray:
		return append([]byte{}, t.b...)
	case String:
		return t.s
	case IntArray:
		return append([]int32{}, t.ia...)
	case List:
		res := make([]any, len(t.elems))
		for i, e := range t.elems {
			res[i] = ToAny(e)
		}
		return res
	case Compound:
		res := make(map[string]any, len(t.elems))
		for i, e := range t.elems {
			res[t.keys[i]] = ToAny(e)
		}
		return res
	}
	return nil
}
