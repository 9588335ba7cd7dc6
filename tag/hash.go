package tag

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value of t, consistent with
// EqualValue.  Hashes are stable within a process only.
// It panics if t is nil.
func (t *Tag) Hash() uint64 {
	if t == nil {
		panic("tag: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(t.kind))

	var b [8]byte
	switch t.kind {
	case Byte, Short, Int, Long:
		binary.LittleEndian.PutUint64(b[:], uint64(t.i))
		h.Write(b[:])
	case Float, Double:
		binary.LittleEndian.PutUint64(b[:], floatBits(t))
		h.Write(b[:])
	case String:
		h.WriteString(t.s)
	case ByteArray:
		h.Write(t.b)
	case IntArray:
		for _, v := range t.ia {
			binary.LittleEndian.PutUint32(b[:4], uint32(v))
			h.Write(b[:4])
		}
	case List:
		h.WriteByte(byte(t.elem))
		for _, e := range t.elems {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case Compound:
		for i, k := range t.keys {
			h.WriteString(k)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], t.elems[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
