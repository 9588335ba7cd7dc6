package tag

import (
	"fmt"
	"math"
)

// Tag is a node in an NBT document tree.
//
// Tag is a tagged union: Kind determines which payload is meaningful.
// Leaf payloads are read with the As* accessors, which fail with a
// *KindError when called on a tag of another kind.  Lists and compounds
// own their children and may only be changed through the container
// operations in list.go and compound.go, which enforce element kinds and
// unique names.  A tag is held by at most one container at a time; it must
// be removed from its container, or cloned, before it can be stored
// elsewhere.
type Tag struct {
	kind  Kind
	name  *string
	owner *Tag

	i  int64   // Byte, Short, Int, Long; raw bits for Float
	f  float64 // Double
	s  string
	b  []byte
	ia []int32

	elem   Kind
	policy KindPolicy
	elems  []*Tag
	keys   []string
	index  map[string]int
}

func NewByte(v int8) *Tag { return &Tag{kind: Byte, i: int64(v)} }

func NewShort(v int16) *Tag { return &Tag{kind: Short, i: int64(v)} }

func NewInt(v int32) *Tag { return &Tag{kind: Int, i: int64(v)} }

func NewLong(v int64) *Tag { return &Tag{kind: Long, i: v} }

func NewFloat(v float32) *Tag { return NewFloatBits(math.Float32bits(v)) }

// NewFloatBits returns a Float tag holding the IEEE 754 bit pattern bits.
// NaN payloads are kept as given.
func NewFloatBits(bits uint32) *Tag { return &Tag{kind: Float, i: int64(bits)} }

func NewDouble(v float64) *Tag { return &Tag{kind: Double, f: v} }

func NewString(v string) *Tag { return &Tag{kind: String, s: v} }

// NewByteArray returns a ByteArray tag holding v.  The slice is not copied.
func NewByteArray(v []byte) *Tag { return &Tag{kind: ByteArray, b: v} }

// NewIntArray returns an IntArray tag holding v.  The slice is not copied.
func NewIntArray(v []int32) *Tag { return &Tag{kind: IntArray, ia: v} }

// Must panics if err is not nil, otherwise returns t.  It is meant for
// building literal trees whose validity is known in advance.
func Must(t *Tag, err error) *Tag {
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tag) Kind() Kind { return t.kind }

// Name returns the name of t and whether it has one.
func (t *Tag) Name() (string, bool) {
	if t.name == nil {
		return "", false
	}
	return *t.name, true
}

func (t *Tag) HasName() bool { return t.name != nil }

// Owned reports whether t is held by a list or compound.
func (t *Tag) Owned() bool { return t.owner != nil }

// SetName sets the name of t.  The name of a compound child is owned by
// the compound: on the wire the compound key is used.
func (t *Tag) SetName(name string) {
	t.name = &name
}

func (t *Tag) ClearName() {
	t.name = nil
}

// WithName sets the name of t and returns t.
func (t *Tag) WithName(name string) *Tag {
	t.SetName(name)
	return t
}

func (t *Tag) AsByte() (int8, error) {
	if t.kind != Byte {
		return 0, kindErr("AsByte", Byte, t.kind)
	}
	return int8(t.i), nil
}

func (t *Tag) AsShort() (int16, error) {
	if t.kind != Short {
		return 0, kindErr("AsShort", Short, t.kind)
	}
	return int16(t.i), nil
}

func (t *Tag) AsInt() (int32, error) {
	if t.kind != Int {
		return 0, kindErr("AsInt", Int, t.kind)
	}
	return int32(t.i), nil
}

func (t *Tag) AsLong() (int64, error) {
	if t.kind != Long {
		return 0, kindErr("AsLong", Long, t.kind)
	}
	return t.i, nil
}

func (t *Tag) AsFloat() (float32, error) {
	if t.kind != Float {
		return 0, kindErr("AsFloat", Float, t.kind)
	}
	return math.Float32frombits(uint32(t.i)), nil
}

// FloatBits returns the bit pattern of a Float tag.
func (t *Tag) FloatBits() (uint32, error) {
	if t.kind != Float {
		return 0, kindErr("FloatBits", Float, t.kind)
	}
	return uint32(t.i), nil
}

func (t *Tag) AsDouble() (float64, error) {
	if t.kind != Double {
		return 0, kindErr("AsDouble", Double, t.kind)
	}
	return t.f, nil
}

func (t *Tag) AsString() (string, error) {
	if t.kind != String {
		return "", kindErr("AsString", String, t.kind)
	}
	return t.s, nil
}

// AsBytes returns the payload of a ByteArray tag.  The returned slice
// shares storage with t.
func (t *Tag) AsBytes() ([]byte, error) {
	if t.kind != ByteArray {
		return nil, kindErr("AsBytes", ByteArray, t.kind)
	}
	return t.b, nil
}

// AsInts returns the payload of an IntArray tag.  The returned slice
// shares storage with t.
func (t *Tag) AsInts() ([]int32, error) {
	if t.kind != IntArray {
		return nil, kindErr("AsInts", IntArray, t.kind)
	}
	return t.ia, nil
}

// Int64 returns the value of any integer kind widened to int64.
func (t *Tag) Int64() (int64, error) {
	switch t.kind {
	case Byte, Short, Int, Long:
		return t.i, nil
	}
	return 0, kindErr("Int64", Long, t.kind)
}

// Float64 returns the value of any numeric kind as a float64.
func (t *Tag) Float64() (float64, error) {
	switch t.kind {
	case Byte, Short, Int, Long:
XX, Double, t.kind)
}

func (t *Tag) SetByte(v int8) error {
	if t.kind != Byte {
		return kindErr("SetByte", Byte, t.kind)
	}
	t.i = int64(v)
	return nil
}

func (t *Tag) SetShort(v int16) error {
	if t.kind != Short {
		return kindErr("SetShort", Short, t.kind)
	}
	t.i = int64(v)
	return nil
}

func (t *Tag) SetInt(v int32) error {
	if t.kind != Int {
		return kindErr("SetInt", Int, t.kind)
	}
	t.i = int64(v)
	return nil
}

func (t *Tag) SetLong(v int64) error {
	if t.kind != Long {
		return kindErr("SetLong", Long, t.kind)
	}
	t.i = v
	return nil
}

func (t *Tag) SetFloat(v float32) error {
	if t.kind != Float {
		return kindErr("SetFloat", Float, t.kind)
	}
	t.i = int64(math.Float32bits(v))
	return nil
}

func (t *Tag) SetDouble(v float64) error {
	if t.kind != Double {
		return kindErr("SetDouble", Double, t.kind)
	}
	t.f = v
	return nil
}

func (t *Tag) SetString(v string) error {
	if t.kind != String {
		return kindErr("SetString", String, t.kind)
	}
	t.s = v
	return nil
}

func (t *Tag) SetBytes(v []byte) error {
	if t.kind != ByteArray {
		return kindErr("SetBytes", ByteArray, t.kind)
	}
	t.b = v
	return nil
}

func (t *Tag) SetInts(v []int32) error {
	if t.kind != IntArray {
		return kindErr("SetInts", IntArray, t.kind)
	}
	t.ia = v
	return nil
}

// Len returns the number of children of a list or compound, or the
// number of elements of a byte or int array.  It is 0 for other kinds.
func (t *Tag) Len() int {
	switch t.kind {
	case List, Compound:
		return len(t.elems)
	case ByteArray:
		return len(t.b)
	case IntArray:
		return len(t.ia)
	}
	return 0
}

// Clone returns a deep copy of t.
func (t *Tag) Clone() *Tag {
	res := &Tag{}
	return t.CloneTo(res)
}

// CloneTo overwrites dst with a deep copy of t.  dst stays in whatever
// container holds it.
func (t *Tag) CloneTo(dst *Tag) *Tag {
	if t == dst {
		return dst
	}
	for _, e := range dst.elems {
		e.owner = nil
	}
	*dst = Tag{
		owner:  dst.owner,
		kind:   t.kind,
		i:      t.i,
		f:      t.f,
		s:      t.s,
		elem:   t.elem,
		policy: t.policy,
	}
	if t.name != nil {
		dst.SetName(*t.name)
	}
	if t.b != nil {
		dst.b = append([]byte{}, t.b...)
	}
	if t.ia != nil {
		dst.ia = append([]int32{}, t.ia...)
	}
	if t.elems != nil {
		dst.elems = make([]*Tag, len(t.elems))
		for i, e := range t.elems {
			c := e.Clone()
			c.owner = dst
			dst.elems[i] = c
		}
	}
	if t.keys != nil {
		dst.keys = append([]string{}, t.keys...)
		dst.index = make(map[string]int, len(t.keys))
		for i, k := range t.keys {
			dst.index[k] = i
		}
	}
	return dst
}

// Visit calls f on t before (isPost false) and after (isPost true)
// visiting the children of t.  Children are only visited if the pre call
// returns true.
func (t *Tag) Visit(f func(t *Tag, isPost bool) (bool, error)) error {
	dive, err := f(t, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range t.elems {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(t, true); err != nil {
		return err
	}
	return nil
}

func (t *Tag) String() string {
	name := ""
	if t.name != nil {
		name = fmt.Sprintf("(%q)", *t.name)
	}
	switch t.kind {
	case Byte, Short, Int, Long:
		return fmt.Sprintf("%s%s: %d", t.kind, name, t.i)
	case Float:
		return fmt.Sprintf("%s%s: %g", t.kind, name, math.Float32frombits(uint32(t.i)))
	case Double:
		return fmt.Sprintf("%s%s: %g", t.kind, name, t.f)
	case String:
		return fmt.Sprintf("%s%s: %q", t.kind, name, t.s)
	case ByteArray:
		return fmt.Sprintf("%s%s: [%d bytes]", t.kind, name, len(t.b))
	case IntArray:
		return fmt.Sprintf("%s%s: [%d ints]", t.kind, name, len(t.ia))
	case List:
		return fmt.Sprintf("%s%s: %d entries of %s", t.kind, name, len(t.elems), t.elem)
	case Compound:
		return fmt.Sprintf("%s%s: %d entries", t.kind, name, len(t.elems))
	}
	return t.kind.String() + name
}

func floatBits(t *Tag) uint64 {
	if t.kind == Float {
		return uint64(uint32(t.i))
	}
	return math.Float64bits(t.f)
}
