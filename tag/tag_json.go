package tag

import (
	"encoding/json"
	"fmt"
	"math"
)

// Doc is the interchange form of a Tag, used to carry a tree through
// JSON, YAML and CBOR without losing kinds.  Integer kinds use Int, Float
// and Double use Float, lists carry ElemKind, and list elements and
// compound children are in Elems (compound children by Name).
type Doc struct {
	Kind     Kind     `json:"kind" yaml:"kind" cbor:"kind"`
	Name     *string  `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	Int      *int64   `json:"int,omitempty" yaml:"int,omitempty" cbor:"int,omitempty"`
	Float    *float64 `json:"float,omitempty" yaml:"float,omitempty" cbor:"float,omitempty"`
	String   *string  `json:"string,omitempty" yaml:"string,omitempty" cbor:"string,omitempty"`
	Bytes    []byte   `json:"bytes,omitempty" yaml:"bytes,omitempty" cbor:"bytes,omitempty"`
	Ints     []int32  `json:"ints,omitempty" yaml:"ints,omitempty" cbor:"ints,omitempty"`
	ElemKind *Kind    `json:"elemKind,omitempty" yaml:"elemKind,omitempty" cbor:"elemKind,omitempty"`
	Elems    []*Doc   `json:"elems,omitempty" yaml:"elems,omitempty" cbor:"elems,omitempty"`
}

// ToDoc returns the interchange form of the tree rooted at t.
func ToDoc(t *Tag) *Doc {
	d := &Doc{Kind: t.kind}
	if t.name != nil {
		name := *t.name
		d.Name = &name
	}
	switch t.kind {
	case Byte, Short, Int, Long:
		i := t.i
		d.Int = &i
	case Float, Double:
		f, _ := t.Float64()
		d.Float = &f
	case String:
		s := t.s
		d.String = &s
	case ByteArray:
		d.Bytes = t.b
	case IntArray:
		d.Ints = t.ia
	case List:
		ek := t.elem
		d.ElemKind = &ek
		d.Elems = make([]*Doc, len(t.elems))
		for i, e := range t.elems {
			d.Elems[i] = ToDoc(e)
		}
	case Compound:
		d.Elems = make([]*Doc, len(t.elems))
		for i, e := range t.elems {
			c := ToDoc(e)
			key := t.keys[i]
			c.Name = &key
			d.Elems[i] = c
		}
	}
	return d
}

// FromDoc builds a tree from its interchange form, applying the same
// container rules as programmatic construction.
func FromDoc(d *Doc) (*Tag, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil document", ErrFormat)
	}
	var (
		res *Tag
		err error
	)
	switch d.Kind {
	case Byte, Short, Int, Long:
		res, err = docInt(d)
	case Float, Double:
		f := 0.0
		if d.Float != nil {
			f = *d.Float
		}
		if d.Kind == Float {
			res = NewFloat(float32(f))
		} else {
			res = NewDouble(f)
		}
	case String:
		s := ""
		if d.String != nil {
			s = *d.String
		}
		res = NewString(s)
	case ByteArray:
		res = NewByteArray(d.Bytes)
	case IntArray:
		res = NewIntArray(d.Ints)
	case List:
		res, err = docList(d)
	case Compound:
		res, err = docCompound(d)
	default:
		return nil, fmt.Errorf("%w: cannot build a tag of kind %s", ErrFormat, d.Kind)
	}
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		res.SetName(*d.Name)
	}
	return res, nil
}

func docInt(d *Doc) (*Tag, error) {
	var i int64
	if d.Int != nil {
		i = *d.Int
	}
	var lo, hi int64
	switch d.Kind {
	case Byte:
		lo, hi = math.MinInt8, math.MaxInt8
	case Short:
		lo, hi = math.MinInt16, math.MaxInt16
	case Int:
		lo, hi = math.MinInt32, math.MaxInt32
	default:
		return NewLong(i), nil
	}
	if i < lo || i > hi {
		return nil, fmt.Errorf("%w: %d overflows %s", ErrFormat, i, d.Kind)
	}
	return &Tag{kind: d.Kind, i: i}, nil
}

func docList(d *Doc) (*Tag, error) {
	ek := Unknown
	if d.ElemKind != nil {
		ek = *d.ElemKind
	}
	elems := make([]*Tag, len(d.Elems))
	for i, ed := range d.Elems {
		e, err := FromDoc(ed)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return NewListOf(ek, elems...)
}

func docCompound(d *Doc) (*Tag, error) {
	kvs := make([]KeyVal, len(d.Elems))
	for i, cd := range d.Elems {
		if cd == nil || cd.Name == nil {
			return nil, fmt.Errorf("%w: compound child %d has no name", ErrFormat, i)
		}
		c, err := FromDoc(cd)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", *cd.Name, err)
		}
		kvs[i] = KeyVal{Key: *cd.Name, Val: c}
	}
	return FromKeyVals(kvs)
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToDoc(t))
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	d := &Doc{}
	if err := json.Unmarshal(data, d); err != nil {
		return err
	}
	res, err := FromDoc(d)
	if err != nil {
		return err
	}
	*t = *res
	return nil
}
