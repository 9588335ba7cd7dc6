package encode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/internal/mutf8"
	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/signadot/nbt-format/go-nbt/tag/tpath"
)

type EncState struct {
	rootName bool
	mutf8    bool
}

// Error reports a tag which cannot be written.  Path locates the tag
// relative to the root.
type Error struct {
	Path tpath.Path
	Err  error
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Serialize returns the encoding of t, with or without the name of t.
func Serialize(t *tag.Tag, writeRootName bool) ([]byte, error) {
	return Append(nil, t, WriteRootName(writeRootName))
}

// Encode writes the encoding of t to w.  Nothing is written if t cannot be
// encoded.
func Encode(t *tag.Tag, w io.Writer, opts ...EncodeOption) error {
	d, err := Append(nil, t, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Append appends the encoding of t to dst.  On error dst is returned
// unchanged.
func Append(dst []byte, t *tag.Tag, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	if t == nil {
		return dst, &Error{Err: fmt.Errorf("%w: nil root", tag.ErrFormat)}
	}
	k := t.Kind()
	if k == tag.End {
		return dst, &Error{Err: fmt.Errorf("%w: root tag is End", tag.ErrFormat)}
	}
	n := len(dst)
	res := append(dst, k.ID())
	var err error
	if es.rootName {
		name, ok := t.Name()
		if !ok {
			return dst, &Error{Err: fmt.Errorf("%w: root %s tag has no name", tag.ErrFormat, k)}
		}
		res, err = es.string(res, name)
		if err != nil {
			return dst, &Error{Err: err}
		}
	}
	res, err = es.payload(res, t)
	if err != nil {
		return dst, err
	}
	if debug.Encode() {
		debug.Logf("encode: %s (%d bytes)\n", t, len(res)-n)
	}
	return res, nil
}

// AppendPayload appends the bare payload of t to dst, without kind id or
// name.
func AppendPayload(dst []byte, t *tag.Tag, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	if t == nil || t.Kind() == tag.End {
		return dst, &Error{Err: fmt.Errorf("%w: no payload to write", tag.ErrFormat)}
	}
	res, err := es.payload(dst, t)
	if err != nil {
		return dst, err
	}
	return res, nil
}

func (es *EncState) string(dst []byte, s string) ([]byte, error) {
	n := len(s)
	if es.mutf8 {
		n = mutf8.EncodedLen(s)
	}
	if n > math.MaxUint16 {
		return dst, fmt.Errorf("%w: string of %d bytes exceeds %d", tag.ErrFormat, n, math.MaxUint16)
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	if es.mutf8 {
		return mutf8.Encode(dst, s), nil
	}
	return append(dst, s...), nil
}

func length(dst []byte, n int, what string) ([]byte, error) {
	if n > math.MaxInt32 {
		return dst, fmt.Errorf("%w: %s of %d elements exceeds %d", tag.ErrFormat, what, n, math.MaxInt32)
	}
	return binary.BigEndian.AppendUint32(dst, uint32(n)), nil
}

func (es *EncState) payload(dst []byte, t *tag.Tag) ([]byte, error) {
	var err error
	switch t.Kind() {
	case tag.Byte:
		v, _ := t.AsByte()
		return append(dst, byte(v)), nil
	case tag.Short:
		v, _ := t.AsShort()
		return binary.BigEndian.AppendUint16(dst, uint16(v)), nil
	case tag.Int:
		v, _ := t.AsInt()
		return binary.BigEndian.AppendUint32(dst, uint32(v)), nil
	case tag.Long:
		v, _ := t.AsLong()
		return binary.BigEndian.AppendUint64(dst, uint64(v)), nil
	case tag.Float:
		v, _ := t.FloatBits()
		return binary.BigEndian.AppendUint32(dst, v), nil
	case tag.Double:
		v, _ := t.AsDouble()
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(v)), nil
	case tag.ByteArray:
		v, _ := t.AsBytes()
		if dst, err = length(dst, len(v), "byte array"); err != nil {
			return dst, &Error{Err: err}
		}
		return append(dst, v...), nil
	case tag.String:
		v, _ := t.AsString()
		if dst, err = es.string(dst, v); err != nil {
			return dst, &Error{Err: err}
		}
		return dst, nil
	case tag.IntArray:
		v, _ := t.AsInts()
		if dst, err = length(dst, len(v), "int array"); err != nil {
			return dst, &Error{Err: err}
		}
		dst = slices.Grow(dst, 4*len(v))
		for _, x := range v {
			dst = binary.BigEndian.AppendUint32(dst, uint32(x))
		}
		return dst, nil
	case tag.List:
		return es.list(dst, t)
	case tag.Compound:
		return es.compound(dst, t)
	}
	return dst, &Error{Err: fmt.Errorf("%w: cannot write a %s tag", tag.ErrFormat, t.Kind())}
}

func (es *EncState) list(dst []byte, t *tag.Tag) ([]byte, error) {
	ek := t.ElemKind()
	if ek == tag.Unknown {
		return dst, &Error{Err: fmt.Errorf("%w: list element kind is Unknown", tag.ErrFormat)}
	}
	elems := t.Elems()
	dst = append(dst, ek.ID())
	dst, err := length(dst, len(elems), "list")
	if err != nil {
		return dst, &Error{Err: err}
	}
	for i, e := range elems {
		dst, err = es.payload(dst, e)
		if err != nil {
			return dst, within(err, tpath.Path(nil).Elem(i)[0])
		}
	}
	return dst, nil
}

func (es *EncState) compound(dst []byte, t *tag.Tag) ([]byte, error) {
	var err error
	for _, kv := range t.KeyVals() {
		dst = append(dst, kv.Val.Kind().ID())
		dst, err = es.string(dst, kv.Key)
		if err == nil {
			dst, err = es.payload(dst, kv.Val)
		}
		if err != nil {
			return dst, within(err, tpath.Path(nil).Child(kv.Key)[0])
		}
	}
	return append(dst, tag.End.ID()), nil
}

// within locates err under seg.
func within(err error, seg tpath.Segment) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Err: err}
	}
	e.Path = append(tpath.Path{seg}, e.Path...)
	return e
}
