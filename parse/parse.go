package parse

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/internal/mutf8"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// chunk bounds a single allocation when the input size is unknown.
const chunk = 1 << 16

// Parse decodes a single tagged root from d.
func Parse(d []byte, opts ...ParseOption) (*tag.Tag, error) {
	dec := &decoder{
		r:    bytes.NewReader(d),
		size: int64(len(d)),
		opts: newOpts(opts),
	}
	return dec.root()
}

// Decode decodes a single tagged root from r.  Unless r is an
// io.ByteReader it is buffered, so bytes after the root may be consumed.
func Decode(r io.Reader, opts ...ParseOption) (*tag.Tag, error) {
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}
	dec := &decoder{
		r:    r,
		size: -1,
		opts: newOpts(opts),
	}
	return dec.root()
}

// ParsePayload decodes d as the bare payload of a tag of kind k: no kind
// id and no name precede it.
func ParsePayload(d []byte, k tag.Kind, opts ...ParseOption) (*tag.Tag, error) {
	dec := &decoder{
		r:    bytes.NewReader(d),
		size: int64(len(d)),
		opts: newOpts(opts),
	}
	if !k.Valid() || k == tag.End {
		return nil, dec.errf(0, "%w: cannot decode a payload of kind %s", tag.ErrFormat, k)
	}
	res, err := dec.payload(k)
	if err != nil {
		return nil, err
	}
	if err := dec.trailing(); err != nil {
		return nil, err
	}
	return res, nil
}

type decoder struct {
	r     io.Reader
	off   int64
	size  int64 // -1 if unknown
	opts  *parseOpts
	depth int
	buf   [8]byte
}

func (d *decoder) root() (*tag.Tag, error) {
	off := d.off
	k, err := d.kind()
	if err != nil {
		return nil, err
	}
	if k == tag.End {
		return nil, d.errf(off, "%w: root tag is End", tag.ErrFormat)
	}
	var name string
	if d.opts.rootName {
		name, err = d.string()
		if err != nil {
			return nil, err
		}
	}
	res, err := d.payload(k)
	if err != nil {
		return nil, err
	}
	if d.opts.rootName {
		res.SetName(name)
	}
	if err := d.trailing(); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: root %s (%d bytes)\n", res, d.off)
	}
	return res, nil
}

func (d *decoder) trailing() error {
	if !d.opts.strict {
		return nil
	}
	if d.size >= 0 {
		if d.off < d.size {
			return d.errf(d.off, "%w: %d bytes", ErrTrailing, d.size-d.off)
		}
		return nil
	}
	n, err := io.ReadFull(d.r, d.buf[:1])
	if n > 0 {
		return d.errf(d.off, "%w", ErrTrailing)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return &Error{Offset: d.off, Err: err}
	}
	return nil
}

func (d *decoder) errf(off int64, f string, args ...any) error {
	return &Error{Offset: off, Err: fmt.Errorf(f, args...)}
}

func (d *decoder) readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return &Error{Offset: d.off, Err: err}
}

// fixed reads n <= 8 bytes into d.buf.
func (d *decoder) fixed(n int) ([]byte, error) {
	m, err := io.ReadFull(d.r, d.buf[:n])
	d.off += int64(m)
	if err != nil {
		return nil, d.readErr(err)
	}
	return d.buf[:n], nil
}

func (d *decoder) readN(n int64) ([]byte, error) {
	if d.size >= 0 {
		if n > d.size-d.off {
			return nil, d.errf(d.off, "%w: need %d bytes, have %d", ErrTruncated, n, d.size-d.off)
		}
		res := make([]byte, n)
		m, err := io.ReadFull(d.r, res)
		d.off += int64(m)
		if err != nil {
			return nil, d.readErr(err)
		}
		return res, nil
	}
	res := make([]byte, 0, min(n, chunk))
	for int64(len(res)) < n {
		m := int(min(n-int64(len(res)), chunk))
		res = slices.Grow(res, m)
		start := len(res)
		res = res[:start+m]
		k, err := io.ReadFull(d.r, res[start:])
		d.off += int64(k)
		if err != nil {
			return nil, d.readErr(err)
		}
	}
	return res, nil
}

func (d *decoder) kind() (tag.Kind, error) {
	off := d.off
	b, err := d.fixed(1)
	if err != nil {
		return tag.Unknown, err
	}
	k, err := tag.KindFromID(b[0])
	if err != nil {
		return tag.Unknown, &Error{Offset: off, Err: err}
	}
	return k, nil
}

// length reads a signed 32 bit length, which must not be negative.
func (d *decoder) length(what string) (int64, error) {
	off := d.off
	b, err := d.fixed(4)
	if err != nil {
		return 0, err
	}
	n := int32(binary.BigEndian.Uint32(b))
	if n < 0 {
		return 0, d.errf(off, "%w: negative %s length %d", tag.ErrFormat, what, n)
	}
	return int64(n), nil
}

func (d *decoder) string() (string, error) {
	b, err := d.fixed(2)
	if err != nil {
		return "", err
	}
	off := d.off
	raw, err := d.readN(int64(binary.BigEndian.Uint16(b)))
	if err != nil {
		return "", err
	}
	if !d.opts.mutf8 {
		return string(raw), nil
	}
	s, err := mutf8.Decode(raw)
	if err != nil {
		return "", d.errf(off, "%w: %w", tag.ErrFormat, err)
	}
	return s, nil
}

func (d *decoder) enter(off int64) error {
	d.depth++
	if d.depth > d.opts.maxDepth {
		return d.errf(off, "%w: limit %d", ErrDepth, d.opts.maxDepth)
	}
	return nil
}

func (d *decoder) payload(k tag.Kind) (*tag.Tag, error) {
	switch k {
	case tag.Byte:
		b, err := d.fixed(1)
		if err != nil {
			return nil, err
		}
		return tag.NewByte(int8(b[0])), nil
	case tag.Short:
		b, err := d.fixed(2)
		if err != nil {
			return nil, err
		}
		return tag.NewShort(int16(binary.BigEndian.Uint16(b))), nil
	case tag.Int:
		b, err := d.fixed(4)
		if err != nil {
			return nil, err
		}
		return tag.NewInt(int32(binary.BigEndian.Uint32(b))), nil
	case tag.Long:
		b, err := d.fixed(8)
		if err != nil {
			return nil, err
		}
		return tag.NewLong(int64(binary.BigEndian.Uint64(b))), nil
	case tag.Float:
		b, err := d.fixed(4)
		if err != nil {
			return nil, err
		}
		return tag.NewFloatBits(binary.BigEndian.Uint32(b)), nil
	case tag.Double:
		b, err := d.fixed(8)
		if err != nil {
			return nil, err
		}
		return tag.NewDouble(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case tag.ByteArray:
		n, err := d.length("byte array")
		if err != nil {
			return nil, err
		}
		b, err := d.readN(n)
		if err != nil {
			return nil, err
		}
		return tag.NewByteArray(b), nil
	case tag.String:
		s, err := d.string()
		if err != nil {
			return nil, err
		}
		return tag.NewString(s), nil
	case tag.IntArray:
		n, err := d.length("int array")
		if err != nil {
			return nil, err
		}
		b, err := d.readN(4 * n)
		if err != nil {
			return nil, err
		}
		ia := make([]int32, n)
		for i := range ia {
			ia[i] = int32(binary.BigEndian.Uint32(b[4*i:]))
		}
		return tag.NewIntArray(ia), nil
	case tag.List:
		return d.list()
	case tag.Compound:
		return d.compound()
	}
	return nil, d.errf(d.off, "%w: no payload for kind %s", tag.ErrFormat, k)
}

func (d *decoder) list() (*tag.Tag, error) {
	off := d.off
	if err := d.enter(off); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	ek, err := d.kind()
	if err != nil {
		return nil, err
	}
	n, err := d.length("list")
	if err != nil {
		return nil, err
	}
	if ek == tag.End && n > 0 {
		return nil, d.errf(off, "%w: list of End with %d elements", tag.ErrFormat, n)
	}
	elems := make([]*tag.Tag, 0, min(n, 1024))
	for range n {
		e, err := d.payload(ek)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	res, err := tag.NewListOf(ek, elems...)
	if err != nil {
		return nil, &Error{Offset: off, Err: err}
	}
	return res, nil
}

func (d *decoder) compound() (*tag.Tag, error) {
	if err := d.enter(d.off); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	var kvs []tag.KeyVal
	seen := map[string]bool{}
	for {
		off := d.off
		k, err := d.kind()
		if err != nil {
			return nil, err
		}
		if k == tag.End {
			break
		}
		name, err := d.string()
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, d.errf(off, "%w: duplicate compound name %q", tag.ErrFormat, name)
		}
		seen[name] = true
		if debug.Parse() {
			debug.Logf("parse: %s %q at %d\n", k, name, off)
		}
		v, err := d.payload(k)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, tag.KeyVal{Key: name, Val: v})
	}
	res, err := tag.FromKeyVals(kvs)
	if err != nil {
		return nil, &Error{Offset: d.off, Err: err}
	}
	return res, nil
}
