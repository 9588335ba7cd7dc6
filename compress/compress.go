// Package compress wraps NBT byte streams in the compressions found in
// practice and recognizes them by their leading bytes.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/signadot/nbt-format/go-nbt/debug"
)

// Compression identifies a stream compression.
type Compression uint8

const (
	None Compression = iota
	GZip
	ZLib
	LZ4
	Zstd
)

var ErrUnsupported = errors.New("unsupported compression")

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case GZip:
		return "gzip"
	case ZLib:
		return "zlib"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Parse returns the compression named s, as returned by String.
func Parse(s string) (Compression, error) {
	for _, c := range All() {
		if c.String() == s {
			return c, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

func (c Compression) MarshalText() ([]byte, error) {
	if c > Zstd {
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Compression) UnmarshalText(d []byte) error {
	cc, err := Parse(string(d))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}

func All() []Compression {
	return []Compression{None, GZip, ZLib, LZ4, Zstd}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect guesses the compression of d from its first bytes.  Uncompressed
// NBT starts with a kind id, almost always 10, which none of the magic
// numbers collide with.
func Detect(d []byte) Compression {
	switch {
	case bytes.HasPrefix(d, gzipMagic):
		return GZip
	case bytes.HasPrefix(d, lz4Magic):
		return LZ4
	case bytes.HasPrefix(d, zstdMagic):
		return Zstd
	case isZlib(d):
		return ZLib
	}
	return None
}

// isZlib checks the zlib header: deflate with a window of at most 32K and
// a header checksum divisible by 31.
func isZlib(d []byte) bool {
	if len(d) < 2 {
		return false
	}
	cmf, flg := d[0], d[1]
	if cmf&0x0f != 8 || cmf>>4 > 7 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// NewReader returns a reader of the decompressed contents of r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case GZip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gr, nil
	case ZLib:
		return zlib.NewReader(r)
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns a writer compressing to w.  The result must be closed
// to flush the compressed stream; closing does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case GZip:
		return gzip.NewWriter(w), nil
	case ZLib:
		return zlib.NewWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return zw, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
}

// Compress returns d compressed with c.
func Compress(d []byte, c Compression) ([]byte, error) {
	if c == None {
		return d, nil
	}
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, c)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(d); err != nil {
		w.Close()
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	if debug.Compress() {
		debug.Logf("compress: %s %d -> %d bytes\n", c, len(d), buf.Len())
	}
	return buf.Bytes(), nil
}

// Decompress returns d decompressed with c.
func Decompress(d []byte, c Compression) ([]byte, error) {
	if c == None {
		return d, nil
	}
	r, err := NewReader(bytes.NewReader(d), c)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", c, err)
	}
	defer r.Close()
	res, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", c, err)
	}
	if debug.Compress() {
		debug.Logf("decompress: %s %d -> %d bytes\n", c, len(d), len(res))
	}
	return res, nil
}

// DecompressAuto detects the compression of d and decompresses it.
func DecompressAuto(d []byte) ([]byte, Compression, error) {
	c := Detect(d)
	res, err := Decompress(d, c)
	if err != nil {
		return nil, c, err
	}
	return res, c, nil
}
