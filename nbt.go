// Package nbt reads and writes NBT (Named Binary Tag) documents.
//
// The functions here tie the packages of the module together: tag holds
// the data model, parse and encode the wire format and compress the
// stream compressions.
//
//	f, err := nbt.ReadFile("level.dat")
//	hp, err := nbt.Query(f.Root, "Data.Player.Health")
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - data model, containers, queries
//   - github.com/signadot/nbt-format/go-nbt/parse - binary reader
//   - github.com/signadot/nbt-format/go-nbt/encode - binary writer
//   - github.com/signadot/nbt-format/go-nbt/compress - gzip, zlib, lz4, zstd
//   - github.com/signadot/nbt-format/go-nbt/view - text rendering
package nbt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/nbt-format/go-nbt/compress"
	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Parse decodes uncompressed NBT bytes.
func Parse(data []byte, readRootName bool) (*tag.Tag, error) {
	return parse.Parse(data, parse.ReadRootName(readRootName))
}

// Serialize encodes t without compression.
func Serialize(t *tag.Tag, writeRootName bool) ([]byte, error) {
	return encode.Serialize(t, writeRootName)
}

// Query resolves path against root.  See tag.Query.
func Query(root *tag.Tag, path string) (*tag.Tag, error) {
	return tag.Query(root, path)
}

// File is a document as stored: a named compound root and the
// compression of its stream.
type File struct {
	Root        *tag.Tag
	Compression compress.Compression
}

// NewFile returns a gzip compressed file with an empty root named name.
func NewFile(name string) *File {
	root := tag.Must(tag.NewCompound()).WithName(name)
	return &File{Root: root, Compression: compress.GZip}
}

func checkRoot(t *tag.Tag) error {
	if t == nil {
		return fmt.Errorf("%w: file has no root", tag.ErrFormat)
	}
	if t.Kind() != tag.Compound {
		return fmt.Errorf("%w: file root is %s, not Compound", tag.ErrFormat, t.Kind())
	}
	return nil
}

// Load reads a whole file from r, detecting its compression.
func Load(r io.Reader, opts ...parse.ParseOption) (*File, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(d, opts...)
}

// LoadBytes is Load on the contents of a file.
func LoadBytes(d []byte, opts ...parse.ParseOption) (*File, error) {
	raw, c, err := compress.DecompressAuto(d)
	if err != nil {
		return nil, err
	}
	root, err := parse.Parse(raw, opts...)
	if err != nil {
		return nil, err
	}
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	return &File{Root: root, Compression: c}, nil
}

// Save writes f to w.  Nothing is written if the root cannot be encoded.
func (f *File) Save(w io.Writer, opts ...encode.EncodeOption) error {
	d, err := f.Bytes(opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Bytes returns the contents of f as stored.
func (f *File) Bytes(opts ...encode.EncodeOption) ([]byte, error) {
	if err := checkRoot(f.Root); err != nil {
		return nil, err
	}
	raw, err := encode.Append(nil, f.Root, opts...)
	if err != nil {
		return nil, err
	}
	return compress.Compress(raw, f.Compression)
}

// ReadFile loads the file at path.
func ReadFile(path string, opts ...parse.ParseOption) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := LoadBytes(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// WriteFile stores f at path, replacing any existing file only once the
// new contents are complete.
func WriteFile(path string, f *File, opts ...encode.EncodeOption) error {
	d, err := f.Bytes(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	err = writeTemp(tmp, d)
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func writeTemp(tmp *os.File, d []byte) error {
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	return tmp.Close()
}

// Equal reports whether two files hold equal documents, ignoring their
// compressions.
func Equal(a, b *File) bool {
	return tag.Equal(a.Root, b.Root)
}
