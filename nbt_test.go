package nbt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nbt-format/go-nbt/compress"
	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

func sample() *File {
	f := NewFile("Level")
	for _, c := range []*tag.Tag{
		tag.NewInt(42).WithName("hp"),
		tag.Must(tag.NewList(tag.NewString("sword"), tag.NewString("shield"))).WithName("items"),
		tag.Must(tag.NewListOf(tag.Compound)).WithName("entities"),
	} {
		if err := f.Root.Add(c); err != nil {
			panic(err)
		}
	}
	return f
}

func TestSaveLoad(t *testing.T) {
	for _, c := range compress.All() {
		t.Run(c.String(), func(t *testing.T) {
			f := sample()
			f.Compression = c
			buf := &bytes.Buffer{}
			if err := f.Save(buf); err != nil {
				t.Fatal(err)
			}
			if got := compress.Detect(buf.Bytes()); got != c {
				t.Errorf("detected %s", got)
			}
			back, err := Load(buf, parse.Strict())
			if err != nil {
				t.Fatal(err)
			}
			if back.Compression != c {
				t.Errorf("compression %s, want %s", back.Compression, c)
			}
			if !Equal(f, back) {
				t.Errorf("got %s", back.Root)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	f := sample()
	d, err := Serialize(f.Root, true)
	if err != nil {
		t.Fatal(err)
	}
	root, err := Parse(d, true)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		ok   bool
	}{
		{"Level.hp", true},
		{"Level.items.1", true},
		{"Level.items.5", false},
		{"Level.items.name", false},
		{"hp", false},
	}
	for _, tc := range tests {
		_, err := Query(root, tc.path)
		if (err == nil) != tc.ok {
			t.Errorf("Query(%q): %v", tc.path, err)
		}
		if err != nil && !errors.Is(err, tag.ErrQuery) {
			t.Errorf("Query(%q): %v is not a query error", tc.path, err)
		}
	}
	shield, _ := Query(root, "Level.items.1")
	if s, _ := shield.AsString(); s != "shield" {
		t.Errorf("got %s", shield)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")
	f := sample()
	if err := WriteFile(path, f); err != nil {
		t.Fatal(err)
	}
	assertEntries(t, dir, "level.dat")
	back, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(f, back) || back.Compression != compress.GZip {
		t.Errorf("got %s (%s)", back.Root, back.Compression)
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.dat")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func assertEntries(t *testing.T, dir string, want ...string) {
	t.Helper()
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range ents {
		got = append(got, e.Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries of %s (-want +got):\n%s", dir, diff)
	}
}

func TestWriteFileConcurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")
	errs := make(chan error, 8)
	for i := 0; i < cap(errs); i++ {
		go func() {
			errs <- WriteFile(path, sample())
		}()
	}
	for i := 0; i < cap(errs); i++ {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
	assertEntries(t, dir, "level.dat")
	back, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(sample(), back) {
		t.Errorf("got %s", back.Root)
	}
}

func TestWriteFileRenameFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, sample()); err == nil {
		t.Fatal("replacing a directory succeeded")
	}
	assertEntries(t, dir, "level.dat")
}

func TestFileRoot(t *testing.T) {
	f := &File{Root: tag.NewInt(1).WithName("x")}
	if _, err := f.Bytes(); !errors.Is(err, tag.ErrFormat) {
		t.Errorf("leaf root: got %v", err)
	}
	d, err := encode.Serialize(tag.NewInt(1).WithName("x"), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBytes(d); !errors.Is(err, tag.ErrFormat) {
		t.Errorf("leaf root: got %v", err)
	}
	if _, err := LoadBytes([]byte{0x1f, 0x8b, 0, 0}); err == nil {
		t.Error("corrupt gzip loaded")
	}
}

func TestUnnamedRoot(t *testing.T) {
	f := sample()
	f.Root.ClearName()
	f.Compression = compress.None
	if _, err := f.Bytes(); !errors.Is(err, tag.ErrFormat) {
		t.Errorf("unnamed root with names: got %v", err)
	}
	d, err := f.Bytes(encode.WriteRootName(false))
	if err != nil {
		t.Fatal(err)
	}
	back, err := LoadBytes(d, parse.ReadRootName(false))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(f, back) {
		t.Errorf("got %s", back.Root)
	}
}
