package compress

import (
	"bytes"
	"errors"
	"testing"
)

func payload() []byte {
	return bytes.Repeat([]byte("\x0a\x00\x00\x08\x00\x04name\x00\x09Bananrama\x00"), 100)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range All() {
		t.Run(c.String(), func(t *testing.T) {
			d, err := Compress(payload(), c)
			if err != nil {
				t.Fatal(err)
			}
			if got := Detect(d); got != c {
				t.Errorf("Detect = %s, want %s", got, c)
			}
			back, err := Decompress(d, c)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, payload()) {
				t.Error("round trip mismatch")
			}
			auto, got, err := DecompressAuto(d)
			if err != nil || got != c || !bytes.Equal(auto, payload()) {
				t.Errorf("DecompressAuto: %s, %v", got, err)
			}
		})
	}
}

func TestStream(t *testing.T) {
	for _, c := range All() {
		buf := &bytes.Buffer{}
		w, err := NewWriter(buf, c)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			if _, err := w.Write(payload()); err != nil {
				t.Fatal(err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		r, err := NewReader(buf, c)
		if err != nil {
			t.Fatal(err)
		}
		got := &bytes.Buffer{}
		if _, err := got.ReadFrom(r); err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		r.Close()
		if got.Len() != 3*len(payload()) {
			t.Errorf("%s: read %d bytes", c, got.Len())
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   []byte
		want Compression
	}{
		{nil, None},
		{[]byte{0x0a, 0x00, 0x00, 0x00}, None},
		{[]byte{0x1f, 0x8b, 0x08}, GZip},
		{[]byte{0x78, 0x9c}, ZLib},
		{[]byte{0x78, 0x01}, ZLib},
		{[]byte{0x78, 0x9d}, None},
		{[]byte{0x04, 0x22, 0x4d, 0x18}, LZ4},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd}, Zstd},
	}
	for _, tc := range tests {
		if got := Detect(tc.in); got != tc.want {
			t.Errorf("Detect(% x) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(c.String())
		if err != nil || got != c {
			t.Errorf("Parse(%s) = %s, %v", c, got, err)
		}
		d, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var u Compression
		if err := u.UnmarshalText(d); err != nil || u != c {
			t.Errorf("UnmarshalText(%s) = %s, %v", d, u, err)
		}
	}
	if _, err := Parse("bzip2"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	if _, err := NewWriter(&bytes.Buffer{}, Compression(9)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}
