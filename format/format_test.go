package format

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

func sample() *tag.Tag {
	return tag.Must(tag.NewCompound(
		tag.NewByte(-5).WithName("b"),
		tag.NewShort(1000).WithName("s"),
		tag.NewInt(-70000).WithName("i"),
		tag.NewLong(math.MaxInt64).WithName("l"),
		tag.NewFloat(0.1).WithName("f"),
		tag.NewDouble(-2.5e300).WithName("d"),
		tag.NewByteArray([]byte{0, 128, 255}).WithName("ba"),
		tag.NewString("multi\nline: 'x'").WithName("str"),
		tag.NewIntArray([]int32{math.MinInt32, 1}).WithName("ia"),
		tag.Must(tag.NewList(tag.NewString("a"), tag.NewString("b"))).WithName("list"),
		tag.Must(tag.NewListOf(tag.Long)).WithName("typed"),
		tag.Must(tag.NewList()).WithName("untyped"),
		tag.Must(tag.NewCompound(tag.NewString("").WithName(""))).WithName("nested"),
	)).WithName("root")
}

func TestRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			root := sample()
			d, err := Marshal(root, f)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Unmarshal(d, f)
			if err != nil {
				t.Fatalf("%v\n%s", err, d)
			}
			if !tag.Equal(root, back) {
				t.Errorf("round trip mismatch:\n%s", d)
			}
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for _, f := range AllFormats() {
		if _, err := Unmarshal([]byte("{{{"), f); !errors.Is(err, tag.ErrFormat) {
			t.Errorf("%s: got %v, want ErrFormat", f, err)
		}
	}
	if _, err := Unmarshal([]byte(`{"kind": "Byte", "int": 1000}`), JSONFormat); !errors.Is(err, tag.ErrFormat) {
		t.Errorf("overflow: got %v", err)
	}
	if _, err := Marshal(tag.NewDouble(math.NaN()), JSONFormat); err == nil {
		t.Error("NaN marshalled to JSON")
	}
	if _, err := Marshal(tag.NewInt(1), Format(9)); !errors.Is(err, ErrBadFormat) {
		t.Errorf("bad format: got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"c", CBORFormat},
		{"cbor", CBORFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %s, %v", tc.in, got, err)
		}
		var u Format
		if err := u.UnmarshalText([]byte(tc.want.String())); err != nil || u != tc.want {
			t.Errorf("UnmarshalText(%s) = %s, %v", tc.want, u, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		got, ok := FromSuffix(f.Suffix())
		if !ok || got != f {
			t.Errorf("FromSuffix(%s) = %s, %t", f.Suffix(), got, ok)
		}
	}
	if f, ok := FromSuffix(".yml"); !ok || f != YAMLFormat {
		t.Errorf(".yml: %s, %t", f, ok)
	}
	if _, ok := FromSuffix(".nbt"); ok {
		t.Error(".nbt is not an interchange format")
	}
}
