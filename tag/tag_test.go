package tag

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccessors(t *testing.T) {
	b := NewByte(-3)
	if v, err := b.AsByte(); err != nil || v != -3 {
		t.Errorf("AsByte = %d, %v", v, err)
	}
	if _, err := b.AsInt(); !errors.Is(err, ErrType) {
		t.Errorf("AsInt on Byte: got %v, want ErrType", err)
	}
	var ke *KindError
	if _, err := b.AsString(); !errors.As(err, &ke) || ke.Want != String || ke.Got != Byte {
		t.Errorf("AsString on Byte: got %v", err)
	}
	if v, err := NewShort(300).Int64(); err != nil || v != 300 {
		t.Errorf("Int64 = %d, %v", v, err)
	}
	if v, err := NewFloat(1.5).Float64(); err != nil || v != 1.5 {
		t.Errorf("Float64 = %g, %v", v, err)
	}
	if err := NewInt(1).SetLong(2); !errors.Is(err, ErrType) {
		t.Errorf("SetLong on Int: got %v", err)
	}
	s := NewString("x")
	if err := s.SetString("y"); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.AsString(); v != "y" {
		t.Errorf("got %q", v)
	}
}

func TestNames(t *testing.T) {
	x := NewInt(1)
	if _, ok := x.Name(); ok {
		t.Error("new tag has a name")
	}
	x.SetName("")
	if name, ok := x.Name(); !ok || name != "" {
		t.Errorf("Name = %q, %t", name, ok)
	}
	x.ClearName()
	if x.HasName() {
		t.Error("ClearName kept the name")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		t   *Tag
		len int
	}{
		{NewInt(3), 0},
		{NewByteArray([]byte{1, 2, 3}), 3},
		{NewIntArray([]int32{1}), 1},
		{Must(NewList(NewInt(1), NewInt(2))), 2},
		{Must(NewCompound()), 0},
	}
	for _, tc := range tests {
		if got := tc.t.Len(); got != tc.len {
			t.Errorf("%s: Len = %d, want %d", tc.t, got, tc.len)
		}
	}
}

func TestClone(t *testing.T) {
	orig := Must(NewCompound(
		NewByteArray([]byte{1, 2}).WithName("ba"),
		Must(NewList(NewString("a"))).WithName("l"),
	)).WithName("root")
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	ba, _ := c.Get("ba")
	b, _ := ba.AsBytes()
	b[0] = 9
	l, _ := c.Get("l")
	if err := l.Append(NewString("b")); err != nil {
		t.Fatal(err)
	}
	if Equal(orig, c) {
		t.Error("clone shares storage with the original")
	}
	ob, _ := orig.Get("ba")
	if v, _ := ob.AsBytes(); v[0] != 1 {
		t.Error("original bytes changed")
	}
}

func TestVisit(t *testing.T) {
	root := Must(NewCompound(
		NewInt(1).WithName("a"),
		Must(NewList(NewInt(2), NewInt(3))).WithName("b"),
	))
	var pre, post []Kind
	err := root.Visit(func(x *Tag, isPost bool) (bool, error) {
		if isPost {
			post = append(post, x.Kind())
		} else {
			pre = append(pre, x.Kind())
		}
		return x.Kind() != List, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Kind{Compound, Int, List}, pre); diff != "" {
		t.Errorf("pre mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Kind{Int, List, Compound}, post); diff != "" {
		t.Errorf("post mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		t    *Tag
		want string
	}{
		{NewInt(42).WithName("hp"), `Int("hp"): 42`},
		{NewString("x"), `String: "x"`},
		{NewDouble(math.Inf(1)), `Double: +Inf`},
		{Must(NewListOf(String)), `List: 0 entries of String`},
		{Must(NewCompound(NewInt(1).WithName("a"))).WithName(""), `Compound(""): 1 entries`},
	}
	for _, tc := range tests {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("got %s, want %s", got, tc.want)
		}
	}
}

func TestKinds(t *testing.T) {
	for i, k := range Kinds() {
		if int(k.ID()) != i {
			t.Errorf("kind %s has id %d, want %d", k, k.ID(), i)
		}
		got, err := KindFromID(byte(i))
		if err != nil || got != k {
			t.Errorf("KindFromID(%d) = %s, %v", i, got, err)
		}
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("text round trip of %s gave %s, %v", k, back, err)
		}
	}
	for _, id := range []byte{12, 99, 0xFF} {
		if _, err := KindFromID(id); !errors.Is(err, ErrFormat) {
			t.Errorf("KindFromID(%d): got %v, want ErrFormat", id, err)
		}
	}
}
