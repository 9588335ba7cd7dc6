package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

func sample(hp int32) *tag.Tag {
	return tag.Must(tag.NewCompound(
		tag.NewInt(hp).WithName("hp"),
		tag.Must(tag.NewList(tag.NewString("sword"), tag.NewString("shield"))).WithName("items"),
		tag.Must(tag.NewCompound(tag.NewDouble(1.5).WithName("x"))).WithName("pos"),
	)).WithName("Level")
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{`hp > 40`, true},
		{`items[0]`, "sword"},
		{`len(items)`, 2},
		{`pos.x`, 1.5},
		{`root.hp == hp`, true},
		{`query("items.1")`, "shield"},
		{`query("pos")`, map[string]any{"x": 1.5}},
		{`kind("hp")`, "Int"},
		{`kind("items")`, "List"},
		{`has("pos.x")`, true},
		{`has("pos.y")`, false},
		{`paths()`, []string{"hp", "items", "items.0", "items.1", "pos", "pos.x"}},
		{`missing == nil`, true},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(sample(42), tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval(sample(1), `query("nope")`); !errors.Is(err, tag.ErrQuery) {
		t.Errorf("query of missing key: got %v", err)
	}
	if _, err := Compile(`hp +`); err == nil {
		t.Error("syntax error compiled")
	}
	p, err := Compile(`hp`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(nil); !errors.Is(err, tag.ErrType) {
		t.Errorf("nil root: got %v", err)
	}
}

func TestProgramReuse(t *testing.T) {
	p, err := Compile(`query("hp")`)
	if err != nil {
		t.Fatal(err)
	}
	for _, hp := range []int32{1, 2, 3} {
		got, err := p.Run(sample(hp))
		if err != nil {
			t.Fatal(err)
		}
		if got != hp {
			t.Errorf("got %v, want %d", got, hp)
		}
	}
	if p.String() != `query("hp")` {
		t.Errorf("String = %s", p)
	}
}

func TestEvalTag(t *testing.T) {
	got, err := EvalTag(sample(42), `{"hp": hp, "n": len(items), "ok": hp > 1, "names": items}`)
	if err != nil {
		t.Fatal(err)
	}
	want := tag.Must(tag.NewCompound(
		tag.NewInt(42).WithName("hp"),
		tag.NewLong(2).WithName("n"),
		tag.Must(tag.NewList(tag.NewString("sword"), tag.NewString("shield"))).WithName("names"),
		tag.NewByte(1).WithName("ok"),
	))
	if !tag.Equal(want, got) {
		t.Errorf("got %s", got)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want *tag.Tag
	}{
		{int8(1), tag.NewByte(1)},
		{uint8(200), tag.NewByte(-56)},
		{int16(2), tag.NewShort(2)},
		{int32(3), tag.NewInt(3)},
		{int64(4), tag.NewLong(4)},
		{5, tag.NewLong(5)},
		{float32(0.5), tag.NewFloat(0.5)},
		{2.5, tag.NewDouble(2.5)},
		{false, tag.NewByte(0)},
		{"s", tag.NewString("s")},
		{[]byte{1}, tag.NewByteArray([]byte{1})},
		{[]int32{1}, tag.NewIntArray([]int32{1})},
		{[]string{}, tag.Must(tag.NewListOf(tag.String))},
		{[]any{}, tag.Must(tag.NewList())},
		{map[string]any{"b": 1, "a": "x"}, tag.Must(tag.NewCompound(
			tag.NewString("x").WithName("a"),
			tag.NewLong(1).WithName("b"),
		))},
	}
	for _, tc := range tests {
		got, err := FromAny(tc.in)
		if err != nil {
			t.Errorf("FromAny(%v): %v", tc.in, err)
			continue
		}
		if !tag.Equal(tc.want, got) {
			t.Errorf("FromAny(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
	for _, bad := range []any{nil, struct{}{}, []any{1, "x"}, uint64(1)} {
		if _, err := FromAny(bad); !errors.Is(err, tag.ErrType) {
			t.Errorf("FromAny(%v): got %v, want ErrType", bad, err)
		}
	}
}
