package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

func sample() *tag.Tag {
	return tag.Must(tag.NewCompound(
		tag.NewInt(42).WithName("hp"),
		tag.Must(tag.NewList(tag.NewString("sword"), tag.NewString("shield"))).WithName("items"),
	)).WithName("")
}

func TestString(t *testing.T) {
	want := strings.Join([]string{
		`TAG_Compound(""): 2 entries`,
		`{`,
		`	TAG_Int("hp"): 42`,
		`	TAG_List("items"): 2 entries of TAG_String`,
		`	{`,
		`		TAG_String: sword`,
		`		TAG_String: shield`,
		`	}`,
		`}`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, String(sample())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLeaves(t *testing.T) {
	tests := []struct {
		t    *tag.Tag
		opts []Option
		want string
	}{
		{tag.NewByte(-1), nil, "TAG_Byte: -1\n"},
		{tag.NewFloat(0.5).WithName("f"), nil, "TAG_Float(\"f\"): 0.5\n"},
		{tag.NewDouble(1e100), nil, "TAG_Double: 1e+100\n"},
		{tag.NewByteArray([]byte{1, 255, 3}), nil, "TAG_Byte_Array: [3 bytes]\n"},
		{tag.NewByteArray([]byte{1, 255, 3}), []Option{Arrays(2)}, "TAG_Byte_Array: [1 -1 ... (3 bytes)]\n"},
		{tag.NewIntArray([]int32{7, 8}), []Option{Arrays(5)}, "TAG_Int_Array: [7 8]\n"},
		{tag.Must(tag.NewListOf(tag.Long)), nil, "TAG_List: 0 entries of TAG_Long\n{\n}\n"},
		{tag.NewString("x").WithName("a\"b"), nil, "TAG_String(\"a\\\"b\"): x\n"},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, String(tc.t, tc.opts...)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tc.t, diff)
		}
	}
}

func TestIndent(t *testing.T) {
	root := tag.Must(tag.NewCompound(tag.NewByte(1).WithName("b")))
	got := String(root, Indent("  "))
	want := "TAG_Compound: 1 entries\n{\n  TAG_Byte(\"b\"): 1\n}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: func(s string) string { return s },
		Map: map[Colorable]func(string) string{
			{Kind: tag.Int, Attr: ValueColor}: func(s string) string { return "<" + s + ">" },
		},
	}
	got := String(tag.NewInt(3).WithName("n"), WithColors(c))
	if got != "TAG_Int(\"n\"): <3>\n" {
		t.Errorf("got %q", got)
	}
	if NewColors().Get(tag.String, ValueColor) == nil {
		t.Error("no string value colour")
	}
}

func TestKindName(t *testing.T) {
	got := []string{}
	for _, k := range tag.Kinds() {
		got = append(got, KindName(k))
	}
	want := []string{
		"TAG_End", "TAG_Byte", "TAG_Short", "TAG_Int", "TAG_Long", "TAG_Float",
		"TAG_Double", "TAG_Byte_Array", "TAG_String", "TAG_List", "TAG_Compound", "TAG_Int_Array",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
