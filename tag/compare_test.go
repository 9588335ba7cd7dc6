package tag

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Tag
		expected int
	}{
		{"Byte < Short", NewByte(9), NewShort(1), -1},
		{"Int < Int", NewInt(1), NewInt(2), -1},
		{"Int == Int", NewInt(2), NewInt(2), 0},
		{"Double > Double", NewDouble(2), NewDouble(-1), 1},
		{"String < String", NewString("a"), NewString("b"), -1},
		{"Bytes", NewByteArray([]byte{1}), NewByteArray([]byte{1, 0}), -1},
		{"Ints", NewIntArray([]int32{2}), NewIntArray([]int32{1, 5}), 1},
		{"Short List < Long List", Must(NewList(NewInt(1))), Must(NewList(NewInt(1), NewInt(0))), -1},
		{"List Elem Kind", Must(NewListOf(Byte)), Must(NewListOf(Int)), -1},
		{"Compound Keys",
			Must(NewCompound(NewInt(1).WithName("a"))),
			Must(NewCompound(NewInt(0).WithName("b"))),
			-1},
		{"Compound Values",
			Must(NewCompound(NewInt(2).WithName("a"))),
			Must(NewCompound(NewInt(1).WithName("a"))),
			1},
		{"Names ignored", NewInt(1).WithName("z"), NewInt(1).WithName("a"), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.expected {
				t.Errorf("Compare = %d, want %d", got, tc.expected)
			}
			if got := Compare(tc.b, tc.a); got != -tc.expected {
				t.Errorf("reverse Compare = %d, want %d", got, -tc.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name       string
		a, b       *Tag
		equal      bool
		equalValue bool
	}{
		{"same", NewInt(1), NewInt(1), true, true},
		{"kind", NewInt(1), NewLong(1), false, false},
		{"name", NewInt(1).WithName("a"), NewInt(1), false, true},
		{"empty name vs none", NewInt(1).WithName(""), NewInt(1), false, true},
		{"nan", NewDouble(nan), NewDouble(nan), true, true},
		{"list kind", Must(NewListOf(Int)), Must(NewListOf(Long)), false, false},
		{"compound order",
			Must(NewCompound(NewInt(1).WithName("a"), NewInt(2).WithName("b"))),
			Must(NewCompound(NewInt(2).WithName("b"), NewInt(1).WithName("a"))),
			false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.equal {
				t.Errorf("Equal = %t", got)
			}
			if got := EqualValue(tc.a, tc.b); got != tc.equalValue {
				t.Errorf("EqualValue = %t", got)
			}
			if tc.equalValue && tc.a.Hash() != tc.b.Hash() {
				t.Error("equal values hash differently")
			}
		})
	}
}

func TestHashDiffers(t *testing.T) {
	tags := []*Tag{
		NewInt(1),
		NewLong(1),
		NewString("1"),
		Must(NewList(NewInt(1))),
		Must(NewListOf(Int)),
		Must(NewCompound(NewInt(1).WithName("a"))),
		Must(NewCompound(NewInt(1).WithName("b"))),
	}
	seen := map[uint64]int{}
	for i, x := range tags {
		h := x.Hash()
		if j, ok := seen[h]; ok {
			t.Errorf("%s and %s hash alike", tags[j], x)
		}
		seen[h] = i
	}
}
