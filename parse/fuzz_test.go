package parse

import (
	"errors"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

func FuzzParse(f *testing.F) {
	f.Add(helloWorld)
	f.Add(w(tag.List, "", tag.Int, int32(-1)))
	f.Add(w(tag.ByteArray, "x", int32(1<<30)))
	f.Add(w(tag.Compound, "", tag.List, "l", tag.Compound, int32(1), tag.End, tag.End))
	f.Fuzz(func(t *testing.T, d []byte) {
		root, err := Parse(d, MaxDepth(64))
		if err != nil {
			if !errors.Is(err, tag.ErrFormat) {
				t.Fatalf("non-format error: %v", err)
			}
			return
		}
		if root.Kind() == tag.End {
			t.Fatal("End root")
		}
	})
}
