// Package view renders NBT trees for people.
//
// The layout is the customary one for NBT dumps:
//
//	TAG_Compound(""): 2 entries
//	{
//		TAG_Int("hp"): 42
//		TAG_List("items"): 2 entries of TAG_String
//		{
//			TAG_String: sword
//			TAG_String: shield
//		}
//	}
package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

type state struct {
	indent string
	arrays int
	colors *Colors
}

type Option func(*state)

// Indent sets the string added per nesting level.  The default is a tab.
func Indent(s string) Option {
	return func(st *state) { st.indent = s }
}

// Arrays shows up to n elements of byte and int arrays instead of only
// their length.
func Arrays(n int) Option {
	return func(st *state) { st.arrays = n }
}

func WithColors(c *Colors) Option {
	return func(st *state) { st.colors = c }
}

// KindName returns the conventional name of k, such as TAG_Byte_Array.
func KindName(k tag.Kind) string {
	switch k {
	case tag.ByteArray:
		return "TAG_Byte_Array"
	case tag.IntArray:
		return "TAG_Int_Array"
	}
	return "TAG_" + k.String()
}

// String renders t.
func String(t *tag.Tag, opts ...Option) string {
	b := &strings.Builder{}
	_ = Render(b, t, opts...)
	return b.String()
}

// Render writes the rendering of t to w, followed by a newline.
func Render(w io.Writer, t *tag.Tag, opts ...Option) error {
	st := &state{indent: "\t"}
	for _, opt := range opts {
		opt(st)
	}
	if st.colors == nil {
		st.colors = &Colors{Default: colorDefault}
	}
	bw := bufio.NewWriter(w)
	st.render(bw, t, 0)
	return bw.Flush()
}

func (st *state) render(w *bufio.Writer, t *tag.Tag, depth int) {
	k := t.Kind()
	pad := strings.Repeat(st.indent, depth)
	w.WriteString(pad)
	w.WriteString(st.colors.Color(k, KindColor, KindName(k)))
	if name, ok := t.Name(); ok {
		w.WriteString("(")
		w.WriteString(st.colors.Color(k, NameColor, strconv.Quote(name)))
		w.WriteString(")")
	}
	if k == tag.End {
		w.WriteString("\n")
		return
	}
	w.WriteString(st.colors.Color(k, SepColor, ":"))
	w.WriteString(" ")
	w.WriteString(st.colors.Color(k, ValueColor, st.value(t)))
	w.WriteString("\n")
	if k != tag.List && k != tag.Compound {
		return
	}
	w.WriteString(pad)
	w.WriteString(st.colors.Color(k, SepColor, "{"))
	w.WriteString("\n")
	for _, e := range t.Elems() {
		st.render(w, e, depth+1)
	}
	w.WriteString(pad)
	w.WriteString(st.colors.Color(k, SepColor, "}"))
	w.WriteString("\n")
}

func (st *state) value(t *tag.Tag) string {
	switch t.Kind() {
	case tag.Byte, tag.Short, tag.Int, tag.Long:
		v, _ := t.Int64()
		return strconv.FormatInt(v, 10)
	case tag.Float:
		v, _ := t.AsFloat()
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case tag.Double:
		v, _ := t.AsDouble()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case tag.String:
		v, _ := t.AsString()
		return v
	case tag.ByteArray:
		v, _ := t.AsBytes()
		return st.array(len(v), "bytes", func(i int) int64 { return int64(int8(v[i])) })
	case tag.IntArray:
		v, _ := t.AsInts()
		return st.array(len(v), "ints", func(i int) int64 { return int64(v[i]) })
	case tag.List:
		return fmt.Sprintf("%d entries of %s", t.Len(), KindName(t.ElemKind()))
	case tag.Compound:
		return fmt.Sprintf("%d entries", t.Len())
	}
	return ""
}

func (st *state) array(n int, unit string, at func(int) int64) string {
	if st.arrays <= 0 {
		return fmt.Sprintf("[%d %s]", n, unit)
	}
	b := &strings.Builder{}
	b.WriteString("[")
	for i := range min(n, st.arrays) {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.FormatInt(at(i), 10))
	}
	if n > st.arrays {
		fmt.Fprintf(b, " ... (%d %s)", n, unit)
	}
	b.WriteString("]")
	return b.String()
}
