package view

import (
	"github.com/fatih/color"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

type ColorAttr int

const (
	KindColor ColorAttr = iota
	NameColor
	ValueColor
	SepColor
)

type Colorable struct {
	Kind tag.Kind
	Attr ColorAttr
}

// Colors maps each kind and part of a rendered tag to a colouring
// function.  Parts without an entry use Default.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string) string{},
	}
	for _, k := range tag.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: KindColor}] = sprint(color.RGB(74, 92, 138))
		colors.Map[Colorable{Kind: k, Attr: NameColor}] = sprint(color.RGB(196, 96, 16))
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = sprint(color.RGB(255, 0, 196))
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range []tag.Kind{tag.Byte, tag.Short, tag.Int, tag.Long, tag.Float, tag.Double} {
		able.Kind = k
		colors.Map[able] = sprint(color.RGB(128, 216, 236))
	}
	able.Kind = tag.String
	colors.Map[able] = sprint(color.RGB(8, 196, 16))
	able.Kind = tag.ByteArray
	colors.Map[able] = sprint(color.RGB(198, 198, 46))
	able.Kind = tag.IntArray
	colors.Map[able] = sprint(color.RGB(198, 198, 46))
	able.Kind = tag.List
	colors.Map[able] = sprint(color.RGB(96, 96, 96))
	able.Kind = tag.Compound
	colors.Map[able] = sprint(color.RGB(96, 96, 96))
	return colors
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(k tag.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k tag.Kind, a ColorAttr) func(string) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
