package libdiff

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/signadot/nbt-format/go-nbt/tag/tpath"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
	Move
	Rename
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	case Move:
		return ">"
	case Rename:
		return "@"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

// Change is a single difference.  From is nil for Insert and To is nil for
// Delete.  A Move reports a compound child whose position changed; its
// value may differ too, which is then reported by further changes below
// the same path.
type Change struct {
	Op   Op
	Path tpath.Path
	From *tag.Tag
	To   *tag.Tag
}

func (c Change) String() string {
	p := c.Path.String()
	if p == "" {
		p = "."
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, p, c.To)
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, p, c.From)
	case Rename:
		from, _ := c.From.Name()
		to, _ := c.To.Name()
		return fmt.Sprintf("%s %s: %q -> %q", c.Op, p, from, to)
	case Move:
		return fmt.Sprintf("%s %s", c.Op, p)
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op, p, c.From, c.To)
}
