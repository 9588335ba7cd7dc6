package tag

import (
	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag/tpath"
)

type queryOpts struct {
	skipRoot bool
}

type QueryOption func(*queryOpts)

// SkipRootName makes the first path segment address a child of the root
// instead of the root itself.
func SkipRootName() QueryOption {
	return func(o *queryOpts) { o.skipRoot = true }
}

// Query resolves path against the tree rooted at root.
//
// Unless SkipRootName is given, the first segment must equal the name of
// root.  A root without a name, or with the empty name, cannot be
// addressed by name; for such a root the first segment addresses one of
// its children, as if SkipRootName were given.
//
// Each following segment selects a compound child by name or a list
// element by index.  Failures are reported as *QueryError.
func Query(root *Tag, path string, opts ...QueryOption) (*Tag, error) {
	p, err := tpath.Parse(path)
	if err != nil {
		return nil, &QueryError{Path: path, Segment: -1, Reason: err.Error()}
	}
	return QueryPath(root, p, opts...)
}

// QueryKind is like Query but also requires the result to be of kind k,
// failing with a *KindError otherwise.
func QueryKind(root *Tag, path string, k Kind, opts ...QueryOption) (*Tag, error) {
	res, err := Query(root, path, opts...)
	if err != nil {
		return nil, err
	}
	if res.kind != k {
		return nil, kindErr("Query "+path, k, res.kind)
	}
	return res, nil
}

// Query resolves path against t.  See the function Query.
func (t *Tag) Query(path string, opts ...QueryOption) (*Tag, error) {
	return Query(t, path, opts...)
}

// QueryPath resolves an already parsed path.
func QueryPath(root *Tag, p tpath.Path, opts ...QueryOption) (*Tag, error) {
	o := &queryOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if root == nil {
		return nil, &QueryError{Path: p.String(), Segment: -1, Reason: "nil root"}
	}
	name, _ := root.Name()
	segs := p
	if !o.skipRoot && name != "" && len(segs) > 0 {
		if segs[0].Text != name {
			return nil, &QueryError{Path: p.String(), Segment: 0, Reason: "root name mismatch: have " + quoteName(name)}
		}
		segs = segs[1:]
	}
	off := len(p) - len(segs)
	res := root
	for i, seg := range segs {
		next, reason := step(res, seg)
		if reason != "" {
			return nil, &QueryError{Path: p.String(), Segment: off + i, Reason: reason}
		}
		if debug.Query() {
			debug.Logf("query %s: segment %d %s -> %s\n", p, off+i, seg, next.kind)
		}
		res = next
	}
	return res, nil
}

func step(t *Tag, seg tpath.Segment) (*Tag, string) {
	switch t.kind {
	case Compound:
		child, ok := t.Lookup(seg.Text)
		if !ok {
			return nil, "unknown key " + quoteName(seg.Text)
		}
		return child, ""
	case List:
		i, ok := seg.Index()
		if !ok {
			return nil, quoteName(seg.Text) + " is not an index"
		}
		if i >= len(t.elems) {
			return nil, "index " + seg.Text + " out of range"
		}
		return t.elems[i], ""
	}
	return nil, "cannot descend into a leaf (" + t.kind.String() + ")"
}

func quoteName(s string) string {
	return tpath.Quote(s)
}

// Walk calls f for every tag in the tree rooted at root, in document
// order, with its path relative to root.  The root is visited with the nil
// path.  Returning false from f skips the children of that tag.
func Walk(root *Tag, f func(p tpath.Path, t *Tag) bool) {
	walk(root, nil, f)
}

func walk(t *Tag, p tpath.Path, f func(tpath.Path, *Tag) bool) {
	if !f(p, t) {
		return
	}
	switch t.kind {
	case List:
		for i, e := range t.elems {
			walk(e, p.Elem(i), f)
		}
	case Compound:
		for i, e := range t.elems {
			walk(e, p.Child(t.keys[i]), f)
		}
	}
}

// Paths returns the paths of all tags below root, in document order.
// The paths resolve against root with SkipRootName.
func Paths(root *Tag) []tpath.Path {
	var res []tpath.Path
	Walk(root, func(p tpath.Path, _ *Tag) bool {
		if p != nil {
			res = append(res, p)
		}
		return true
	})
	return res
}
