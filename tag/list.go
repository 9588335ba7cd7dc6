package tag

import "fmt"

// KindPolicy determines what happens to the element kind of a list when
// its last element is removed.
type KindPolicy int

const (
	// StickyKind keeps the element kind for the lifetime of the list once
	// it is known.
	StickyKind KindPolicy = iota
	// ResetKindWhenEmpty returns the element kind to Unknown whenever the
	// list becomes empty.
	ResetKindWhenEmpty
)

func (p KindPolicy) String() string {
	switch p {
	case StickyKind:
		return "sticky"
	case ResetKindWhenEmpty:
		return "reset"
	}
	return fmt.Sprintf("<policy %d>", int(p))
}

// NewList returns a list holding elems.  The element kind is taken from
// the first element, or is Unknown if there are none.
func NewList(elems ...*Tag) (*Tag, error) {
	return NewListOf(Unknown, elems...)
}

// NewListOf returns a list with element kind k holding elems.  If k is
// Unknown the element kind is taken from the first element.  Element
// names are cleared.  No element may already be held by a container, and
// no tag may appear twice.
func NewListOf(k Kind, elems ...*Tag) (*Tag, error) {
	if !ElemKindValid(k) {
		return nil, fmt.Errorf("%w: NewList: invalid element kind %d", ErrType, byte(k))
	}
	l := &Tag{kind: List, elem: k}
	if len(elems) == 0 {
		return l, nil
	}
	if l.elem == Unknown && elems[0] != nil {
		l.elem = elems[0].kind
	}
	seen := make(map[*Tag]bool, len(elems))
	for _, e := range elems {
		if err := l.checkElem("NewList", e); err != nil {
			return nil, err
		}
		if err := checkFree("NewList", e); err != nil {
			return nil, err
		}
		if seen[e] {
			return nil, fmt.Errorf("%w: NewList: the same %s tag appears twice", ErrType, e.kind)
		}
		seen[e] = true
	}
	l.elems = make([]*Tag, len(elems))
	for i, e := range elems {
		e.name = nil
		e.owner = l
		l.elems[i] = e
	}
	return l, nil
}

// ElemKind returns the element kind of a list, and Unknown for any other
// kind of tag.
func (t *Tag) ElemKind() Kind {
	if t.kind != List {
		return Unknown
	}
	return t.elem
}

// SetElemKind changes the element kind of a list.  A non-empty list only
// accepts its current element kind.
func (t *Tag) SetElemKind(k Kind) error {
	if t.kind != List {
		return kindErr("SetElemKind", List, t.kind)
	}
	if !ElemKindValid(k) {
		return fmt.Errorf("%w: SetElemKind: invalid element kind %d", ErrType, byte(k))
	}
	if len(t.elems) != 0 && k != t.elem {
		return kindErr("SetElemKind", t.elem, k)
	}
	t.elem = k
	return nil
}

func (t *Tag) KindPolicy() KindPolicy { return t.policy }

// SetKindPolicy sets what happens to the element kind of a list when it
// becomes empty.  The policy applies to later removals only: an empty list
// keeps its element kind.
func (t *Tag) SetKindPolicy(p KindPolicy) error {
	if t.kind != List {
		return kindErr("SetKindPolicy", List, t.kind)
	}
	switch p {
	case StickyKind, ResetKindWhenEmpty:
	default:
		return fmt.Errorf("%w: SetKindPolicy: unknown policy %d", ErrType, int(p))
	}
	t.policy = p
	return nil
}

// At returns the element of a list at index i.
func (t *Tag) At(i int) (*Tag, error) {
	if t.kind != List {
		return nil, kindErr("At", List, t.kind)
	}
	if i < 0 || i >= len(t.elems) {
		return nil, indexErr("At", i, len(t.elems))
	}
	return t.elems[i], nil
}

// Append adds e to the end of a list.  e must not be held by another
// container.
func (t *Tag) Append(e *Tag) error {
	if t.kind != List {
		return kindErr("Append", List, t.kind)
	}
	return t.insert("Append", len(t.elems), e)
}

// Insert places e at index i of a list, shifting later elements.  i may be
// equal to the length of the list.
func (t *Tag) Insert(i int, e *Tag) error {
	if t.kind != List {
		return kindErr("Insert", List, t.kind)
	}
	if i < 0 || i > len(t.elems) {
		return fmt.Errorf("%w: Insert: index %d out of range [0, %d]", ErrIndex, i, len(t.elems))
	}
	return t.insert("Insert", i, e)
}

func (t *Tag) insert(op string, i int, e *Tag) error {
	if err := t.checkElem(op, e); err != nil {
		return err
	}
	if err := checkFree(op, e); err != nil {
		return err
	}
	if err := t.checkCycle(op, e); err != nil {
		return err
	}
	if t.elem == Unknown {
		t.elem = e.kind
	}
	e.name = nil
	e.owner = t
	t.elems = append(t.elems, nil)
	copy(t.elems[i+1:], t.elems[i:])
	t.elems[i] = e
	return nil
}

// SetAt replaces the element of a list at index i.  The replaced element
// is detached.
func (t *Tag) SetAt(i int, e *Tag) error {
	if t.kind != List {
		return kindErr("SetAt", List, t.kind)
	}
	if i < 0 || i >= len(t.elems) {
		return indexErr("SetAt", i, len(t.elems))
	}
	if t.elems[i] == e {
		return nil
	}
	if err := t.checkElem("SetAt", e); err != nil {
		return err
	}
	if err := checkFree("SetAt", e); err != nil {
		return err
	}
	if err := t.checkCycle("SetAt", e); err != nil {
		return err
	}
	t.elems[i].owner = nil
	e.name = nil
	e.owner = t
	t.elems[i] = e
	return nil
}

// RemoveAt detaches and returns the element of a list at index i.
func (t *Tag) RemoveAt(i int) (*Tag, error) {
	if t.kind != List {
		return nil, kindErr("RemoveAt", List, t.kind)
	}
	if i < 0 || i >= len(t.elems) {
		return nil, indexErr("RemoveAt", i, len(t.elems))
	}
	res := t.elems[i]
	res.owner = nil
	copy(t.elems[i:], t.elems[i+1:])
	t.elems[len(t.elems)-1] = nil
	t.elems = t.elems[:len(t.elems)-1]
	if len(t.elems) == 0 && t.policy == ResetKindWhenEmpty {
		t.elem = Unknown
	}
	return res, nil
}

// Elems returns the children of a list or compound in order.  The
// returned slice is a copy; the children are not.
func (t *Tag) Elems() []*Tag {
	if len(t.elems) == 0 {
		return nil
	}
	return append([]*Tag(nil), t.elems...)
}

// Clear removes and detaches all children of a list or compound.
func (t *Tag) Clear() error {
	switch t.kind {
	case List, Compound:
		for _, e := range t.elems {
			e.owner = nil
		}
	}
	switch t.kind {
	case List:
		t.elems = nil
		if t.policy == ResetKindWhenEmpty {
			t.elem = Unknown
		}
		return nil
	case Compound:
		t.elems = nil
		t.keys = nil
		t.index = nil
		return nil
	}
	return fmt.Errorf("%w: Clear: %s is not a container", ErrType, t.kind)
}

func (t *Tag) checkElem(op string, e *Tag) error {
	if e == nil {
		return fmt.Errorf("%w: %s: nil tag", ErrType, op)
	}
	if e.kind == End || !e.kind.Valid() {
		return fmt.Errorf("%w: %s: cannot store a tag of kind %s", ErrType, op, e.kind)
	}
	if t.elem != Unknown && e.kind != t.elem {
		return kindErr(op, t.elem, e.kind)
	}
	return nil
}

func checkFree(op string, e *Tag) error {
	if e.owner != nil {
		return fmt.Errorf("%w: %s: %s tag is already held by a %s", ErrType, op, e.kind, e.owner.kind)
	}
	return nil
}

func (t *Tag) checkCycle(op string, e *Tag) error {
	if e.kind.IsLeaf() {
		return nil
	}
	if e.contains(t) {
		return fmt.Errorf("%w: %s: cannot insert a container into its own subtree", ErrType, op)
	}
	return nil
}

func (t *Tag) contains(x *Tag) bool {
	if t == x {
		return true
	}
	for _, c := range t.elems {
		if !c.kind.IsLeaf() && c.contains(x) {
			return true
		}
	}
	return false
}
