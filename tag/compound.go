package tag

import "fmt"

// KeyVal is a named child of a compound.
type KeyVal struct {
	Key string
	Val *Tag
}

// NewCompound returns a compound holding children under their own names.
// Every child must have a name.
func NewCompound(children ...*Tag) (*Tag, error) {
	kvs := make([]KeyVal, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: NewCompound: nil tag", ErrType)
		}
		name, ok := c.Name()
		if !ok {
			return nil, fmt.Errorf("%w: NewCompound: child %d (%s) has no name", ErrKey, i, c.kind)
		}
		kvs[i] = KeyVal{Key: name, Val: c}
	}
	return FromKeyVals(kvs)
}

// FromKeyVals returns a compound holding kvs in order.  A repeated key
// replaces the earlier value in the earlier position.  No value may
// already be held by a container, and no tag may appear twice.
func FromKeyVals(kvs []KeyVal) (*Tag, error) {
	res := &Tag{kind: Compound}
	seen := make(map[*Tag]bool, len(kvs))
	for i := range kvs {
		v := kvs[i].Val
		if err := res.checkChild("FromKeyVals", v); err != nil {
			return nil, err
		}
		if err := checkFree("FromKeyVals", v); err != nil {
			return nil, err
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: FromKeyVals: the same %s tag appears under %q and an earlier key", ErrType, v.kind, kvs[i].Key)
		}
		seen[v] = true
	}
	for i := range kvs {
		res.set(kvs[i].Key, kvs[i].Val)
	}
	return res, nil
}

// Set stores v under name in a compound.  If name is already present its
// value is replaced in place and detached, otherwise v is added at the
// end.  The name of v is set to name.  v must not be held by another
// container, nor by t under a different name.
func (t *Tag) Set(name string, v *Tag) error {
	if t.kind != Compound {
		return kindErr("Set", Compound, t.kind)
	}
	if err := t.checkChild("Set", v); err != nil {
		return err
	}
	if i, ok := t.index[name]; ok && t.elems[i] == v {
		v.SetName(name)
		return nil
	}
	if err := checkFree("Set", v); err != nil {
		return err
	}
	if err := t.checkCycle("Set", v); err != nil {
		return err
	}
	t.set(name, v)
	return nil
}

// Add stores v in a compound under its own name.
func (t *Tag) Add(v *Tag) error {
	if v == nil {
		return fmt.Errorf("%w: Add: nil tag", ErrType)
	}
	name, ok := v.Name()
	if !ok {
		return fmt.Errorf("%w: Add: %s tag has no name", ErrKey, v.kind)
	}
	return t.Set(name, v)
}

func (t *Tag) set(name string, v *Tag) {
	v.SetName(name)
	v.owner = t
	if i, ok := t.index[name]; ok {
		t.elems[i].owner = nil
		t.elems[i] = v
		return
	}
	if t.index == nil {
		t.index = map[string]int{}
	}
	t.index[name] = len(t.elems)
	t.keys = append(t.keys, name)
	t.elems = append(t.elems, v)
}

// Get returns the child of a compound named name.
func (t *Tag) Get(name string) (*Tag, error) {
	if t.kind != Compound {
		return nil, kindErr("Get", Compound, t.kind)
	}
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", ErrKey, name)
	}
	return t.elems[i], nil
}

// Lookup is like Get but reports absence with a boolean.  It returns false
// for any tag which is not a compound.
func (t *Tag) Lookup(name string) (*Tag, bool) {
	if t.kind != Compound {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.elems[i], true
}

func (t *Tag) Contains(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Remove detaches and returns the child of a compound named name.  The
// relative order of the remaining children is kept.
func (t *Tag) Remove(name string) (*Tag, error) {
	if t.kind != Compound {
		return nil, kindErr("Remove", Compound, t.kind)
	}
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", ErrKey, name)
	}
	res := t.elems[i]
	res.owner = nil
	copy(t.elems[i:], t.elems[i+1:])
	t.elems[len(t.elems)-1] = nil
	t.elems = t.elems[:len(t.elems)-1]
	copy(t.keys[i:], t.keys[i+1:])
	t.keys = t.keys[:len(t.keys)-1]
	delete(t.index, name)
	for j := i; j < len(t.keys); j++ {
		t.index[t.keys[j]] = j
	}
	return res, nil
}

// Names returns the keys of a compound in order.
func (t *Tag) Names() []string {
	if t.kind != Compound || len(t.keys) == 0 {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// KeyVals returns the children of a compound with their keys, in order.
func (t *Tag) KeyVals() []KeyVal {
	if t.kind != Compound {
		return nil
	}
	res := make([]KeyVal, len(t.keys))
	for i, k := range t.keys {
		res[i] = KeyVal{Key: k, Val: t.elems[i]}
	}
	return res
}

func (t *Tag) checkChild(op string, v *Tag) error {
	if v == nil {
		return fmt.Errorf("%w: %s: nil tag", ErrType, op)
	}
	if v.kind == End || !v.kind.Valid() {
		return fmt.Errorf("%w: %s: cannot store a tag of kind %s", ErrType, op, v.kind)
	}
	return nil
}
