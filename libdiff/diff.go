package libdiff

import (
	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/signadot/nbt-format/go-nbt/tag/tpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.  It
// returns nil if the trees are equal.
func Diff(from, to *tag.Tag) []Change {
	var res []Change
	fn, fok := from.Name()
	tn, tok := to.Name()
	if fn != tn || fok != tok {
		res = append(res, Change{Op: Rename, From: from, To: to})
	}
	return diff(res, nil, from, to)
}

// Equal reports whether Diff finds no changes.
func Equal(from, to *tag.Tag) bool {
	return len(Diff(from, to)) == 0
}

func diff(res []Change, p tpath.Path, from, to *tag.Tag) []Change {
	if from.Kind() != to.Kind() {
		return append(res, Change{Op: Replace, Path: p, From: from, To: to})
	}
	switch from.Kind() {
	case tag.Compound:
		return diffCompound(res, p, from, to)
	case tag.List:
		if from.ElemKind() != to.ElemKind() {
			return append(res, Change{Op: Replace, Path: p, From: from, To: to})
		}
		return diffList(res, p, from, to)
	}
	if !tag.EqualValue(from, to) {
		res = append(res, Change{Op: Replace, Path: p, From: from, To: to})
	}
	return res
}

// runeOf assigns runes to items for the rune based diff, skipping the
// surrogate range which does not survive conversion to string.
type runeOf[K comparable] map[K]rune

func (m runeOf[K]) get(k K) rune {
	r, ok := m[k]
	if !ok {
		r = rune(len(m))
		if r >= 0xD800 {
			r += 0x800
		}
		m[k] = r
	}
	return r
}

func diffCompound(res []Change, p tpath.Path, from, to *tag.Tag) []Change {
	m := runeOf[string]{}
	fromKeys, toKeys := from.Names(), to.Names()
	fromRunes := make([]rune, len(fromKeys))
	for i, k := range fromKeys {
		fromRunes[i] = m.get(k)
	}
	toRunes := make([]rune, len(toKeys))
	for i, k := range toKeys {
		toRunes[i] = m.get(k)
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	deleted := map[string]bool{}
	inserted := map[string]bool{}
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				deleted[fromKeys[fi]] = true
				fi++
			case diffpatch.DiffInsert:
				inserted[toKeys[ti]] = true
				ti++
			case diffpatch.DiffEqual:
				fi++
				ti++
			}
		}
	}
	for _, k := range fromKeys {
		if deleted[k] && !inserted[k] {
			v, _ := from.Lookup(k)
			res = append(res, Change{Op: Delete, Path: p.Child(k), From: v})
		}
	}
	for _, k := range toKeys {
		tv, _ := to.Lookup(k)
		fv, ok := from.Lookup(k)
		switch {
		case !ok:
			res = append(res, Change{Op: Insert, Path: p.Child(k), To: tv})
		case inserted[k]:
			res = append(res, Change{Op: Move, Path: p.Child(k), From: fv, To: tv})
			res = diff(res, p.Child(k), fv, tv)
		default:
			res = diff(res, p.Child(k), fv, tv)
		}
	}
	return res
}

func diffList(res []Change, p tpath.Path, from, to *tag.Tag) []Change {
	m := runeOf[uint64]{}
	fromElems, toElems := from.Elems(), to.Elems()
	fromRunes := make([]rune, len(fromElems))
	for i, e := range fromElems {
		fromRunes[i] = m.get(e.Hash())
	}
	toRunes := make([]rune, len(toElems))
	for i, e := range toElems {
		toRunes[i] = m.get(e.Hash())
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: p.Elem(fi), From: fromElems[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Op: Insert, Path: p.Elem(ti), To: toElems[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				// equal hashes, which may still collide
				res = diff(res, p.Elem(ti), fromElems[fi], toElems[ti])
				fi++
				ti++
			}
		}
	}
	return res
}
