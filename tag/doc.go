// Package tag provides the data model for NBT (Named Binary Tag) documents.
//
// # Overview
//
// An NBT document is a tree of tags.  Every tag has a Kind, taken from a
// closed set of 12 kinds whose numeric values are the identifiers used on
// the wire:
//
//	End(0) Byte(1) Short(2) Int(3) Long(4) Float(5) Double(6)
//	ByteArray(7) String(8) List(9) Compound(10) IntArray(11)
//
// A tag may carry a name.  The children of a compound and the root of a
// document are named; the elements of a list are not.
//
// Tag works as a tagged union: the payload accessors (AsInt, AsString, ...)
// fail with a *KindError when used on a tag of another kind, and Kind never
// fails.
//
// # Containers
//
// Lists are homogeneous.  The element kind of a list is fixed by the first
// element inserted, or explicitly with SetElemKind while the list is
// empty.  An empty list which was never typed has element kind Unknown and
// cannot be written.  Whether emptying a list forgets its element kind is
// decided by its KindPolicy.
//
// Compounds map unique names to tags and keep insertion order.  Setting an
// existing name replaces the value in place.
//
// Containers own their children; there are no parent pointers.  Inserting
// a container into its own subtree is rejected.
//
// # Creating Tags
//
//	hp := tag.NewInt(42)
//	items := tag.Must(tag.NewList(
//	    tag.NewString("sword"),
//	    tag.NewString("shield"),
//	))
//	root := tag.Must(tag.NewCompound(
//	    hp.WithName("hp"),
//	    items.WithName("items"),
//	)).WithName("")
//
// # Querying
//
// Query resolves dotted paths:
//
//	hp, err := tag.Query(root, "hp")
//	shield, err := tag.QueryKind(root, "items.1", tag.String)
//
// # Errors
//
// All errors wrap one of ErrFormat, ErrType, ErrKey, ErrIndex or ErrQuery
// and may be tested with errors.Is.
//
// # Concurrency
//
// A Tag has no internal locking.  Callers must not mutate a tree while
// another goroutine reads or mutates it.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/parse - decode bytes to a tree
//   - github.com/signadot/nbt-format/go-nbt/encode - encode a tree to bytes
//   - github.com/signadot/nbt-format/go-nbt/tag/tpath - path syntax
package tag
