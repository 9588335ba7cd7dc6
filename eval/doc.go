// Package eval evaluates expr-lang expressions against NBT trees.
//
// The children of a compound root are variables of the expression, with
// the plain Go values of tag.ToAny.  A root of another kind is available
// as the variable root, which is always defined.  Paths are reached with
// functions:
//
//	query(path)  the value at path, relative to the root
//	kind(path)   the kind name of the tag at path
//	has(path)    whether path resolves
//	paths()      every path below the root
//	getenv(name) an environment variable
//
// For example
//
//	hp > 20 && query("items.0") == "sword"
//
// # Related Packages
//
//   - github.com/expr-lang/expr - the expression language
//   - github.com/signadot/nbt-format/go-nbt/tag - paths and queries
package eval
