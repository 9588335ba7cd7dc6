// Package tpath parses the dotted paths used to address tags inside a
// tree.
//
// A path is a sequence of segments separated by '.'.  Whether a segment
// selects a compound child by name or a list element by index is decided
// when the path is resolved against a tree, by the kind of the tag
// reached so far:
//
//	Level.Inventory.0.id    // compound, compound, list index 0, compound
//	Level.'a.b'.c           // quoted segments may contain '.'
//	Data.'0'                // a quoted segment is never an index
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - resolves paths with Query
package tpath
