// Package libdiff computes structural differences between NBT trees.
//
// # Usage
//
//	for _, c := range libdiff.Diff(before, after) {
//	    fmt.Println(c)
//	}
//
// Compound children are matched by name and list elements by value, using
// a longest common subsequence over the names or element hashes, so an
// insertion in the middle of a list is reported as one insertion.
//
// Paths of deleted list elements are indices in the old list; all other
// paths are in the new tree.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - data model, Hash
//   - github.com/signadot/nbt-format/go-nbt/tag/tpath - paths
package libdiff
