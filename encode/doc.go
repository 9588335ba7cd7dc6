// Package encode writes a tree of *tag.Tag in the NBT binary format.
//
// # Usage
//
//	data, err := encode.Serialize(root, true)
//
//	// stream, with Java modified UTF-8 strings
//	err := encode.Encode(root, w, encode.ModifiedUTF8())
//
// Encoding never mutates the tree.  A tree is validated completely before
// any byte reaches an io.Writer.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - data model
//   - github.com/signadot/nbt-format/go-nbt/parse - the inverse
package encode
