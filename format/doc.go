// Package format carries NBT trees through JSON, YAML and CBOR.
//
// Every format holds the interchange form tag.Doc, so kinds, names, list
// element kinds and compound order all survive a round trip:
//
//	d, err := format.Marshal(root, format.YAMLFormat)
//	back, err := format.Unmarshal(d, format.YAMLFormat)
//
// JSON cannot represent NaN or infinite floats; use YAML or CBOR for trees
// holding them.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - data model and tag.Doc
package format
