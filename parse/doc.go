// Package parse decodes the NBT binary format into a tree of *tag.Tag.
//
// The input is read in one sequential pass.  All multi-byte numbers are
// big-endian.  Decoding stops at the first malformed byte with an *Error
// carrying the offset; no partial tree is returned.
//
// Lengths in the input are never trusted for allocation: when the size of
// the input is known, a length which exceeds the remaining bytes fails
// before anything is allocated, and otherwise large payloads are read in
// bounded chunks.
package parse
