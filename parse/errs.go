package parse

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

var (
	ErrTruncated = fmt.Errorf("%w: unexpected end of input", tag.ErrFormat)
	ErrTrailing  = fmt.Errorf("%w: trailing bytes after root", tag.ErrFormat)
	ErrDepth     = fmt.Errorf("%w: nesting too deep", tag.ErrFormat)
)

// Error reports a decoding failure at a byte offset of the input.  Err
// wraps tag.ErrFormat unless the failure came from the underlying reader.
type Error struct {
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
