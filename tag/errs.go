package tag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFormat = errors.New("format error")
	ErrType   = errors.New("type error")
	ErrKey    = errors.New("key error")
	ErrIndex  = errors.New("index error")
	ErrQuery  = errors.New("query error")
)

// KindError reports a tag or list element whose kind disagrees with what an
// operation requires.
type KindError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s", ErrType, e.Op, e.Want, e.Got)
}

func (e *KindError) Unwrap() error { return ErrType }

// QueryError reports a path which could not be resolved.  Segment is the
// zero-based index of the offending segment, or -1 when the path itself is
// malformed.
type QueryError struct {
	Path    string
	Segment int
	Reason  string
}

func (e *QueryError) Error() string {
	b := &strings.Builder{}
	b.WriteString(ErrQuery.Error())
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Segment >= 0 {
		fmt.Fprintf(b, " at segment %d", e.Segment)
	}
	fmt.Fprintf(b, " of %q", e.Path)
	return b.String()
}

func (e *QueryError) Unwrap() error { return ErrQuery }

func kindErr(op string, want, got Kind) error {
	return &KindError{Op: op, Want: want, Got: got}
}

func indexErr(op string, i, n int) error {
	return fmt.Errorf("%w: %s: index %d out of range [0, %d)", ErrIndex, op, i, n)
}
