package tpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Delim separates the segments of a path.
const Delim = '.'

var ErrSyntax = errors.New("path syntax error")

// Segment is one step of a Path.  An unquoted segment made only of
// decimal digits may address a list element; any segment may address a
// compound child by name.
type Segment struct {
	Text   string
	Quoted bool
}

// Index returns the list index denoted by s.  ok is false when s is
// quoted or is not a non-negative decimal integer.  Integers which do not
// fit in an int are reported as math.MaxInt.
func (s Segment) Index() (i int, ok bool) {
	if s.Quoted || s.Text == "" {
		return 0, false
	}
	for j := 0; j < len(s.Text); j++ {
		c := s.Text[j]
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s.Text)
	if err != nil {
		return math.MaxInt, true
	}
	return i, true
}

// String returns the canonical representation of s, quoted if needed.
func (s Segment) String() string {
	if s.Quoted || needsQuote(s.Text) {
		return Quote(s.Text)
	}
	return s.Text
}

// Path is a parsed query path.  The nil Path addresses the root.
type Path []Segment

// Parse parses a path such as
//
//	Level.Player.Inventory.0.id
//	Level.'dotted.name'.2
//
// Segments are separated by '.'.  A segment quoted with ' or " may contain
// any character; within quotes a backslash escapes the next character.
// Empty segments are an error.  The empty string parses to the nil Path.
func Parse(p string) (Path, error) {
	if p == "" {
		return nil, nil
	}
	var res Path
	i, n := 0, len(p)
	for {
		if i == n {
			return nil, syntaxErr(p, i, "empty segment")
		}
		var seg Segment
		switch c := p[i]; c {
		case '\'', '"':
			text, next, err := unquote(p, i)
			if err != nil {
				return nil, err
			}
			seg = Segment{Text: text, Quoted: true}
			i = next
			if i < n && p[i] != Delim {
				return nil, syntaxErr(p, i, "expected '.' after quoted segment")
			}
		default:
			j := strings.IndexByte(p[i:], Delim)
			if j == -1 {
				j = n - i
			}
			if j == 0 {
				return nil, syntaxErr(p, i, "empty segment")
			}
			seg = Segment{Text: p[i : i+j]}
			if strings.ContainsAny(seg.Text, `'"`) {
				return nil, syntaxErr(p, i, "quote inside unquoted segment")
			}
			i += j
		}
		res = append(res, seg)
		if i == n {
			return res, nil
		}
		i++ // delimiter
	}
}

// MustParse is like Parse but panics on error.
func MustParse(p string) Path {
	res, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return res
}

func unquote(p string, start int) (string, int, error) {
	q := p[start]
	b := &strings.Builder{}
	for i := start + 1; i < len(p); i++ {
		c := p[i]
		switch c {
		case '\\':
			i++
			if i == len(p) {
				return "", 0, syntaxErr(p, i, "unterminated escape")
			}
			b.WriteByte(p[i])
		case q:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, syntaxErr(p, start, "unterminated quote")
}

func syntaxErr(p string, off int, msg string) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, msg, off, p)
}

func (p Path) String() string {
	b := &strings.Builder{}
	for i, s := range p {
		if i > 0 {
			b.WriteByte(Delim)
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Child returns a copy of p extended with a name segment.
func (p Path) Child(name string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, Segment{Text: name, Quoted: needsQuote(name) || isDigits(name)})
}

// Elem returns a copy of p extended with an index segment.
func (p Path) Elem(i int) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, Segment{Text: strconv.Itoa(i)})
}

// Quote returns s in single quotes with quotes and backslashes escaped.
func Quote(s string) string {
	b := &strings.Builder{}
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
	return b.String()
}

func needsQuote(s string) bool {
	return s == "" || strings.ContainsAny(s, `.'"\`)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
