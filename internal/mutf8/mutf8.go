// Package mutf8 converts between UTF-8 and the modified UTF-8 used by
// Java's DataInput and DataOutput.
//
// Modified UTF-8 differs from UTF-8 in two ways: U+0000 is written as the
// two bytes C0 80, and code points above U+FFFF are written as a UTF-16
// surrogate pair with each surrogate encoded in three bytes.
package mutf8

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

var ErrInvalid = errors.New("invalid modified UTF-8")

// Encode appends the modified UTF-8 encoding of s to dst.  Invalid UTF-8
// in s is encoded as U+FFFD.
func Encode(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r <= 0xFFFF:
			dst = utf8.AppendRune(dst, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
		}
	}
	return dst
}

func append3(dst []byte, r rune) []byte {
	return append(dst,
		byte(0xE0|(r>>12)&0x0F),
		byte(0x80|(r>>6)&0x3F),
		byte(0x80|r&0x3F))
}

// EncodedLen returns the length of the modified UTF-8 encoding of s.
func EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r <= 0xFFFF:
			n += utf8.RuneLen(r)
		default:
			n += 6
		}
	}
	return n
}

// Decode returns the UTF-8 form of the modified UTF-8 bytes in b.
func Decode(b []byte) (string, error) {
	res := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			res = append(res, rune(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 2 byte sequence at %d", ErrInvalid, i)
			}
			res = append(res, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 3 byte sequence at %d", ErrInvalid, i)
			}
			res = append(res, rune(c&0x0F)<<12|rune(b[i+1]&0x3F)<<6|rune(b[i+2]&0x3F))
			i += 3
		default:
			return "", fmt.Errorf("%w: unexpected byte %#x at %d", ErrInvalid, c, i)
		}
	}
	// combine surrogate pairs
	out := make([]rune, 0, len(res))
	for i := 0; i < len(res); i++ {
		r := res[i]
		if utf16.IsSurrogate(r) && i+1 < len(res) {
			if dec := utf16.DecodeRune(r, res[i+1]); dec != utf8.RuneError {
				out = append(out, dec)
				i++
				continue
			}
		}
		out = append(out, r)
	}
	return string(out), nil
}
