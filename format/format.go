package format

import (
	"errors"
	"fmt"
)

// Format is a text or binary interchange form of a tree, as opposed to the
// NBT wire format itself.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsCBOR() bool { return f == CBORFormat }

// IsText reports whether f produces printable output.
func (f Format) IsText() bool { return f != CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// FromSuffix returns the format whose Suffix is ext.
func FromSuffix(ext string) (Format, bool) {
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, true
		}
	}
	if ext == ".yml" {
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, CBORFormat}
}
