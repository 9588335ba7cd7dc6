package tag

import "fmt"

// Kind identifies the payload shape and wire encoding of a Tag.
// The numeric value of each kind is its wire identifier.
type Kind byte

const (
	End Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	ByteArray
	String
	List
	Compound
	IntArray

	// Unknown is the element kind of an empty list which has not yet been
	// typed.  It is never written.
	Unknown Kind = 0xFF
)

var kindNames = map[Kind]string{
	End:       "End",
	Byte:      "Byte",
	Short:     "Short",
	Int:       "Int",
	Long:      "Long",
	Float:     "Float",
	Double:    "Double",
	ByteArray: "ByteArray",
	String:    "String",
	List:      "List",
	Compound:  "Compound",
	IntArray:  "IntArray",
	Unknown:   "Unknown",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", byte(k))
}

// ID returns the wire identifier of k.
func (k Kind) ID() byte { return byte(k) }

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() && k != Unknown {
		return nil, fmt.Errorf("%w: unrecognized kind %d", ErrFormat, byte(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized kind %q", ErrFormat, d)
}

// KindFromID returns the kind with wire identifier id.
func KindFromID(id byte) (Kind, error) {
	k := Kind(id)
	if !k.Valid() {
		return Unknown, fmt.Errorf("%w: unrecognized kind id %d", ErrFormat, id)
	}
	return k, nil
}

// Kinds returns the recognized kinds in wire order.
func Kinds() []Kind {
	return []Kind{
		End,
		Byte,
		Short,
		Int,
		Long,
		Float,
		Double,
		ByteArray,
		String,
		List,
		Compound,
		IntArray,
	}
}

// Valid reports whether k is one of the 12 recognized kinds.
func (k Kind) Valid() bool {
	return k <= IntArray
}

func (k Kind) IsLeaf() bool {
	switch k {
	case List, Compound:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether k holds a single integer or floating point value.
func (k Kind) IsNumeric() bool {
	switch k {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// ElemKindValid reports whether k may be the element kind of a list.
func ElemKindValid(k Kind) bool {
	return k.Valid() || k == Unknown
}
