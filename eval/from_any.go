package eval

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

// FromAny converts the result of an expression into a tag.  It inverts
// tag.ToAny, and also accepts the types expressions produce on their own:
// int becomes Long, bool becomes Byte and a slice of any becomes a List
// whose element kind is taken from its first element.  Map keys are sorted.
func FromAny(v any) (*tag.Tag, error) {
	switch x := v.(type) {
	case *tag.Tag:
		return x.Clone(), nil
	case int8:
		return tag.NewByte(x), nil
	case int16:
		return tag.NewShort(x), nil
	case int32:
		return tag.NewInt(x), nil
	case int64:
		return tag.NewLong(x), nil
	case int:
		return tag.NewLong(int64(x)), nil
	case uint8:
		return tag.NewByte(int8(x)), nil
	case float32:
		return tag.NewFloat(x), nil
	case float64:
		return tag.NewDouble(x), nil
	case bool:
		if x {
			return tag.NewByte(1), nil
		}
		return tag.NewByte(0), nil
	case string:
		return tag.NewString(x), nil
	case []byte:
		return tag.NewByteArray(slices.Clone(x)), nil
	case []int32:
		return tag.NewIntArray(slices.Clone(x)), nil
	case []string:
		elems := make([]*tag.Tag, len(x))
		for i, s := range x {
			elems[i] = tag.NewString(s)
		}
		return tag.NewListOf(tag.String, elems...)
	case []any:
		elems := make([]*tag.Tag, len(x))
		for i, e := range x {
			t, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = t
		}
		return tag.NewList(elems...)
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]tag.KeyVal, len(keys))
		for i, k := range keys {
			t, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			kvs[i] = tag.KeyVal{Key: k, Val: t}
		}
		return tag.FromKeyVals(kvs)
	}
	return nil, fmt.Errorf("%w: cannot convert %T to a tag", tag.ErrType, v)
}
