package format

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	encOpts := cbor.CoreDetEncOptions()
	encOpts.TextMarshaler = cbor.TextMarshalerTextString
	cborEnc, err = encOpts.EncMode()
	if err != nil {
		panic("format: cbor encoder: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("format: cbor decoder: " + err.Error())
	}
}

// Marshal returns t in format f.
func Marshal(t *tag.Tag, f Format) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tag", tag.ErrFormat)
	}
	doc := tag.ToDoc(t)
	switch f {
	case JSONFormat:
		return json.MarshalIndent(doc, "", "  ")
	case YAMLFormat:
		return yaml.Marshal(doc)
	case CBORFormat:
		return cborEnc.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

// Unmarshal builds a tree from d in format f.
func Unmarshal(d []byte, f Format) (*tag.Tag, error) {
	doc := &tag.Doc{}
	var err error
	switch f {
	case JSONFormat:
		err = json.Unmarshal(d, doc)
	case YAMLFormat:
		err = yaml.Unmarshal(d, doc)
	case CBORFormat:
		err = cborDec.Unmarshal(d, doc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", tag.ErrFormat, f, err)
	}
	return tag.FromDoc(doc)
}
