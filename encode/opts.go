package encode

type EncodeOption func(*EncState)

// WriteRootName controls whether the name of the outermost tag is written.
// It defaults to true.
func WriteRootName(v bool) EncodeOption {
	return func(es *EncState) { es.rootName = v }
}

// ModifiedUTF8 encodes names and strings as Java modified UTF-8.
func ModifiedUTF8() EncodeOption {
	return func(es *EncState) { es.mutf8 = true }
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{rootName: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
