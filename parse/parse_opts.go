package parse

const DefaultMaxDepth = 512

type parseOpts struct {
	rootName bool
	maxDepth int
	strict   bool
	mutf8    bool
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{rootName: true, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}

type ParseOption func(*parseOpts)

// ReadRootName controls whether the name of the outermost tag is read.  It
// defaults to true.
func ReadRootName(v bool) ParseOption {
	return func(o *parseOpts) { o.rootName = v }
}

// MaxDepth bounds the nesting of lists and compounds.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Strict rejects input with bytes after the root tag.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ModifiedUTF8 decodes names and strings as Java modified UTF-8.
func ModifiedUTF8() ParseOption {
	return func(o *parseOpts) { o.mutf8 = true }
}
