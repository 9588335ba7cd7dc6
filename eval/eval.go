package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Env holds the variables of an evaluation.
type Env map[string]any

const rootVar = "root"

// NewEnv returns the variables for evaluating against root.
func NewEnv(root *tag.Tag) Env {
	env := Env{}
	v := tag.ToAny(root)
	if m, ok := v.(map[string]any); ok {
		for k, x := range m {
			env[k] = x
		}
	}
	env[rootVar] = v
	return env
}

// binding is the tree the path functions of a program address.
type binding struct {
	root *tag.Tag
}

// Program is a compiled expression.  It may be run against many trees,
// but not concurrently.
type Program struct {
	src string
	prg *vm.Program
	b   *binding
}

func (p *Program) String() string { return p.src }

// Compile compiles src.  Variables are resolved when the program runs.
func Compile(src string) (*Program, error) {
	b := &binding{}
	prg, err := expr.Compile(src, exprOpts(b)...)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, prg: prg, b: b}, nil
}

// Run evaluates p with root as the tree addressed by the path functions.
func (p *Program) Run(root *tag.Tag) (any, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: eval on nil tag", tag.ErrType)
	}
	p.b.root = root
	defer func() { p.b.root = nil }()
	env := NewEnv(root)
	res, err := expr.Run(p.prg, map[string]any(env))
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s: %v\n", p.src, root, res)
	}
	return res, nil
}

// Eval compiles and runs src against root.
func Eval(root *tag.Tag, src string) (any, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(root)
}

// EvalTag is like Eval but converts the result to a tag with FromAny.
func EvalTag(root *tag.Tag, src string) (*tag.Tag, error) {
	res, err := Eval(root, src)
	if err != nil {
		return nil, err
	}
	return FromAny(res)
}

func exprOpts(b *binding) []expr.Option {
	lookup := func(path string) (*tag.Tag, error) {
		if b.root == nil {
			return nil, fmt.Errorf("%w: no tree to query", tag.ErrQuery)
		}
		return tag.Query(b.root, path, tag.SkipRootName())
	}
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("query", func(params ...any) (any, error) {
			t, err := lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return tag.ToAny(t), nil
		},
			new(func(string) any)),
		expr.Function("kind", func(params ...any) (any, error) {
			t, err := lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return t.Kind().String(), nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := lookup(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("paths", func(params ...any) (any, error) {
			if b.root == nil {
				return []string{}, nil
			}
			ps := tag.Paths(b.root)
			res := make([]string, len(ps))
			for i, p := range ps {
				res[i] = p.String()
			}
			return res, nil
		},
			new(func() []string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
