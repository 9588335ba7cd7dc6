package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/eval"
	"github.com/signadot/nbt-format/go-nbt/view"
)

func nbtEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.viewOpts(cc.Out)
	return cfg.eachFile(args[1:], func(arg string, f *nbt.File) error {
		res, err := prg.Run(f.Root)
		if err != nil {
			return fmt.Errorf("error evaluating %s on %s: %w", prg, arg, err)
		}
		if cfg.Tag {
			t, err := eval.FromAny(res)
			if err != nil {
				return err
			}
			return view.Render(cc.Out, t, opts...)
		}
		d, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
