package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nbt-format/go-nbt/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readFile(args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readFile(args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a.Root, b.Root)
	cfg.logv("diff", "changes", len(changes))
	if len(changes) == 0 {
		return nil
	}
	if !cfg.Quiet {
		for _, c := range changes {
			if _, err := fmt.Fprintln(cc.Out, c); err != nil {
				return err
			}
		}
	}
	return cli.ExitCodeErr(1)
}
