package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/encode"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachFile(args, func(arg string, f *nbt.File) error {
		d, err := encode.DigestString(f.Root, cfg.encOpts()...)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err = fmt.Fprintf(cc.Out, "%s  %s\n", d, arg)
		return err
	})
}
