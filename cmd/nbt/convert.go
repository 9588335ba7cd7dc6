package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file", cli.ErrUsage)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	c, err := parseCompression(cfg.Compression)
	if err != nil {
		return err
	}
	f, err := cfg.readFile(arg)
	if err != nil {
		return err
	}
	cfg.logv("convert", "file", arg, "from", f.Compression, "to", c)
	f.Compression = c
	return f.Save(cc.Out, cfg.encOpts()...)
}
