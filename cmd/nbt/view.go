package main

import (
	"github.com/scott-cotton/cli"
	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/view"
)

func viewFiles(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.viewOpts(cc.Out)
	return cfg.eachFile(args, func(_ string, f *nbt.File) error {
		return view.Render(cc.Out, f.Root, opts...)
	})
}
