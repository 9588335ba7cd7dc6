package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/signadot/nbt-format/go-nbt/tag/tpath"
	"github.com/signadot/nbt-format/go-nbt/view"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	var qOpts []tag.QueryOption
	if cfg.Skip {
		qOpts = append(qOpts, tag.SkipRootName())
	}
	opts := cfg.viewOpts(cc.Out)
	return cfg.eachFile(args[1:], func(arg string, f *nbt.File) error {
		res, err := tag.Query(f.Root, path, qOpts...)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		return view.Render(cc.Out, res, opts...)
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return cfg.eachFile(args, func(_ string, f *nbt.File) error {
		var werr error
		tag.Walk(f.Root, func(p tpath.Path, t *tag.Tag) bool {
			if p == nil {
				return true
			}
			line := p.String()
			if cfg.Kinds {
				line += "\t" + t.Kind().String()
			}
			if _, werr = fmt.Fprintln(cc.Out, line); werr != nil {
				return false
			}
			return true
		})
		return werr
	})
}
