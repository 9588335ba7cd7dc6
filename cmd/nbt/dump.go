package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"
	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/format"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	fmat := format.JSONFormat
	if cfg.Format != "" {
		if fmat, err = parseFormat(cfg.Format); err != nil {
			return err
		}
	}
	return cfg.eachFile(args, func(arg string, f *nbt.File) error {
		d, err := format.Marshal(f.Root, fmat)
		if err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
		if fmat.IsText() && !bytes.HasSuffix(d, []byte("\n")) {
			d = append(d, '\n')
		}
		_, err = cc.Out.Write(d)
		return err
	})
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: load takes at most one file", cli.ErrUsage)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	fmat := format.JSONFormat
	if f, ok := format.FromSuffix(filepath.Ext(arg)); ok {
		fmat = f
	}
	if cfg.Format != "" {
		if fmat, err = parseFormat(cfg.Format); err != nil {
			return err
		}
	}
	c, err := parseCompression(cfg.Compression)
	if err != nil {
		return err
	}
	d, err := readInput(arg)
	if err != nil {
		return err
	}
	root, err := format.Unmarshal(d, fmat)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", arg, err)
	}
	file := &nbt.File{Root: root, Compression: c}
	cfg.logv("load", "file", arg, "format", fmat, "compression", c)
	return file.Save(cc.Out, cfg.encOpts()...)
}
