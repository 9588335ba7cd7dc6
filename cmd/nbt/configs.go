package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/nbt-format/go-nbt/compress"
	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/format"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/view"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	MUTF8   bool `cli:"name=m aliases=mutf8 desc='strings are java modified utf-8'"`
	Unnamed bool `cli:"name=u aliases=unnamed desc='the root tag has no name'"`
	Strict  bool `cli:"name=strict desc='reject trailing bytes after the root'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// openOut handles -o: output goes to the named file, or stays on stdout
// for "-".
func (cfg *MainConfig) openOut(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ReadRootName(!cfg.Unnamed),
	}
	if cfg.MUTF8 {
		res = append(res, parse.ModifiedUTF8())
	}
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.WriteRootName(!cfg.Unnamed),
	}
	if cfg.MUTF8 {
		res = append(res, encode.ModifiedUTF8())
	}
	return res
}

func (cfg *MainConfig) viewOpts(w io.Writer) []view.Option {
	if cfg.Color {
		color.NoColor = false
		return []view.Option{view.WithColors(view.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []view.Option{view.WithColors(view.NewColors())}
	}
	return nil
}

func parseCompression(v string) (compress.Compression, error) {
	c, err := compress.Parse(v)
	if err != nil {
		return c, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return c, nil
}

func parseFormat(v string) (format.Format, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return f, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return f, nil
}

type ViewConfig struct {
	*MainConfig

	Arrays int `cli:"name=a desc='show up to this many array elements'"`
	View   *cli.Command
}

func (cfg *ViewConfig) viewOpts(w io.Writer) []view.Option {
	return append(cfg.MainConfig.viewOpts(w), view.Arrays(cfg.Arrays))
}

type GetConfig struct {
	*MainConfig

	Skip bool `cli:"name=s desc='paths start below the root'"`
	Get  *cli.Command
}

type ListConfig struct {
	*MainConfig

	Kinds bool `cli:"name=k desc='show the kind of each tag'"`
	List  *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Format string `cli:"name=f desc='output format: json/j, yaml/y, cbor/c'"`
	Dump   *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Format      string `cli:"name=f desc='input format: json/j, yaml/y, cbor/c (default from the file suffix, else json)'"`
	Compression string `cli:"name=z desc='output compression: none, gzip, zlib, lz4, zstd'"`
	Load        *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Diff  *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Tag  bool `cli:"name=t desc='print the result as an nbt tag'"`
	Eval *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Compression string `cli:"name=z desc='output compression: none, gzip, zlib, lz4, zstd'"`
	Convert     *cli.Command
}
