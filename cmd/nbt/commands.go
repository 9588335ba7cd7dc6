package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.openOut, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for working with NBT (Named Binary Tag) files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dispatch(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DumpCommand(cfg),
			LoadCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			SumCommand(cfg),
			ConvertCommand(cfg))
}

// dispatch runs the subcommand named by the first argument left after the
// main options, and closes the -o file once it is done.
func dispatch(cfg *MainConfig, cc *cli.Context, args []string) error {
	rest, err := cfg.Main.Parse(cc, args)
	if err == nil {
		err = runSub(cfg, cc, rest)
	}
	if cfg.CloseOut != nil {
		if cerr := cfg.CloseOut(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", cfg.Out, cerr))
		}
		cfg.CloseOut = nil
	}
	return err
}

func runSub(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	name := args[0]
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q (try one of view, get, list, dump, load, diff, eval, sum, convert)", cli.ErrNoSuchCommand, name)
	}
	cfg.logv("running", "command", name, "args", len(args)-1)
	err := sub.Run(cc, args[1:])
	if !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	if cfg.CloseOut != nil {
		cfg.CloseOut()
	}
	os.Exit(sub.Exit(cc, err))
	return nil
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view nbt files as a tree, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewFiles(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithOpts(opts...).
		WithSynopsis("get [opts] <path> [files]").
		WithDescription("get the tag at a dotted path, such as Data.Player.Inventory.0").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithOpts(opts...).
		WithSynopsis("list [opts] [files]").
		WithDescription("list the paths of all tags").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithOpts(opts...).
		WithSynopsis("dump [-f json|yaml|cbor] [files]").
		WithDescription("dump nbt files as typed json, yaml or cbor documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg, Compression: "gzip"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithOpts(opts...).
		WithSynopsis("load [-f json|yaml|cbor] [-z compression] [file]").
		WithDescription("load a document produced by dump and write it as nbt").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("show the differences between two nbt files; exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithOpts(opts...).
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtEval(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates an expr-lang expression against each file.

The children of the root compound are variables.  The functions
query(path), kind(path), has(path), paths() and getenv(name) are also
available.  For example

  nbt eval 'Data.Player.Health > 10 && has("Data.Player.Inventory")' level.dat

The result is printed as yaml, or as an nbt tag with -t.`

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithSynopsis("sum [files]").
		WithDescription("print the blake3 digest of the uncompressed encoding of each file").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, Compression: "gzip"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("convert [-z compression] [file]").
		WithDescription("rewrite an nbt file with another compression: none, gzip, zlib, lz4 or zstd").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}
