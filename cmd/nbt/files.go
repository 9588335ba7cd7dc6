package main

import (
	"fmt"
	"io"
	"os"

	nbt "github.com/signadot/nbt-format/go-nbt"
)

// readInput returns the contents of the file arg, or of stdin for "-".
func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func (cfg *MainConfig) readFile(arg string) (*nbt.File, error) {
	d, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	f, err := nbt.LoadBytes(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	cfg.logv("read", "file", arg, "bytes", len(d), "compression", f.Compression, "root", f.Root.Kind())
	return f, nil
}

// eachFile calls f for every file in args, or for stdin if there are none.
func (cfg *MainConfig) eachFile(args []string, f func(arg string, file *nbt.File) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		file, err := cfg.readFile(arg)
		if err != nil {
			return err
		}
		if err := f(arg, file); err != nil {
			return err
		}
	}
	return nil
}
