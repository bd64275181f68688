package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quillml/go-quillml/format"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile reads path, or the command input for "-", in the input format.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parseInput(cfg, path, d)
}

func parseInput(cfg *MainConfig, name string, d []byte) (*ir.Node, error) {
	switch f := cfg.inFormat(name); f {
	case format.QuillFormat:
		if name == "-" {
			return parse.Parse(d)
		}
		return parse.Parse(d, parse.WithFilename(name))
	case format.JSONFormat:
		return parse.FromJSON(d)
	default:
		return nil, fmt.Errorf("%w: cannot read %s input", cli.ErrUsage, f)
	}
}

// getish reads arg as a file when isFile, as literal text when isString, and
// otherwise as a file if one exists at that path.
func getish(isString, isFile bool, cc *cli.Context, arg string) ([]byte, error) {
	if isString && isFile {
		return nil, fmt.Errorf("%w: only one of -s and -f may be given", cli.ErrUsage)
	}
	if isString {
		return []byte(arg), nil
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err == nil || isFile {
		return d, err
	}
	return []byte(arg), nil
}
