package main

import (
	"fmt"

	quillml "github.com/quillml/go-quillml"
	"github.com/quillml/go-quillml/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: match requires a pattern and at least one file", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg, cc, args[0])
	if err != nil {
		return err
	}
	found := 0
	for _, file := range args[1:] {
		y, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if quillml.Match(y, pattern, quillml.MatchDimensions(cfg.Dims)) == cfg.Invert {
			continue
		}
		found++
		if _, err := fmt.Fprintln(cc.Out, file); err != nil {
			return err
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPattern(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := getish(cfg.String, cfg.File, cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res, err := parseInput(cfg.MainConfig, "-", d)
	if err != nil {
		return nil, fmt.Errorf("error decoding pattern: %w", err)
	}
	return res, nil
}
