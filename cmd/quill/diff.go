package main

import (
	"fmt"
	"io"

	"github.com/quillml/go-quillml/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(y1, y2)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := writeChanges(cc.Out, changes, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

var opColors = map[libdiff.Op]*color.Color{
	libdiff.Insert:  color.New(color.FgGreen),
	libdiff.Delete:  color.New(color.FgRed),
	libdiff.Replace: color.New(color.FgYellow),
}

func writeChanges(w io.Writer, changes []libdiff.Change, useColor bool) error {
	for _, c := range changes {
		line := c.String()
		if useColor {
			line = opColors[c.Op].Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
