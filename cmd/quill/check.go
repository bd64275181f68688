package main

import (
	"bytes"
	"fmt"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		if err := checkFile(cfg, cc, file); err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFile parses file and verifies its canonical text reads back as the
// same tree.
func checkFile(cfg *CheckConfig, cc *cli.Context, file string) error {
	y, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if err := ir.Validate(y); err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(y, buf); err != nil {
		return err
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		return fmt.Errorf("canonical form does not parse: %w", err)
	}
	if !ir.Equal(y, back) {
		return fmt.Errorf("canonical form reads back differently")
	}
	return nil
}
